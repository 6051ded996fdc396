package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carneiro-api/internal/application/auth"
	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store        *inventory.Store
	AuthUC       *auth.AuthUseCase
	ReportUC     *report.ReportUseCase
	LoginLimiter *LoginLimiter
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con límite por IP)
	authHandler := NewAuthHandler(deps.AuthUC)
	loginLimiter := deps.LoginLimiter
	if loginLimiter == nil {
		loginLimiter = NewLoginLimiter(0)
	}
	api.Post("/auth/login", loginLimiter.Handler(), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(auth.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)

	// Products. Las rutas fijas van antes que /:id.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Store)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/expiring", productHandler.Expiring)
	products.Get("/export.csv", productHandler.ExportCSV)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Patch("/:id/stock", adminOnly, productHandler.AdjustStock)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.Store)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Employees
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.Store)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Stock moves
	moves := protected.Group("/moves")
	moveHandler := NewMoveHandler(deps.Store)
	moves.Get("/export.csv", moveHandler.ExportCSV)
	moves.Get("/", moveHandler.List)
	moves.Post("/", moveHandler.Register)

	// Settings
	settingsHandler := NewSettingsHandler(deps.Store)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", settingsHandler.Update)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.Store, deps.ReportUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/report.pdf", dashboardHandler.StockReport)

	// Data (solo admin)
	data := protected.Group("/data", adminOnly)
	dataHandler := NewDataHandler(deps.Store)
	data.Get("/export", dataHandler.Export)
	data.Post("/import", dataHandler.Import)
	data.Post("/reset", dataHandler.Reset)
}
