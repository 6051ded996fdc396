package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carneiro-api/internal/application/dto"
	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	store *inventory.Store
}

// NewProductHandler construye el handler.
func NewProductHandler(store *inventory.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  entity.Product
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}
	if err := h.checkSupplier(in.SupplierID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.AddProduct(in.ToInput()))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  entity.Product
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p, ok := h.store.GetProduct(c.Params("id"))
	if !ok {
		return notFound(c, "producto")
	}
	return c.JSON(p)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q         query  string  false  "Busca en nombre, SKU o EAN"
// @Param        category  query  string  false  "Categoría exacta"
// @Success      200       {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	category := c.Query("category")

	items := make([]entity.Product, 0)
	for _, p := range h.store.Products() {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" && !matchesProduct(p, q) {
			continue
		}
		items = append(items, p)
	}
	return c.JSON(dto.ProductListResponse{Items: items, Total: len(items)})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.Product
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}
	if in.SupplierID != nil {
		if err := h.checkSupplier(*in.SupplierID); err != nil {
			return respondError(c, err)
		}
	}
	p, ok := h.store.UpdateProduct(c.Params("id"), in.ToPatch())
	if !ok {
		return notFound(c, "producto")
	}
	return c.JSON(p)
}

// Delete godoc
// @Summary      Eliminar producto y sus movimientos
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if !h.store.DeleteProduct(c.Params("id")) {
		return notFound(c, "producto")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustStock godoc
// @Summary      Ajuste directo de stock (sin movimiento)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockAdjustmentRequest  true  "delta positivo o negativo"
// @Success      200   {object}  entity.Product
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [patch]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.StockAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}
	p, ok := h.store.UpdateProductStock(c.Params("id"), in.Delta)
	if !ok {
		return notFound(c, "producto")
	}
	return c.JSON(p)
}

// LowStock godoc
// @Summary      Productos con stock en o bajo el mínimo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	items := h.store.LowStockProducts()
	return c.JSON(dto.ProductListResponse{Items: items, Total: len(items)})
}

// Expiring godoc
// @Summary      Productos que vencen dentro de la ventana de alerta
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products/expiring [get]
func (h *ProductHandler) Expiring(c *fiber.Ctx) error {
	items := h.store.ExpiringProducts()
	return c.JSON(dto.ProductListResponse{Items: items, Total: len(items)})
}

// ExportCSV godoc
// @Summary      Exportar catálogo en CSV (;)
// @Tags         products
// @Security     Bearer
// @Produce      text/csv
// @Param        encoding  query  string  false  "latin1 para ISO-8859-1"
// @Success      200
// @Router       /api/products/export.csv [get]
func (h *ProductHandler) ExportCSV(c *fiber.Ctx) error {
	names := make(map[string]string)
	for _, s := range h.store.Suppliers() {
		names[s.ID] = s.Name
	}
	products := h.store.Products()
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		expiry := ""
		if p.ExpiryDate != nil {
			expiry = p.ExpiryDate.UTC().Format("2006-01-02")
		}
		rows = append(rows, []string{
			p.ID, p.SKU, p.EAN, p.Name, p.Category, names[p.SupplierID], string(p.Unit),
			p.Cost.String(), p.Price.String(), p.Stock.String(), p.MinStock.String(),
			p.Location, expiry,
		})
	}
	header := []string{"id", "sku", "ean", "nome", "categoria", "fornecedor", "unidade",
		"custo", "preco", "estoque", "estoque_minimo", "local", "validade"}
	return sendCSV(c, "produtos.csv", header, rows)
}

func (h *ProductHandler) checkSupplier(id string) error {
	if id == "" {
		return nil
	}
	if _, ok := h.store.GetSupplier(id); !ok {
		return dto.ValidationErrors{{Field: "supplierId", Message: "proveedor inexistente"}}
	}
	return nil
}

func matchesProduct(p entity.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.SKU), q) ||
		strings.Contains(p.EAN, q)
}
