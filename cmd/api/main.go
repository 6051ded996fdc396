package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/carneiro-api/internal/application/auth"
	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/application/report"
	infrakafka "github.com/jhoicas/carneiro-api/internal/infrastructure/kafka"
	infrapdf "github.com/jhoicas/carneiro-api/internal/infrastructure/pdf"
	"github.com/jhoicas/carneiro-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/carneiro-api/internal/interfaces/http"
	"github.com/jhoicas/carneiro-api/pkg/config"
	"github.com/jhoicas/carneiro-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeRepo, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir persistencia")
	}
	defer closeRepo()

	opts := []inventory.Option{
		inventory.WithLogger(log.Component("store")),
		inventory.WithSaveTimeout(cfg.Storage.SaveTimeout),
	}
	var alertPublisher *infrakafka.AlertPublisher
	if cfg.Kafka.Enabled() {
		alertPublisher = infrakafka.NewAlertPublisher(infrakafka.NewWriter(cfg.Kafka), cfg.App.Name)
		opts = append(opts, inventory.WithAlertPublisher(alertPublisher))
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.AlertTopic).Msg("alertas de stock bajo vía Kafka")
	}

	store, err := inventory.Open(ctx, repo, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar inventario")
	}

	authUC := auth.NewAuthUseCase([]auth.Account{
		{ID: "op-admin", Username: cfg.Auth.AdminUser, PasswordHash: cfg.Auth.AdminPasswordHash, Role: auth.RoleAdmin},
		{ID: "op-operador", Username: cfg.Auth.OperatorUser, PasswordHash: cfg.Auth.OperatorPasswordHash, Role: auth.RoleOperator},
	}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	reportUC := report.NewReportUseCase(store, infrapdf.NewMarotoPDFGenerator())

	httpLog := log.Component("http")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			httpLog.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if cfg.App.DocsEnabled {
		if _, err := os.Stat(swaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: swaggerFile,
				Path:     "docs",
				Title:    "BAR DO CARNEIRO API",
			}))
		} else {
			log.Warn().Str("file", swaggerFile).Msg("documentación deshabilitada: archivo no encontrado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	limiterCtx, stopLimiter := context.WithCancel(context.Background())
	defer stopLimiter()
	loginLimiter := httpRouter.NewLoginLimiter(cfg.Auth.LoginRatePerMinute)
	go loginLimiter.Cleanup(limiterCtx)

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:        store,
		AuthUC:       authUC,
		ReportUC:     reportUC,
		LoginLimiter: loginLimiter,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("guardar estado pendiente")
	}
	if alertPublisher != nil {
		if err := alertPublisher.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar publicador Kafka")
		}
	}

	log.Info().Msg("aplicación detenida")
}
