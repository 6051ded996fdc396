// seed escribe el estado inicial del bar en la persistencia configurada (STORAGE_DRIVER).
//
// Uso: go run ./cmd/seed [export.json]
// Sin argumentos escribe el dataset semilla. Con un archivo exportado por
// GET /api/data/export lo importa completo (reemplaza el estado actual).
package main

import (
	"context"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/infrastructure/storage"
	"github.com/jhoicas/carneiro-api/pkg/config"
	"github.com/jhoicas/carneiro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, closeRepo, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir persistencia")
	}
	defer closeRepo()

	store, err := inventory.Open(ctx, repo,
		inventory.WithLogger(log.Component("store")),
		inventory.WithSaveTimeout(cfg.Storage.SaveTimeout),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar inventario")
	}

	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("leer archivo de importación")
		}
		if err := store.Import(data); err != nil {
			log.Fatal().Err(err).Str("file", os.Args[1]).Msg("importar")
		}
	} else {
		store.Reset()
	}

	if err := store.Close(ctx); err != nil {
		log.Fatal().Err(err).Msg("guardar estado")
	}
	log.Info().
		Str("driver", cfg.Storage.Driver).
		Int("products", len(store.Products())).
		Int("suppliers", len(store.Suppliers())).
		Int("employees", len(store.Employees())).
		Msg("estado escrito")
}
