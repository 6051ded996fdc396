// Package storage selecciona el colaborador de persistencia según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/carneiro-api/internal/domain/repository"
	"github.com/jhoicas/carneiro-api/internal/infrastructure/memory"
	"github.com/jhoicas/carneiro-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/carneiro-api/internal/infrastructure/redis"
	"github.com/jhoicas/carneiro-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/carneiro-api/pkg/config"
)

// Open construye el repositorio de snapshots y la función que libera sus conexiones.
// Para postgres aplica las migraciones antes de devolverlo.
func Open(ctx context.Context, cfg *config.Config) (repository.SnapshotRepository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return memory.NewSnapshotRepository(), func() {}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewSnapshotRepository(pool), pool.Close, nil

	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewSnapshotRepository(db), func() { _ = db.Close() }, nil

	case config.StorageRedis:
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return infraredis.NewSnapshotRepository(rdb, cfg.Redis.Prefix), func() { _ = rdb.Close() }, nil
	}
	return nil, nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", cfg.Storage.Driver)
}
