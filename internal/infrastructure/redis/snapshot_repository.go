// Package redis adaptador de persistencia del snapshot sobre Redis: una clave por partición.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/carneiro-api/internal/domain"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
	"github.com/jhoicas/carneiro-api/internal/domain/repository"
	"github.com/jhoicas/carneiro-api/pkg/config"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: ping redis: %w", domain.ErrStorage, err)
	}
	return rdb, nil
}

// SnapshotRepo guarda cada partición en <prefix>:<partition>.
type SnapshotRepo struct {
	rdb    *redis.Client
	prefix string
}

func NewSnapshotRepository(rdb *redis.Client, prefix string) *SnapshotRepo {
	if prefix == "" {
		prefix = "carneiro"
	}
	return &SnapshotRepo{rdb: rdb, prefix: prefix}
}

func (r *SnapshotRepo) key(partition string) string {
	return r.prefix + ":" + partition
}

// Load lee las cinco claves con MGET; (nil, nil) si ninguna existe.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	keys := make([]string, len(entity.Partitions))
	for i, p := range entity.Partitions {
		keys[i] = r.key(p)
	}
	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: mget snapshot: %w", domain.ErrStorage, err)
	}

	parts := make(map[string][]byte, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue // clave ausente
		}
		parts[entity.Partitions[i]] = []byte(s)
	}
	return entity.DecodePartitions(parts)
}

// Save escribe las cinco claves en un MULTI/EXEC.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot) error {
	parts, err := snap.EncodePartitions()
	if err != nil {
		return err
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, p := range entity.Partitions {
			pipe.Set(ctx, r.key(p), parts[p], 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: guardar snapshot: %w", domain.ErrStorage, err)
	}
	return nil
}
