package redis_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carneiro-api/internal/domain/entity"
	redisrepo "github.com/jhoicas/carneiro-api/internal/infrastructure/redis"
	"github.com/jhoicas/carneiro-api/pkg/config"
)

// Requiere TEST_REDIS_ADDR (ej. localhost:6379).
func TestSnapshotRepo_RoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR no definido")
	}
	ctx := context.Background()
	rdb, err := redisrepo.NewClient(ctx, config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	prefix := fmt.Sprintf("carneiro-test-%d", time.Now().UnixNano())
	t.Cleanup(func() {
		for _, p := range entity.Partitions {
			rdb.Del(context.Background(), prefix+":"+p)
		}
	})
	repo := redisrepo.NewSnapshotRepository(rdb, prefix)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	snap := &entity.Snapshot{
		Suppliers: []entity.Supplier{{ID: "s-1", Name: "Distribuidora"}},
		Settings:  entity.Settings{BrandName: "BAR DO CARNEIRO"},
	}
	require.NoError(t, repo.Save(ctx, snap))

	got, err = repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Suppliers, 1)
	assert.Equal(t, "Distribuidora", got.Suppliers[0].Name)
}
