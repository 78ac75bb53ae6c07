package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// Redis inalcanzable: el decorador debe degradar al repositorio envuelto.
func unreachableRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestWarehouseCache_SinRedisLeeDelRepositorio(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	inner := store.Repos().Warehouses
	repo := cache.NewWarehouseRepository(inner, unreachableRedis(t), 0, logger.Nop())

	w := &entity.Warehouse{ID: "w-1", CompanyID: "c-1", Name: "Principal", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, "w-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Principal", got.Name)

	got.Name = "Central"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, "Central", got.Name)

	missing, err := repo.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)

	repo.Invalidate(ctx)
	repo.Invalidate(ctx, "w-1")
}
