package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// WarehouseCacheTTL las bodegas casi no cambian.
const WarehouseCacheTTL = 30 * time.Minute

const keyPrefix = "inventario:warehouse:"

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)

// WarehouseRepository decorador cache-aside sobre el repositorio de bodegas. Solo GetByID pasa
// por Redis; si Redis falla se lee del repositorio sin cortar la petición.
type WarehouseRepository struct {
	next  repository.WarehouseRepository
	redis *redis.Client
	ttl   time.Duration
	log   *logger.Logger
}

// NewWarehouseRepository envuelve next. ttl <= 0 usa WarehouseCacheTTL.
func NewWarehouseRepository(next repository.WarehouseRepository, client *redis.Client, ttl time.Duration, log *logger.Logger) *WarehouseRepository {
	if ttl <= 0 {
		ttl = WarehouseCacheTTL
	}
	return &WarehouseRepository{next: next, redis: client, ttl: ttl, log: log}
}

func cacheKey(id string) string { return keyPrefix + id }

func (r *WarehouseRepository) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	val, err := r.redis.Get(ctx, cacheKey(id)).Bytes()
	if err == nil {
		var w entity.Warehouse
		if jsonErr := json.Unmarshal(val, &w); jsonErr == nil {
			return &w, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warn().Err(err).Str("warehouse_id", id).Msg("caché de bodegas no disponible")
	}

	w, err := r.next.GetByID(ctx, id)
	if err != nil || w == nil {
		return w, err
	}
	if data, jsonErr := json.Marshal(w); jsonErr == nil {
		if setErr := r.redis.Set(ctx, cacheKey(id), data, r.ttl).Err(); setErr != nil {
			r.log.Debug().Err(setErr).Str("warehouse_id", id).Msg("no se pudo guardar la bodega en caché")
		}
	}
	return w, nil
}

func (r *WarehouseRepository) Create(ctx context.Context, w *entity.Warehouse) error {
	return r.next.Create(ctx, w)
}

func (r *WarehouseRepository) Update(ctx context.Context, w *entity.Warehouse) error {
	if err := r.next.Update(ctx, w); err != nil {
		return err
	}
	r.Invalidate(ctx, w.ID)
	return nil
}

func (r *WarehouseRepository) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	return r.next.ListByCompany(ctx, companyID, limit, offset)
}

// ClearDefault no conoce los ids afectados; quien lo llama debe invalidarlos.
func (r *WarehouseRepository) ClearDefault(ctx context.Context, companyID string) error {
	return r.next.ClearDefault(ctx, companyID)
}

// Invalidate borra las bodegas de la caché. Los errores de Redis solo se registran.
func (r *WarehouseRepository) Invalidate(ctx context.Context, ids ...string) {
	if len(ids) == 0 {
		return
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, cacheKey(id))
	}
	if err := r.redis.Del(ctx, keys...).Err(); err != nil {
		r.log.Warn().Err(err).Strs("warehouse_ids", ids).Msg("no se pudo invalidar la caché de bodegas")
	}
}
