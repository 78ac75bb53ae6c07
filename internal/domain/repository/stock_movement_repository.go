package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// MovementFilter filtros de consulta del libro. Campos vacíos no filtran.
type MovementFilter struct {
	CompanyID   string
	ProductID   string
	WarehouseID string
	ReferenceID string
	From, To    *time.Time
	Limit       int
	Offset      int
}

// StockMovementRepository puerto del libro de inventario. Solo inserción: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByIdempotencyKey(ctx context.Context, key string) (*entity.StockMovement, error)
	List(ctx context.Context, filter MovementFilter) ([]*entity.StockMovement, error)
	// SumByProductWarehouse suma QuantityChange de los movimientos que afectan stock físico
	// (excluye reservas) para un (producto, bodega).
	SumByProductWarehouse(ctx context.Context, productID, warehouseID string) (decimal.Decimal, error)
}
