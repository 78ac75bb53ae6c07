package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// StockKey identifica el stock de un producto en una bodega.
type StockKey struct {
	ProductID   string
	WarehouseID string
}

// String forma canónica "producto:bodega", usada para ordenar y bloquear.
func (k StockKey) String() string { return k.ProductID + ":" + k.WarehouseID }

// StockLocker serializa los escritores de un mismo (producto, bodega) dentro de la transacción.
// Las llaves se bloquean en orden para evitar interbloqueos.
type StockLocker interface {
	Lock(ctx context.Context, keys ...StockKey) error
}

// StockItemRepository puerto de las filas materializadas de stock.
// Solo el libro de inventario escribe en él.
type StockItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.StockItem, error)
	ListByProductWarehouse(ctx context.Context, productID, warehouseID string) ([]*entity.StockItem, error)
	// ListByProduct filas de un producto en todas las bodegas.
	ListByProduct(ctx context.Context, productID string) ([]*entity.StockItem, error)
	ListByOrderLine(ctx context.Context, orderLineID string) ([]*entity.StockItem, error)
	Create(ctx context.Context, item *entity.StockItem) error
	// Update aplica control optimista por Version; si la fila cambió devuelve ErrConcurrencyConflict.
	Update(ctx context.Context, item *entity.StockItem) error
	Delete(ctx context.Context, id string) error
}
