package repository

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// TransferRepository persistencia de traslados entre bodegas.
type TransferRepository interface {
	Create(ctx context.Context, t *entity.InventoryTransfer) error
	GetByID(ctx context.Context, id string) (*entity.InventoryTransfer, error)
	// GetForUpdate bloquea el documento hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryTransfer, error)
	Update(ctx context.Context, t *entity.InventoryTransfer) error
}

// AdjustmentRepository persistencia de ajustes de inventario.
type AdjustmentRepository interface {
	Create(ctx context.Context, a *entity.InventoryAdjustment) error
	GetByID(ctx context.Context, id string) (*entity.InventoryAdjustment, error)
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryAdjustment, error)
	Update(ctx context.Context, a *entity.InventoryAdjustment) error
}

// SalesOrderRepository persistencia de pedidos de venta y sus líneas.
type SalesOrderRepository interface {
	Create(ctx context.Context, o *entity.SalesOrder) error
	GetByID(ctx context.Context, id string) (*entity.SalesOrder, error)
	GetForUpdate(ctx context.Context, id string) (*entity.SalesOrder, error)
	GetLineForUpdate(ctx context.Context, lineID string) (*entity.SalesOrderLine, error)
	UpdateLine(ctx context.Context, line *entity.SalesOrderLine) error
}

// PickListRepository persistencia de listas de alistamiento.
type PickListRepository interface {
	Create(ctx context.Context, p *entity.PickList) error
	GetByID(ctx context.Context, id string) (*entity.PickList, error)
	GetForUpdate(ctx context.Context, id string) (*entity.PickList, error)
	Update(ctx context.Context, p *entity.PickList) error
	ListOpenByOrder(ctx context.Context, salesOrderID string) ([]*entity.PickList, error)
}

// ShipmentRepository persistencia de despachos (inmutables).
type ShipmentRepository interface {
	Create(ctx context.Context, s *entity.Shipment) error
	GetByID(ctx context.Context, id string) (*entity.Shipment, error)
}

// PurchaseOrderRepository persistencia de órdenes de compra.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	UpdateLine(ctx context.Context, line *entity.PurchaseOrderLine) error
}
