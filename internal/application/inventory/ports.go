package inventory

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción. Fuera de una transacción (lecturas)
// leen el último estado confirmado y Locks puede ser nil.
type Repos struct {
	Locks          repository.StockLocker
	Movements      repository.StockMovementRepository
	Items          repository.StockItemRepository
	Products       repository.ProductRepository
	Warehouses     repository.WarehouseRepository
	Transfers      repository.TransferRepository
	Adjustments    repository.AdjustmentRepository
	SalesOrders    repository.SalesOrderRepository
	PickLists      repository.PickListRepository
	Shipments      repository.ShipmentRepository
	PurchaseOrders repository.PurchaseOrderRepository
}

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback. Los conflictos de concurrencia se reintentan dentro del
// runner; fn debe poder ejecutarse más de una vez.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

// MovementPublisher publica los movimientos ya confirmados (flujo de eventos para otros módulos).
type MovementPublisher interface {
	PublishMovements(ctx context.Context, movements []*entity.StockMovement) error
}
