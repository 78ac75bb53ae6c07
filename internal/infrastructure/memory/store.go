// Package memory implementa los puertos de persistencia en memoria (modo desarrollo y tests).
// Un único escritor trabaja sobre una copia del estado que se publica atómicamente al confirmar;
// los lectores cargan la última copia confirmada sin bloquearse.
package memory

import (
	"context"
	"maps"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// state foto completa de los datos. Los valores guardados nunca se mutan en sitio: cada
// escritura reemplaza el puntero por una copia nueva.
type state struct {
	warehouses     map[string]*entity.Warehouse
	products       map[string]*entity.Product
	items          map[string]*entity.StockItem
	movements      []*entity.StockMovement
	movementsByKey map[string]*entity.StockMovement
	transfers      map[string]*entity.InventoryTransfer
	adjustments    map[string]*entity.InventoryAdjustment
	orders         map[string]*entity.SalesOrder
	orderByLine    map[string]string
	pickLists      map[string]*entity.PickList
	shipments      map[string]*entity.Shipment
	purchaseOrders map[string]*entity.PurchaseOrder
}

func newState() *state {
	return &state{
		warehouses:     map[string]*entity.Warehouse{},
		products:       map[string]*entity.Product{},
		items:          map[string]*entity.StockItem{},
		movementsByKey: map[string]*entity.StockMovement{},
		transfers:      map[string]*entity.InventoryTransfer{},
		adjustments:    map[string]*entity.InventoryAdjustment{},
		orders:         map[string]*entity.SalesOrder{},
		orderByLine:    map[string]string{},
		pickLists:      map[string]*entity.PickList{},
		shipments:      map[string]*entity.Shipment{},
		purchaseOrders: map[string]*entity.PurchaseOrder{},
	}
}

func (s *state) clone() *state {
	return &state{
		warehouses:     maps.Clone(s.warehouses),
		products:       maps.Clone(s.products),
		items:          maps.Clone(s.items),
		movements:      append([]*entity.StockMovement(nil), s.movements...),
		movementsByKey: maps.Clone(s.movementsByKey),
		transfers:      maps.Clone(s.transfers),
		adjustments:    maps.Clone(s.adjustments),
		orders:         maps.Clone(s.orders),
		orderByLine:    maps.Clone(s.orderByLine),
		pickLists:      maps.Clone(s.pickLists),
		shipments:      maps.Clone(s.shipments),
		purchaseOrders: maps.Clone(s.purchaseOrders),
	}
}

// Store almacenamiento en memoria. Implementa inventory.TxRunner.
type Store struct {
	mu      sync.Mutex // escritores
	current atomic.Pointer[state]
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(newState())
	return s
}

// Run ejecuta fn sobre una copia del estado y la publica solo si fn termina sin error y el
// contexto sigue vigente. Un escritor a la vez.
func (s *Store) Run(ctx context.Context, fn func(r inventory.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.current.Load().clone()
	if err := fn(s.repos(func() *state { return work })); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.current.Store(work)
	return nil
}

// Repos repositorios de lectura sobre el último estado confirmado. Solo bodegas y productos
// admiten escrituras fuera de Run (cada una en su propia transacción).
func (s *Store) Repos() inventory.Repos {
	r := s.repos(s.current.Load)
	r.Warehouses = s.Warehouses()
	r.Products = s.Products()
	return r
}

// Warehouses repositorio de bodegas fuera de transacción; las escrituras se confirman solas.
func (s *Store) Warehouses() repository.WarehouseRepository {
	return &autocommitWarehouses{store: s}
}

// Products repositorio de productos fuera de transacción; las escrituras se confirman solas.
func (s *Store) Products() repository.ProductRepository {
	return &autocommitProducts{store: s}
}

func (s *Store) repos(st func() *state) inventory.Repos {
	return inventory.Repos{
		Locks:          locker{},
		Movements:      &movementRepo{st: st},
		Items:          &itemRepo{st: st},
		Products:       &productRepo{st: st},
		Warehouses:     &warehouseRepo{st: st},
		Transfers:      &transferRepo{st: st},
		Adjustments:    &adjustmentRepo{st: st},
		SalesOrders:    &salesOrderRepo{st: st},
		PickLists:      &pickListRepo{st: st},
		Shipments:      &shipmentRepo{st: st},
		PurchaseOrders: &purchaseOrderRepo{st: st},
	}
}

// locker no necesita bloquear llaves: el escritor único ya serializa las transacciones.
type locker struct{}

func (locker) Lock(ctx context.Context, _ ...repository.StockKey) error {
	return ctx.Err()
}
