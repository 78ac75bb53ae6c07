package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var (
	_ repository.StockItemRepository     = (*itemRepo)(nil)
	_ repository.StockMovementRepository = (*movementRepo)(nil)
)

// ── Filas de stock ───────────────────────────────────────────────────────────

type itemRepo struct{ st func() *state }

func (r *itemRepo) GetByID(_ context.Context, id string) (*entity.StockItem, error) {
	it, ok := r.st().items[id]
	if !ok {
		return nil, nil
	}
	return it.Clone(), nil
}

func (r *itemRepo) filter(keep func(*entity.StockItem) bool) []*entity.StockItem {
	var list []*entity.StockItem
	for _, it := range r.st().items {
		if keep(it) {
			list = append(list, it.Clone())
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list
}

func (r *itemRepo) ListByProductWarehouse(_ context.Context, productID, warehouseID string) ([]*entity.StockItem, error) {
	return r.filter(func(it *entity.StockItem) bool {
		return it.ProductID == productID && it.WarehouseID == warehouseID
	}), nil
}

func (r *itemRepo) ListByProduct(_ context.Context, productID string) ([]*entity.StockItem, error) {
	return r.filter(func(it *entity.StockItem) bool { return it.ProductID == productID }), nil
}

func (r *itemRepo) ListByOrderLine(_ context.Context, orderLineID string) ([]*entity.StockItem, error) {
	return r.filter(func(it *entity.StockItem) bool { return it.OrderLineID == orderLineID }), nil
}

func (r *itemRepo) Create(_ context.Context, item *entity.StockItem) error {
	s := r.st()
	if _, ok := s.items[item.ID]; ok {
		return domain.ErrDuplicate
	}
	if item.SerialNumber != "" {
		for _, it := range s.items {
			if it.ProductID == item.ProductID && it.SerialNumber == item.SerialNumber {
				return fmt.Errorf("serie %s: %w", item.SerialNumber, domain.ErrDuplicate)
			}
		}
	}
	c := item.Clone()
	c.Version = 1
	s.items[c.ID] = c
	return nil
}

func (r *itemRepo) Update(_ context.Context, item *entity.StockItem) error {
	s := r.st()
	current, ok := s.items[item.ID]
	if !ok || current.Version != item.Version {
		return fmt.Errorf("fila de stock %s: %w", item.ID, domain.ErrConcurrencyConflict)
	}
	c := item.Clone()
	c.Version++
	s.items[c.ID] = c
	return nil
}

func (r *itemRepo) Delete(_ context.Context, id string) error {
	s := r.st()
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("fila de stock %s: %w", id, domain.ErrConcurrencyConflict)
	}
	delete(s.items, id)
	return nil
}

// ── Libro ────────────────────────────────────────────────────────────────────

type movementRepo struct{ st func() *state }

func (r *movementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	s := r.st()
	if m.IdempotencyKey != "" {
		if _, ok := s.movementsByKey[m.IdempotencyKey]; ok {
			return fmt.Errorf("llave %s: %w", m.IdempotencyKey, domain.ErrDuplicate)
		}
	}
	c := *m
	s.movements = append(s.movements, &c)
	if c.IdempotencyKey != "" {
		s.movementsByKey[c.IdempotencyKey] = &c
	}
	return nil
}

func (r *movementRepo) GetByIdempotencyKey(_ context.Context, key string) (*entity.StockMovement, error) {
	m, ok := r.st().movementsByKey[key]
	if !ok {
		return nil, nil
	}
	c := *m
	return &c, nil
}

// List devuelve los movimientos más recientes primero.
func (r *movementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.StockMovement, error) {
	all := r.st().movements
	var list []*entity.StockMovement
	for i := len(all) - 1; i >= 0; i-- {
		m := all[i]
		switch {
		case f.CompanyID != "" && m.CompanyID != f.CompanyID,
			f.ProductID != "" && m.ProductID != f.ProductID,
			f.WarehouseID != "" && m.WarehouseID != f.WarehouseID,
			f.ReferenceID != "" && m.ReferenceID != f.ReferenceID,
			f.From != nil && m.CreatedAt.Before(*f.From),
			f.To != nil && m.CreatedAt.After(*f.To):
			continue
		}
		c := *m
		list = append(list, &c)
	}
	return page(list, f.Limit, f.Offset), nil
}

func (r *movementRepo) SumByProductWarehouse(_ context.Context, productID, warehouseID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.st().movements {
		if m.ProductID == productID && m.WarehouseID == warehouseID && !m.Type.IsReservation() {
			sum = sum.Add(m.QuantityChange)
		}
	}
	return sum, nil
}
