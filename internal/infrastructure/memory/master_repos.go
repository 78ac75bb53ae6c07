package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var (
	_ repository.WarehouseRepository = (*warehouseRepo)(nil)
	_ repository.WarehouseRepository = (*autocommitWarehouses)(nil)
	_ repository.ProductRepository   = (*productRepo)(nil)
	_ repository.ProductRepository   = (*autocommitProducts)(nil)
)

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

// ── Bodegas ──────────────────────────────────────────────────────────────────

type warehouseRepo struct{ st func() *state }

func (r *warehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	s := r.st()
	if _, ok := s.warehouses[w.ID]; ok {
		return domain.ErrDuplicate
	}
	c := *w
	s.warehouses[w.ID] = &c
	return nil
}

func (r *warehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	w, ok := r.st().warehouses[id]
	if !ok {
		return nil, nil
	}
	c := *w
	return &c, nil
}

func (r *warehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	s := r.st()
	if _, ok := s.warehouses[w.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *w
	s.warehouses[w.ID] = &c
	return nil
}

func (r *warehouseRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for _, w := range r.st().warehouses {
		if w.CompanyID == companyID {
			c := *w
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return page(list, limit, offset), nil
}

func (r *warehouseRepo) ClearDefault(_ context.Context, companyID string) error {
	s := r.st()
	for id, w := range s.warehouses {
		if w.CompanyID == companyID && w.IsDefault {
			c := *w
			c.IsDefault = false
			s.warehouses[id] = &c
		}
	}
	return nil
}

// autocommitWarehouses lecturas sobre el estado confirmado; cada escritura es su propia transacción.
type autocommitWarehouses struct{ store *Store }

func (a *autocommitWarehouses) read() *warehouseRepo { return &warehouseRepo{st: a.store.current.Load} }

func (a *autocommitWarehouses) Create(ctx context.Context, w *entity.Warehouse) error {
	return a.store.Run(ctx, func(r inventory.Repos) error { return r.Warehouses.Create(ctx, w) })
}

func (a *autocommitWarehouses) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	return a.read().GetByID(ctx, id)
}

func (a *autocommitWarehouses) Update(ctx context.Context, w *entity.Warehouse) error {
	return a.store.Run(ctx, func(r inventory.Repos) error { return r.Warehouses.Update(ctx, w) })
}

func (a *autocommitWarehouses) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	return a.read().ListByCompany(ctx, companyID, limit, offset)
}

func (a *autocommitWarehouses) ClearDefault(ctx context.Context, companyID string) error {
	return a.store.Run(ctx, func(r inventory.Repos) error { return r.Warehouses.ClearDefault(ctx, companyID) })
}

// ── Productos ────────────────────────────────────────────────────────────────

type productRepo struct{ st func() *state }

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	s := r.st()
	for _, existing := range s.products {
		if existing.CompanyID == p.CompanyID && existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	c := *p
	s.products[p.ID] = &c
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.st().products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *productRepo) GetByCompanyAndSKU(_ context.Context, companyID, sku string) (*entity.Product, error) {
	for _, p := range r.st().products {
		if p.CompanyID == companyID && p.SKU == sku {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *productRepo) Update(_ context.Context, p *entity.Product) error {
	s := r.st()
	if _, ok := s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *p
	s.products[p.ID] = &c
	return nil
}

func (r *productRepo) UpdateCost(_ context.Context, productID string, cost decimal.Decimal) error {
	s := r.st()
	p, ok := s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	c := *p
	c.Cost = cost
	s.products[productID] = &c
	return nil
}

func (r *productRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.st().products {
		if p.CompanyID == companyID {
			c := *p
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKU < list[j].SKU })
	return page(list, limit, offset), nil
}

// autocommitProducts lecturas sobre el estado confirmado; cada escritura es su propia transacción.
type autocommitProducts struct{ store *Store }

func (a *autocommitProducts) read() *productRepo { return &productRepo{st: a.store.current.Load} }

func (a *autocommitProducts) Create(ctx context.Context, p *entity.Product) error {
	return a.store.Run(ctx, func(r inventory.Repos) error { return r.Products.Create(ctx, p) })
}

func (a *autocommitProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return a.read().GetByID(ctx, id)
}

func (a *autocommitProducts) GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Product, error) {
	return a.read().GetByCompanyAndSKU(ctx, companyID, sku)
}

func (a *autocommitProducts) Update(ctx context.Context, p *entity.Product) error {
	return a.store.Run(ctx, func(r inventory.Repos) error { return r.Products.Update(ctx, p) })
}

func (a *autocommitProducts) UpdateCost(ctx context.Context, productID string, cost decimal.Decimal) error {
	return a.store.Run(ctx, func(r inventory.Repos) error { return r.Products.UpdateCost(ctx, productID, cost) })
}

func (a *autocommitProducts) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	return a.read().ListByCompany(ctx, companyID, limit, offset)
}
