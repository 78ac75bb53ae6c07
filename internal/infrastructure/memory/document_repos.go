package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var (
	_ repository.TransferRepository      = (*transferRepo)(nil)
	_ repository.AdjustmentRepository    = (*adjustmentRepo)(nil)
	_ repository.SalesOrderRepository    = (*salesOrderRepo)(nil)
	_ repository.PickListRepository      = (*pickListRepo)(nil)
	_ repository.ShipmentRepository      = (*shipmentRepo)(nil)
	_ repository.PurchaseOrderRepository = (*purchaseOrderRepo)(nil)
)

// ── Copias ───────────────────────────────────────────────────────────────────

func cloneTransfer(t *entity.InventoryTransfer) *entity.InventoryTransfer {
	c := *t
	c.Lines = append([]entity.TransferLine(nil), t.Lines...)
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	return &c
}

func cloneAdjustment(a *entity.InventoryAdjustment) *entity.InventoryAdjustment {
	c := *a
	c.Lines = make([]entity.AdjustmentLine, len(a.Lines))
	for i, l := range a.Lines {
		l.SerialNumbers = append([]string(nil), l.SerialNumbers...)
		c.Lines[i] = l
	}
	if a.AppliedAt != nil {
		at := *a.AppliedAt
		c.AppliedAt = &at
	}
	return &c
}

func cloneOrder(o *entity.SalesOrder) *entity.SalesOrder {
	c := *o
	c.Lines = make([]*entity.SalesOrderLine, len(o.Lines))
	for i, l := range o.Lines {
		c.Lines[i] = l.Clone()
	}
	return &c
}

func clonePickList(p *entity.PickList) *entity.PickList {
	c := *p
	c.Lines = append([]entity.PickListLine(nil), p.Lines...)
	if p.ConfirmedAt != nil {
		at := *p.ConfirmedAt
		c.ConfirmedAt = &at
	}
	return &c
}

func cloneShipment(s *entity.Shipment) *entity.Shipment {
	c := *s
	c.Lines = make([]entity.ShipmentLine, len(s.Lines))
	for i, l := range s.Lines {
		l.StockItemIDs = append([]string(nil), l.StockItemIDs...)
		c.Lines[i] = l
	}
	return &c
}

func clonePurchaseOrder(po *entity.PurchaseOrder) *entity.PurchaseOrder {
	c := *po
	c.Lines = make([]*entity.PurchaseOrderLine, len(po.Lines))
	for i, l := range po.Lines {
		lc := *l
		c.Lines[i] = &lc
	}
	return &c
}

// ── Traslados ────────────────────────────────────────────────────────────────

type transferRepo struct{ st func() *state }

func (r *transferRepo) Create(_ context.Context, t *entity.InventoryTransfer) error {
	s := r.st()
	if _, ok := s.transfers[t.ID]; ok {
		return domain.ErrDuplicate
	}
	s.transfers[t.ID] = cloneTransfer(t)
	return nil
}

func (r *transferRepo) GetByID(_ context.Context, id string) (*entity.InventoryTransfer, error) {
	t, ok := r.st().transfers[id]
	if !ok {
		return nil, nil
	}
	return cloneTransfer(t), nil
}

func (r *transferRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryTransfer, error) {
	return r.GetByID(ctx, id)
}

func (r *transferRepo) Update(_ context.Context, t *entity.InventoryTransfer) error {
	s := r.st()
	if _, ok := s.transfers[t.ID]; !ok {
		return domain.ErrNotFound
	}
	s.transfers[t.ID] = cloneTransfer(t)
	return nil
}

// ── Ajustes ──────────────────────────────────────────────────────────────────

type adjustmentRepo struct{ st func() *state }

func (r *adjustmentRepo) Create(_ context.Context, a *entity.InventoryAdjustment) error {
	s := r.st()
	if _, ok := s.adjustments[a.ID]; ok {
		return domain.ErrDuplicate
	}
	s.adjustments[a.ID] = cloneAdjustment(a)
	return nil
}

func (r *adjustmentRepo) GetByID(_ context.Context, id string) (*entity.InventoryAdjustment, error) {
	a, ok := r.st().adjustments[id]
	if !ok {
		return nil, nil
	}
	return cloneAdjustment(a), nil
}

func (r *adjustmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryAdjustment, error) {
	return r.GetByID(ctx, id)
}

func (r *adjustmentRepo) Update(_ context.Context, a *entity.InventoryAdjustment) error {
	s := r.st()
	if _, ok := s.adjustments[a.ID]; !ok {
		return domain.ErrNotFound
	}
	s.adjustments[a.ID] = cloneAdjustment(a)
	return nil
}

// ── Pedidos de venta ─────────────────────────────────────────────────────────

type salesOrderRepo struct{ st func() *state }

func (r *salesOrderRepo) Create(_ context.Context, o *entity.SalesOrder) error {
	s := r.st()
	if _, ok := s.orders[o.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, l := range o.Lines {
		if _, ok := s.orderByLine[l.ID]; ok {
			return domain.ErrDuplicate
		}
	}
	s.orders[o.ID] = cloneOrder(o)
	for _, l := range o.Lines {
		s.orderByLine[l.ID] = o.ID
	}
	return nil
}

func (r *salesOrderRepo) GetByID(_ context.Context, id string) (*entity.SalesOrder, error) {
	o, ok := r.st().orders[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

func (r *salesOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.SalesOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *salesOrderRepo) GetLineForUpdate(_ context.Context, lineID string) (*entity.SalesOrderLine, error) {
	s := r.st()
	orderID, ok := s.orderByLine[lineID]
	if !ok {
		return nil, nil
	}
	for _, l := range s.orders[orderID].Lines {
		if l.ID == lineID {
			return l.Clone(), nil
		}
	}
	return nil, nil
}

func (r *salesOrderRepo) UpdateLine(_ context.Context, line *entity.SalesOrderLine) error {
	s := r.st()
	orderID, ok := s.orderByLine[line.ID]
	if !ok {
		return domain.ErrNotFound
	}
	o := cloneOrder(s.orders[orderID])
	for i, l := range o.Lines {
		if l.ID == line.ID {
			o.Lines[i] = line.Clone()
		}
	}
	s.orders[orderID] = o
	return nil
}

// ── Listas de alistamiento ───────────────────────────────────────────────────

type pickListRepo struct{ st func() *state }

func (r *pickListRepo) Create(_ context.Context, p *entity.PickList) error {
	s := r.st()
	if _, ok := s.pickLists[p.ID]; ok {
		return domain.ErrDuplicate
	}
	s.pickLists[p.ID] = clonePickList(p)
	return nil
}

func (r *pickListRepo) GetByID(_ context.Context, id string) (*entity.PickList, error) {
	p, ok := r.st().pickLists[id]
	if !ok {
		return nil, nil
	}
	return clonePickList(p), nil
}

func (r *pickListRepo) GetForUpdate(ctx context.Context, id string) (*entity.PickList, error) {
	return r.GetByID(ctx, id)
}

func (r *pickListRepo) Update(_ context.Context, p *entity.PickList) error {
	s := r.st()
	if _, ok := s.pickLists[p.ID]; !ok {
		return domain.ErrNotFound
	}
	s.pickLists[p.ID] = clonePickList(p)
	return nil
}

func (r *pickListRepo) ListOpenByOrder(_ context.Context, salesOrderID string) ([]*entity.PickList, error) {
	var list []*entity.PickList
	for _, p := range r.st().pickLists {
		if p.SalesOrderID == salesOrderID && p.Status == entity.PickListOpen {
			list = append(list, clonePickList(p))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

// ── Despachos ────────────────────────────────────────────────────────────────

type shipmentRepo struct{ st func() *state }

func (r *shipmentRepo) Create(_ context.Context, sh *entity.Shipment) error {
	s := r.st()
	if _, ok := s.shipments[sh.ID]; ok {
		return domain.ErrDuplicate
	}
	s.shipments[sh.ID] = cloneShipment(sh)
	return nil
}

func (r *shipmentRepo) GetByID(_ context.Context, id string) (*entity.Shipment, error) {
	sh, ok := r.st().shipments[id]
	if !ok {
		return nil, nil
	}
	return cloneShipment(sh), nil
}

// ── Órdenes de compra ────────────────────────────────────────────────────────

type purchaseOrderRepo struct{ st func() *state }

func (r *purchaseOrderRepo) Create(_ context.Context, po *entity.PurchaseOrder) error {
	s := r.st()
	if _, ok := s.purchaseOrders[po.ID]; ok {
		return domain.ErrDuplicate
	}
	s.purchaseOrders[po.ID] = clonePurchaseOrder(po)
	return nil
}

func (r *purchaseOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	po, ok := r.st().purchaseOrders[id]
	if !ok {
		return nil, nil
	}
	return clonePurchaseOrder(po), nil
}

func (r *purchaseOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *purchaseOrderRepo) UpdateLine(_ context.Context, line *entity.PurchaseOrderLine) error {
	s := r.st()
	po, ok := s.purchaseOrders[line.PurchaseOrderID]
	if !ok {
		return domain.ErrNotFound
	}
	c := clonePurchaseOrder(po)
	found := false
	for i, l := range c.Lines {
		if l.ID == line.ID {
			lc := *line
			c.Lines[i] = &lc
			found = true
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	s.purchaseOrders[po.ID] = c
	return nil
}
