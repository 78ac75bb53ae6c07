package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// Unit unidades que ingresan a una bodega (agregado, serie o lote).
type Unit struct {
	Quantity     decimal.Decimal
	SerialNumber string
	BatchNumber  string
	ExpiryDate   *time.Time
}

// Portion cantidad tomada de (o depositada en) una fila concreta de stock.
type Portion struct {
	StockItemID  string
	Quantity     decimal.Decimal
	SerialNumber string
	BatchNumber  string
	ExpiryDate   *time.Time
}

// Unit convierte la porción en unidades para depositarlas en otra bodega.
func (p Portion) Unit() Unit {
	return Unit{Quantity: p.Quantity, SerialNumber: p.SerialNumber, BatchNumber: p.BatchNumber, ExpiryDate: p.ExpiryDate}
}

// ItemChanges cambios sobre stock_items que produce un movimiento. Se aplican en la misma
// transacción que inserta el asiento del libro.
type ItemChanges struct {
	Created  []*entity.StockItem
	Updated  []*entity.StockItem
	Deleted  []string
	Portions []Portion
}

// Quantity suma de las porciones afectadas.
func (c ItemChanges) Quantity() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.Portions {
		total = total.Add(p.Quantity)
	}
	return total
}

// IsWhole indica si la cantidad es entera (el stock se maneja en unidades).
func IsWhole(q decimal.Decimal) bool {
	return q.Equal(q.Truncate(0))
}

// SerialUnits construye una unidad por serie.
func SerialUnits(serials []string) []Unit {
	units := make([]Unit, 0, len(serials))
	for _, s := range serials {
		units = append(units, Unit{Quantity: decimal.NewFromInt(1), SerialNumber: s})
	}
	return units
}

// plan conjunto de trabajo sobre copias de las filas de un (producto, bodega).
type plan struct {
	productID   string
	warehouseID string
	items       []*entity.StockItem
	created     map[string]bool
	touched     map[string]bool
	deleted     map[string]bool
	portions    []Portion
	now         time.Time
}

func newPlan(items []*entity.StockItem, productID, warehouseID string, now time.Time) *plan {
	p := &plan{
		productID:   productID,
		warehouseID: warehouseID,
		items:       make([]*entity.StockItem, 0, len(items)),
		created:     map[string]bool{},
		touched:     map[string]bool{},
		deleted:     map[string]bool{},
		now:         now,
	}
	for _, it := range items {
		if it.ProductID != productID || it.WarehouseID != warehouseID {
			continue
		}
		p.items = append(p.items, it.Clone())
	}
	return p
}

func (p *plan) live() []*entity.StockItem {
	out := make([]*entity.StockItem, 0, len(p.items))
	for _, it := range p.items {
		if !p.deleted[it.ID] {
			out = append(out, it)
		}
	}
	return out
}

func (p *plan) create(status entity.StockStatus, u Unit, orderLineID string) *entity.StockItem {
	it := &entity.StockItem{
		ID:           uuid.New().String(),
		ProductID:    p.productID,
		WarehouseID:  p.warehouseID,
		Status:       status,
		Quantity:     u.Quantity,
		SerialNumber: u.SerialNumber,
		BatchNumber:  u.BatchNumber,
		OrderLineID:  orderLineID,
		CreatedAt:    p.now,
		UpdatedAt:    p.now,
	}
	if u.ExpiryDate != nil {
		e := *u.ExpiryDate
		it.ExpiryDate = &e
	}
	p.items = append(p.items, it)
	p.created[it.ID] = true
	return it
}

func (p *plan) touch(it *entity.StockItem) {
	it.UpdatedAt = p.now
	p.touched[it.ID] = true
}

func (p *plan) remove(it *entity.StockItem) {
	p.deleted[it.ID] = true
}

// findLot busca una fila viva del mismo estado, lote y línea de pedido (nunca series).
func (p *plan) findLot(status entity.StockStatus, batch string, expiry *time.Time, orderLineID, exclude string) *entity.StockItem {
	for _, it := range p.live() {
		if it.ID == exclude || it.Status != status || it.OrderLineID != orderLineID || it.SerialNumber != "" {
			continue
		}
		if it.SameLot("", batch, expiry) {
			return it
		}
	}
	return nil
}

func (p *plan) record(it *entity.StockItem, q decimal.Decimal) {
	p.portions = append(p.portions, Portion{
		StockItemID:  it.ID,
		Quantity:     q,
		SerialNumber: it.SerialNumber,
		BatchNumber:  it.BatchNumber,
		ExpiryDate:   it.ExpiryDate,
	})
}

func (p *plan) changes() ItemChanges {
	var c ItemChanges
	for _, it := range p.items {
		switch {
		case p.deleted[it.ID]:
			if !p.created[it.ID] {
				c.Deleted = append(c.Deleted, it.ID)
			}
		case p.created[it.ID]:
			c.Created = append(c.Created, it)
		case p.touched[it.ID]:
			c.Updated = append(c.Updated, it)
		}
	}
	c.Portions = p.portions
	return c
}

// SortFEFO ordena filas por vencimiento más próximo primero; sin vencimiento al final,
// luego por antigüedad. El orden es determinista.
func SortFEFO(items []*entity.StockItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.ExpiryDate != nil && b.ExpiryDate == nil:
			return true
		case a.ExpiryDate == nil && b.ExpiryDate != nil:
			return false
		case a.ExpiryDate != nil && b.ExpiryDate != nil && !a.ExpiryDate.Equal(*b.ExpiryDate):
			return a.ExpiryDate.Before(*b.ExpiryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// PlanIncrease deposita unidades en una bodega según el modo de trazabilidad del producto.
// Sin trazabilidad se suma al agregado; por lote se suma al lote existente; cada serie crea una fila.
func PlanIncrease(items []*entity.StockItem, product *entity.Product, warehouseID string, units []Unit, status entity.StockStatus, now time.Time) (ItemChanges, error) {
	if status != entity.StockAvailable && status != entity.StockDamaged {
		return ItemChanges{}, fmt.Errorf("%w: estado inicial %s no permitido", domain.ErrInvalidMovement, status)
	}
	if len(units) == 0 {
		return ItemChanges{}, fmt.Errorf("%w: sin unidades", domain.ErrInvalidMovement)
	}
	p := newPlan(items, product.ID, warehouseID, now)
	seen := map[string]bool{}
	for _, it := range p.items {
		if it.SerialNumber != "" {
			seen[it.SerialNumber] = true
		}
	}
	for _, u := range units {
		if !u.Quantity.IsPositive() || !IsWhole(u.Quantity) {
			return ItemChanges{}, fmt.Errorf("%w: cantidad %s inválida", domain.ErrInvalidMovement, u.Quantity)
		}
		switch product.TrackingMode {
		case entity.TrackingSerial:
			if u.SerialNumber == "" || !u.Quantity.Equal(decimal.NewFromInt(1)) {
				return ItemChanges{}, fmt.Errorf("%w: producto serializado requiere una serie por unidad", domain.ErrInvalidMovement)
			}
			if seen[u.SerialNumber] {
				return ItemChanges{}, fmt.Errorf("%w: serie %s duplicada", domain.ErrInvalidMovement, u.SerialNumber)
			}
			seen[u.SerialNumber] = true
			it := p.create(status, Unit{Quantity: u.Quantity, SerialNumber: u.SerialNumber, ExpiryDate: u.ExpiryDate}, "")
			p.record(it, u.Quantity)
		case entity.TrackingBatch:
			if u.BatchNumber == "" || u.SerialNumber != "" {
				return ItemChanges{}, fmt.Errorf("%w: producto por lotes requiere número de lote", domain.ErrInvalidMovement)
			}
			p.deposit(status, Unit{Quantity: u.Quantity, BatchNumber: u.BatchNumber, ExpiryDate: u.ExpiryDate})
		default:
			if u.SerialNumber != "" || u.BatchNumber != "" {
				return ItemChanges{}, fmt.Errorf("%w: producto sin trazabilidad no admite serie ni lote", domain.ErrInvalidMovement)
			}
			p.deposit(status, Unit{Quantity: u.Quantity})
		}
	}
	return p.changes(), nil
}

func (p *plan) deposit(status entity.StockStatus, u Unit) {
	if it := p.findLot(status, u.BatchNumber, u.ExpiryDate, "", ""); it != nil {
		it.Quantity = it.Quantity.Add(u.Quantity)
		p.touch(it)
		p.record(it, u.Quantity)
		return
	}
	it := p.create(status, u, "")
	p.record(it, u.Quantity)
}

// PlanDecrease retira qty de las filas de un (producto, bodega). Si target no está vacío se
// retira solo de esa fila; si no, se consumen los estados en el orden dado y, dentro de cada
// estado, por FEFO.
func PlanDecrease(items []*entity.StockItem, productID, warehouseID string, qty decimal.Decimal, target string, order []entity.StockStatus, now time.Time) (ItemChanges, error) {
	p := newPlan(items, productID, warehouseID, now)
	allowed := map[entity.StockStatus]bool{}
	for _, s := range order {
		allowed[s] = true
	}

	var candidates []*entity.StockItem
	if target != "" {
		for _, it := range p.live() {
			if it.ID == target {
				candidates = append(candidates, it)
			}
		}
		if len(candidates) == 0 {
			return ItemChanges{}, fmt.Errorf("%w: fila de stock %s no existe en la bodega", domain.ErrInvalidMovement, target)
		}
		if !allowed[candidates[0].Status] {
			return ItemChanges{}, fmt.Errorf("%w: fila de stock %s en estado %s", domain.ErrInvalidMovement, target, candidates[0].Status)
		}
	} else {
		for _, s := range order {
			var group []*entity.StockItem
			for _, it := range p.live() {
				if it.Status == s {
					group = append(group, it)
				}
			}
			SortFEFO(group)
			candidates = append(candidates, group...)
		}
	}

	total := decimal.Zero
	for _, it := range candidates {
		total = total.Add(it.Quantity)
	}
	if total.LessThan(qty) {
		return ItemChanges{}, &domain.InsufficientStockError{ProductID: productID, WarehouseID: warehouseID, Requested: qty, Available: total}
	}

	remaining := qty
	for _, it := range candidates {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(remaining, it.Quantity)
		p.record(it, take)
		if take.Equal(it.Quantity) {
			p.remove(it)
		} else {
			it.Quantity = it.Quantity.Sub(take)
			p.touch(it)
		}
		remaining = remaining.Sub(take)
	}
	return p.changes(), nil
}

// PlanCommit compromete qty de filas AVAILABLE (FEFO) contra una línea de pedido, partiendo
// filas cuando hace falta.
func PlanCommit(items []*entity.StockItem, productID, warehouseID string, qty decimal.Decimal, orderLineID string, now time.Time) (ItemChanges, error) {
	p := newPlan(items, productID, warehouseID, now)
	var candidates []*entity.StockItem
	for _, it := range p.live() {
		if it.Status == entity.StockAvailable {
			candidates = append(candidates, it)
		}
	}
	SortFEFO(candidates)
	total := decimal.Zero
	for _, it := range candidates {
		total = total.Add(it.Quantity)
	}
	if total.LessThan(qty) {
		return ItemChanges{}, &domain.InsufficientStockError{ProductID: productID, WarehouseID: warehouseID, Requested: qty, Available: total}
	}

	remaining := qty
	for _, it := range candidates {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(remaining, it.Quantity)
		remaining = remaining.Sub(take)

		var existing *entity.StockItem
		if it.SerialNumber == "" {
			existing = p.findLot(entity.StockCommitted, it.BatchNumber, it.ExpiryDate, orderLineID, it.ID)
		}
		switch {
		case existing != nil:
			existing.Quantity = existing.Quantity.Add(take)
			p.touch(existing)
			p.record(existing, take)
			if take.Equal(it.Quantity) {
				p.remove(it)
			} else {
				it.Quantity = it.Quantity.Sub(take)
				p.touch(it)
			}
		case take.Equal(it.Quantity):
			if err := it.TransitionTo(entity.StockCommitted, orderLineID); err != nil {
				return ItemChanges{}, err
			}
			p.touch(it)
			p.record(it, take)
		default:
			it.Quantity = it.Quantity.Sub(take)
			p.touch(it)
			c := p.create(entity.StockCommitted, Unit{Quantity: take, BatchNumber: it.BatchNumber, ExpiryDate: it.ExpiryDate}, orderLineID)
			p.record(c, take)
		}
	}
	return p.changes(), nil
}

// PlanRelease devuelve a AVAILABLE todas las filas comprometidas a la línea, fusionándolas con
// el agregado o lote disponible cuando existe.
func PlanRelease(items []*entity.StockItem, productID, warehouseID, orderLineID string, now time.Time) (ItemChanges, error) {
	p := newPlan(items, productID, warehouseID, now)
	for _, it := range p.live() {
		if it.Status != entity.StockCommitted || it.OrderLineID != orderLineID {
			continue
		}
		p.record(it, it.Quantity)
		if it.SerialNumber == "" {
			if target := p.findLot(entity.StockAvailable, it.BatchNumber, it.ExpiryDate, "", it.ID); target != nil {
				target.Quantity = target.Quantity.Add(it.Quantity)
				p.touch(target)
				p.remove(it)
				continue
			}
		}
		if err := it.TransitionTo(entity.StockAvailable, ""); err != nil {
			return ItemChanges{}, err
		}
		p.touch(it)
	}
	return p.changes(), nil
}
