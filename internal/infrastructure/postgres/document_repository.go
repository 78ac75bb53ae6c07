package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// Las líneas de traslados, ajustes, listas de alistamiento y despachos se guardan como JSONB:
// se leen y escriben siempre con su documento. Las líneas de pedidos y órdenes de compra
// tienen tabla propia porque se bloquean y actualizan una a una.

var (
	_ repository.TransferRepository      = (*TransferRepo)(nil)
	_ repository.AdjustmentRepository    = (*AdjustmentRepo)(nil)
	_ repository.PickListRepository      = (*PickListRepo)(nil)
	_ repository.ShipmentRepository      = (*ShipmentRepo)(nil)
	_ repository.SalesOrderRepository    = (*SalesOrderRepo)(nil)
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)
)

func noRows(err error) bool { return errors.Is(err, pgx.ErrNoRows) }

// ── Traslados ────────────────────────────────────────────────────────────────

// TransferRepo traslados entre bodegas.
type TransferRepo struct{ q Querier }

// NewTransferRepository construye el adaptador.
func NewTransferRepository(q Querier) *TransferRepo { return &TransferRepo{q: q} }

const transferColumns = `id, company_id, date, from_warehouse_id, to_warehouse_id, lines, status, notes, completed_at, created_at, created_by`

func scanTransfer(row pgx.Row) (*entity.InventoryTransfer, error) {
	var t entity.InventoryTransfer
	err := row.Scan(&t.ID, &t.CompanyID, &t.Date, &t.FromWarehouseID, &t.ToWarehouseID, &t.Lines,
		&t.Status, &t.Notes, &t.CompletedAt, &t.CreatedAt, &t.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransferRepo) Create(ctx context.Context, t *entity.InventoryTransfer) error {
	_, err := r.q.Exec(ctx, `INSERT INTO inventory_transfers (`+transferColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		t.ID, t.CompanyID, t.Date, t.FromWarehouseID, t.ToWarehouseID, t.Lines,
		t.Status, t.Notes, t.CompletedAt, t.CreatedAt, t.CreatedBy)
	if err != nil {
		return wrap("insert transfer", err)
	}
	return nil
}

func (r *TransferRepo) get(ctx context.Context, suffix, id string) (*entity.InventoryTransfer, error) {
	t, err := scanTransfer(r.q.QueryRow(ctx, `SELECT `+transferColumns+` FROM inventory_transfers WHERE id = $1`+suffix, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, wrap("get transfer", err)
	}
	return t, nil
}

func (r *TransferRepo) GetByID(ctx context.Context, id string) (*entity.InventoryTransfer, error) {
	return r.get(ctx, "", id)
}

// GetForUpdate bloquea el traslado hasta el fin de la transacción.
func (r *TransferRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryTransfer, error) {
	return r.get(ctx, " FOR UPDATE", id)
}

func (r *TransferRepo) Update(ctx context.Context, t *entity.InventoryTransfer) error {
	cmd, err := r.q.Exec(ctx, `UPDATE inventory_transfers SET status = $2, completed_at = $3 WHERE id = $1`,
		t.ID, t.Status, t.CompletedAt)
	if err != nil {
		return wrap("update transfer", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Ajustes ──────────────────────────────────────────────────────────────────

// AdjustmentRepo ajustes de inventario.
type AdjustmentRepo struct{ q Querier }

// NewAdjustmentRepository construye el adaptador.
func NewAdjustmentRepository(q Querier) *AdjustmentRepo { return &AdjustmentRepo{q: q} }

const adjustmentColumns = `id, company_id, date, warehouse_id, reason, lines, status, applied_at, created_at, created_by`

func scanAdjustment(row pgx.Row) (*entity.InventoryAdjustment, error) {
	var a entity.InventoryAdjustment
	var reason string
	err := row.Scan(&a.ID, &a.CompanyID, &a.Date, &a.WarehouseID, &reason, &a.Lines,
		&a.Status, &a.AppliedAt, &a.CreatedAt, &a.CreatedBy)
	if err != nil {
		return nil, err
	}
	a.Reason = entity.AdjustmentReason(reason)
	return &a, nil
}

func (r *AdjustmentRepo) Create(ctx context.Context, a *entity.InventoryAdjustment) error {
	_, err := r.q.Exec(ctx, `INSERT INTO inventory_adjustments (`+adjustmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.CompanyID, a.Date, a.WarehouseID, string(a.Reason), a.Lines,
		a.Status, a.AppliedAt, a.CreatedAt, a.CreatedBy)
	if err != nil {
		return wrap("insert adjustment", err)
	}
	return nil
}

func (r *AdjustmentRepo) get(ctx context.Context, suffix, id string) (*entity.InventoryAdjustment, error) {
	a, err := scanAdjustment(r.q.QueryRow(ctx, `SELECT `+adjustmentColumns+` FROM inventory_adjustments WHERE id = $1`+suffix, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, wrap("get adjustment", err)
	}
	return a, nil
}

func (r *AdjustmentRepo) GetByID(ctx context.Context, id string) (*entity.InventoryAdjustment, error) {
	return r.get(ctx, "", id)
}

func (r *AdjustmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryAdjustment, error) {
	return r.get(ctx, " FOR UPDATE", id)
}

func (r *AdjustmentRepo) Update(ctx context.Context, a *entity.InventoryAdjustment) error {
	cmd, err := r.q.Exec(ctx, `UPDATE inventory_adjustments SET status = $2, applied_at = $3 WHERE id = $1`,
		a.ID, a.Status, a.AppliedAt)
	if err != nil {
		return wrap("update adjustment", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Listas de alistamiento ───────────────────────────────────────────────────

// PickListRepo listas de alistamiento.
type PickListRepo struct{ q Querier }

// NewPickListRepository construye el adaptador.
func NewPickListRepository(q Querier) *PickListRepo { return &PickListRepo{q: q} }

const pickListColumns = `id, sales_order_id, lines, status, shipment_id, created_at, confirmed_at`

func scanPickList(row pgx.Row) (*entity.PickList, error) {
	var p entity.PickList
	if err := row.Scan(&p.ID, &p.SalesOrderID, &p.Lines, &p.Status, &p.ShipmentID, &p.CreatedAt, &p.ConfirmedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PickListRepo) Create(ctx context.Context, p *entity.PickList) error {
	_, err := r.q.Exec(ctx, `INSERT INTO pick_lists (`+pickListColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.SalesOrderID, p.Lines, p.Status, p.ShipmentID, p.CreatedAt, p.ConfirmedAt)
	if err != nil {
		return wrap("insert pick list", err)
	}
	return nil
}

func (r *PickListRepo) get(ctx context.Context, suffix, id string) (*entity.PickList, error) {
	p, err := scanPickList(r.q.QueryRow(ctx, `SELECT `+pickListColumns+` FROM pick_lists WHERE id = $1`+suffix, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, wrap("get pick list", err)
	}
	return p, nil
}

func (r *PickListRepo) GetByID(ctx context.Context, id string) (*entity.PickList, error) {
	return r.get(ctx, "", id)
}

func (r *PickListRepo) GetForUpdate(ctx context.Context, id string) (*entity.PickList, error) {
	return r.get(ctx, " FOR UPDATE", id)
}

func (r *PickListRepo) Update(ctx context.Context, p *entity.PickList) error {
	cmd, err := r.q.Exec(ctx, `UPDATE pick_lists SET status = $2, shipment_id = $3, confirmed_at = $4 WHERE id = $1`,
		p.ID, p.Status, p.ShipmentID, p.ConfirmedAt)
	if err != nil {
		return wrap("update pick list", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PickListRepo) ListOpenByOrder(ctx context.Context, salesOrderID string) ([]*entity.PickList, error) {
	rows, err := r.q.Query(ctx, `SELECT `+pickListColumns+` FROM pick_lists
		WHERE sales_order_id = $1 AND status = $2 ORDER BY created_at`, salesOrderID, entity.PickListOpen)
	if err != nil {
		return nil, wrap("list pick lists", err)
	}
	defer rows.Close()
	var list []*entity.PickList
	for rows.Next() {
		p, err := scanPickList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pick list: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ── Despachos ────────────────────────────────────────────────────────────────

// ShipmentRepo despachos (inmutables).
type ShipmentRepo struct{ q Querier }

// NewShipmentRepository construye el adaptador.
func NewShipmentRepository(q Querier) *ShipmentRepo { return &ShipmentRepo{q: q} }

func (r *ShipmentRepo) Create(ctx context.Context, s *entity.Shipment) error {
	_, err := r.q.Exec(ctx, `INSERT INTO shipments (id, sales_order_id, pick_list_id, warehouse_id, lines, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.SalesOrderID, s.PickListID, s.WarehouseID, s.Lines, s.CreatedAt, s.CreatedBy)
	if err != nil {
		return wrap("insert shipment", err)
	}
	return nil
}

func (r *ShipmentRepo) GetByID(ctx context.Context, id string) (*entity.Shipment, error) {
	var s entity.Shipment
	err := r.q.QueryRow(ctx, `SELECT id, sales_order_id, pick_list_id, warehouse_id, lines, created_at, created_by
		FROM shipments WHERE id = $1`, id).Scan(
		&s.ID, &s.SalesOrderID, &s.PickListID, &s.WarehouseID, &s.Lines, &s.CreatedAt, &s.CreatedBy)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, wrap("get shipment", err)
	}
	return &s, nil
}

// ── Pedidos de venta ─────────────────────────────────────────────────────────

// SalesOrderRepo pedidos de venta y sus líneas.
type SalesOrderRepo struct{ q Querier }

// NewSalesOrderRepository construye el adaptador.
func NewSalesOrderRepository(q Querier) *SalesOrderRepo { return &SalesOrderRepo{q: q} }

const orderLineColumns = `id, sales_order_id, product_id, ordered_quantity, shipped_quantity,
	committed_stock_item_ids, status, updated_at`

func scanOrderLine(row pgx.Row) (*entity.SalesOrderLine, error) {
	var l entity.SalesOrderLine
	var status string
	err := row.Scan(&l.ID, &l.SalesOrderID, &l.ProductID, &l.OrderedQuantity, &l.ShippedQuantity,
		&l.CommittedStockItemIDs, &status, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	l.Status = entity.LineStatus(status)
	return &l, nil
}

// Create inserta el pedido y sus líneas en el orden recibido.
func (r *SalesOrderRepo) Create(ctx context.Context, o *entity.SalesOrder) error {
	_, err := r.q.Exec(ctx, `INSERT INTO sales_orders (id, company_id, reference, fulfillment_warehouse_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`, o.ID, o.CompanyID, o.Reference, o.FulfillmentWarehouseID, o.CreatedAt)
	if err != nil {
		return wrap("insert sales order", err)
	}
	for i, l := range o.Lines {
		ids := l.CommittedStockItemIDs
		if ids == nil {
			ids = []string{}
		}
		_, err := r.q.Exec(ctx, `INSERT INTO sales_order_lines (`+orderLineColumns+`, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			l.ID, o.ID, l.ProductID, l.OrderedQuantity, l.ShippedQuantity, ids, string(l.Status), l.UpdatedAt, i)
		if err != nil {
			return wrap("insert sales order line", err)
		}
	}
	return nil
}

func (r *SalesOrderRepo) get(ctx context.Context, suffix, id string) (*entity.SalesOrder, error) {
	var o entity.SalesOrder
	err := r.q.QueryRow(ctx, `SELECT id, company_id, reference, fulfillment_warehouse_id, created_at
		FROM sales_orders WHERE id = $1`+suffix, id).Scan(
		&o.ID, &o.CompanyID, &o.Reference, &o.FulfillmentWarehouseID, &o.CreatedAt)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, wrap("get sales order", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+orderLineColumns+` FROM sales_order_lines
		WHERE sales_order_id = $1 ORDER BY position`+suffix, id)
	if err != nil {
		return nil, wrap("list sales order lines", err)
	}
	defer rows.Close()
	for rows.Next() {
		l, err := scanOrderLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales order line: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *SalesOrderRepo) GetByID(ctx context.Context, id string) (*entity.SalesOrder, error) {
	return r.get(ctx, "", id)
}

// GetForUpdate bloquea el pedido y todas sus líneas.
func (r *SalesOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.SalesOrder, error) {
	return r.get(ctx, " FOR UPDATE", id)
}

func (r *SalesOrderRepo) GetLineForUpdate(ctx context.Context, lineID string) (*entity.SalesOrderLine, error) {
	l, err := scanOrderLine(r.q.QueryRow(ctx, `SELECT `+orderLineColumns+` FROM sales_order_lines
		WHERE id = $1 FOR UPDATE`, lineID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, wrap("get sales order line", err)
	}
	return l, nil
}

func (r *SalesOrderRepo) UpdateLine(ctx context.Context, l *entity.SalesOrderLine) error {
	ids := l.CommittedStockItemIDs
	if ids == nil {
		ids = []string{}
	}
	cmd, err := r.q.Exec(ctx, `UPDATE sales_order_lines
		SET shipped_quantity = $2, committed_stock_item_ids = $3, status = $4, updated_at = $5
		WHERE id = $1`, l.ID, l.ShippedQuantity, ids, string(l.Status), l.UpdatedAt)
	if err != nil {
		return wrap("update sales order line", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Órdenes de compra ────────────────────────────────────────────────────────

// PurchaseOrderRepo órdenes de compra y sus líneas.
type PurchaseOrderRepo struct{ q Querier }

// NewPurchaseOrderRepository construye el adaptador.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo { return &PurchaseOrderRepo{q: q} }

const purchaseLineColumns = `id, purchase_order_id, product_id, ordered_quantity, received_quantity, unit_cost, updated_at`

func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	_, err := r.q.Exec(ctx, `INSERT INTO purchase_orders (id, company_id, reference, warehouse_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`, po.ID, po.CompanyID, po.Reference, po.WarehouseID, po.CreatedAt)
	if err != nil {
		return wrap("insert purchase order", err)
	}
	for i, l := range po.Lines {
		_, err := r.q.Exec(ctx, `INSERT INTO purchase_order_lines (`+purchaseLineColumns+`, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			l.ID, po.ID, l.ProductID, l.OrderedQuantity, l.ReceivedQuantity, l.UnitCost, l.UpdatedAt, i)
		if err != nil {
			return wrap("insert purchase order line", err)
		}
	}
	return nil
}

func (r *PurchaseOrderRepo) get(ctx context.Context, suffix, id string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.q.QueryRow(ctx, `SELECT id, company_id, reference, warehouse_id, created_at
		FROM purchase_orders WHERE id = $1`+suffix, id).Scan(
		&po.ID, &po.CompanyID, &po.Reference, &po.WarehouseID, &po.CreatedAt)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, wrap("get purchase order", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+purchaseLineColumns+` FROM purchase_order_lines
		WHERE purchase_order_id = $1 ORDER BY position`+suffix, id)
	if err != nil {
		return nil, wrap("list purchase order lines", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.PurchaseOrderID, &l.ProductID, &l.OrderedQuantity,
			&l.ReceivedQuantity, &l.UnitCost, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order line: %w", err)
		}
		po.Lines = append(po.Lines, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.get(ctx, "", id)
}

func (r *PurchaseOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.get(ctx, " FOR UPDATE", id)
}

func (r *PurchaseOrderRepo) UpdateLine(ctx context.Context, l *entity.PurchaseOrderLine) error {
	cmd, err := r.q.Exec(ctx, `UPDATE purchase_order_lines SET received_quantity = $2, unit_cost = $3, updated_at = $4
		WHERE id = $1`, l.ID, l.ReceivedQuantity, l.UnitCost, l.UpdatedAt)
	if err != nil {
		return wrap("update purchase order line", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
