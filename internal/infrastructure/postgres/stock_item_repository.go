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

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo filas materializadas de stock sobre PostgreSQL (pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, product_id, warehouse_id, status, quantity, serial_number, batch_number,
	expiry_date, order_line_id, version, created_at, updated_at`

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var it entity.StockItem
	var status string
	var orderLineID *string
	err := row.Scan(&it.ID, &it.ProductID, &it.WarehouseID, &status, &it.Quantity, &it.SerialNumber,
		&it.BatchNumber, &it.ExpiryDate, &orderLineID, &it.Version, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	it.Status = entity.StockStatus(status)
	it.OrderLineID = deref(orderLineID)
	return &it, nil
}

func (r *StockItemRepo) list(ctx context.Context, where string, args ...any) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE ` + where + ` ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap("list stock items", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		it, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// GetByID obtiene una fila de stock.
func (r *StockItemRepo) GetByID(ctx context.Context, id string) (*entity.StockItem, error) {
	it, err := scanStockItem(r.q.QueryRow(ctx, `SELECT `+stockItemColumns+` FROM stock_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get stock item", err)
	}
	return it, nil
}

func (r *StockItemRepo) ListByProductWarehouse(ctx context.Context, productID, warehouseID string) ([]*entity.StockItem, error) {
	return r.list(ctx, `product_id = $1 AND warehouse_id = $2`, productID, warehouseID)
}

func (r *StockItemRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.StockItem, error) {
	return r.list(ctx, `product_id = $1`, productID)
}

func (r *StockItemRepo) ListByOrderLine(ctx context.Context, orderLineID string) ([]*entity.StockItem, error) {
	return r.list(ctx, `order_line_id = $1`, orderLineID)
}

// Create inserta la fila con versión 1. Una serie repetida del producto es ErrDuplicate.
func (r *StockItemRepo) Create(ctx context.Context, it *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1, $10, $11)`
	_, err := r.q.Exec(ctx, query, it.ID, it.ProductID, it.WarehouseID, string(it.Status), it.Quantity,
		it.SerialNumber, it.BatchNumber, it.ExpiryDate, nullable(it.OrderLineID), it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return wrap("insert stock item", err)
	}
	it.Version = 1
	return nil
}

// Update aplica los cambios solo si la versión leída sigue vigente.
func (r *StockItemRepo) Update(ctx context.Context, it *entity.StockItem) error {
	query := `
		UPDATE stock_items SET status = $3, quantity = $4, order_line_id = $5, updated_at = $6, version = version + 1
		WHERE id = $1 AND version = $2`
	cmd, err := r.q.Exec(ctx, query, it.ID, it.Version, string(it.Status), it.Quantity, nullable(it.OrderLineID), it.UpdatedAt)
	if err != nil {
		return wrap("update stock item", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("fila de stock %s: %w", it.ID, domain.ErrConcurrencyConflict)
	}
	it.Version++
	return nil
}

func (r *StockItemRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return wrap("delete stock item", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("fila de stock %s: %w", id, domain.ErrConcurrencyConflict)
	}
	return nil
}
