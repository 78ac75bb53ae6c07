package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo libro de inventario sobre PostgreSQL. Solo INSERT; la tabla rechaza
// UPDATE y DELETE con un trigger.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, company_id, product_id, warehouse_id, type, quantity_change, notes,
	reference_type, reference_id, stock_item_id, idempotency_key, created_at, created_by`

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var typ string
	var stockItemID, key *string
	err := row.Scan(&m.ID, &m.CompanyID, &m.ProductID, &m.WarehouseID, &typ, &m.QuantityChange, &m.Notes,
		&m.ReferenceType, &m.ReferenceID, &stockItemID, &key, &m.CreatedAt, &m.CreatedBy)
	if err != nil {
		return nil, err
	}
	m.Type = entity.MovementType(typ)
	m.StockItemID = deref(stockItemID)
	m.IdempotencyKey = deref(key)
	return &m, nil
}

// Create inserta el asiento. Una llave de idempotencia repetida es ErrDuplicate.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.CompanyID, m.ProductID, m.WarehouseID, string(m.Type), m.QuantityChange, m.Notes,
		m.ReferenceType, m.ReferenceID, nullable(m.StockItemID), nullable(m.IdempotencyKey), m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return wrap("insert stock movement", err)
	}
	return nil
}

func (r *StockMovementRepo) GetByIdempotencyKey(ctx context.Context, key string) (*entity.StockMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM stock_movements WHERE idempotency_key = $1`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get stock movement by key", err)
	}
	return m, nil
}

// List consulta el libro con filtros opcionales, más recientes primero.
func (r *StockMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.StockMovement, error) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.CompanyID != "" {
		add("company_id = $%d", f.CompanyID)
	}
	if f.ProductID != "" {
		add("product_id = $%d", f.ProductID)
	}
	if f.WarehouseID != "" {
		add("warehouse_id = $%d", f.WarehouseID)
	}
	if f.ReferenceID != "" {
		add("reference_id = $%d", f.ReferenceID)
	}
	if f.From != nil {
		add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("created_at <= $%d", *f.To)
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM stock_movements %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		movementColumns, where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *StockMovementRepo) SumByProductWarehouse(ctx context.Context, productID, warehouseID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(quantity_change), 0)
		FROM stock_movements
		WHERE product_id = $1 AND warehouse_id = $2 AND type NOT IN ($3, $4)`
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx, query, productID, warehouseID,
		string(entity.MovementReservationHold), string(entity.MovementReservationRelease)).Scan(&sum)
	if err != nil {
		return decimal.Zero, wrap("sum stock movements", err)
	}
	return sum, nil
}
