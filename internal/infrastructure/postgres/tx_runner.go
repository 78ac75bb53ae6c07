package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Los conflictos de
// concurrencia (serialización, deadlock, lock_timeout) se reintentan con una espera creciente.
type TxRunner struct {
	pool        *pgxpool.Pool
	maxAttempts int
	backoff     time.Duration
	log         *logger.Logger
}

// NewTxRunner construye el runner con el pool. maxAttempts < 1 equivale a 1.
func NewTxRunner(pool *pgxpool.Pool, maxAttempts int, log *logger.Logger) *TxRunner {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &TxRunner{pool: pool, maxAttempts: maxAttempts, backoff: 20 * time.Millisecond, log: log}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(inventory.Repos) error) error {
	var err error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err = r.runOnce(ctx, fn)
		if err == nil || !errors.Is(err, domain.ErrConcurrencyConflict) || attempt == r.maxAttempts {
			return err
		}
		r.log.Debug().Err(err).Int("attempt", attempt).Msg("conflicto de concurrencia, reintentando transacción")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff * time.Duration(attempt)):
		}
	}
	return err
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(inventory.Repos) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(Repos(tx)); err != nil {
		if isRetryable(err) && !errors.Is(err, domain.ErrConcurrencyConflict) {
			return wrap("transacción", err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrap("commit transaction", err)
	}
	return nil
}

// Repos construye los repositorios sobre q (pool para lecturas, tx dentro de Run).
func Repos(q Querier) inventory.Repos {
	return inventory.Repos{
		Locks:          NewAdvisoryLocker(q),
		Movements:      NewStockMovementRepository(q),
		Items:          NewStockItemRepository(q),
		Products:       NewProductRepository(q),
		Warehouses:     NewWarehouseRepository(q),
		Transfers:      NewTransferRepository(q),
		Adjustments:    NewAdjustmentRepository(q),
		SalesOrders:    NewSalesOrderRepository(q),
		PickLists:      NewPickListRepository(q),
		Shipments:      NewShipmentRepository(q),
		PurchaseOrders: NewPurchaseOrderRepository(q),
	}
}
