package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	stock "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de pruebas sobre el almacenamiento en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyID = "c-1"
	userID    = "u-1"
	whA       = "w-a"
	whB       = "w-b"
)

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func expiry(month time.Month, d int) *time.Time {
	t := time.Date(2027, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

type recordingPublisher struct {
	mu        sync.Mutex
	movements []*entity.StockMovement
}

func (p *recordingPublisher) PublishMovements(_ context.Context, m []*entity.StockMovement) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.movements = append(p.movements, m...)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.movements)
}

// lockTrace registra el orden en que una transacción toma bloqueos: "line:<id>" o "stock:<key>".
type lockTrace struct {
	mu     sync.Mutex
	events []string
}

func (t *lockTrace) add(ev string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, ev)
}

func (t *lockTrace) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = nil
}

func (t *lockTrace) snapshot() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.events...)
}

type tracingLocker struct {
	repository.StockLocker
	trace *lockTrace
}

func (l tracingLocker) Lock(ctx context.Context, keys ...repository.StockKey) error {
	for _, k := range keys {
		l.trace.add("stock:" + k.String())
	}
	return l.StockLocker.Lock(ctx, keys...)
}

type tracingSalesOrders struct {
	repository.SalesOrderRepository
	trace *lockTrace
}

func (r tracingSalesOrders) GetLineForUpdate(ctx context.Context, lineID string) (*entity.SalesOrderLine, error) {
	r.trace.add("line:" + lineID)
	return r.SalesOrderRepository.GetLineForUpdate(ctx, lineID)
}

type tracingRunner struct {
	inner inventory.TxRunner
	trace *lockTrace
}

func (r tracingRunner) Run(ctx context.Context, fn func(inventory.Repos) error) error {
	return r.inner.Run(ctx, func(repos inventory.Repos) error {
		repos.Locks = tracingLocker{StockLocker: repos.Locks, trace: r.trace}
		repos.SalesOrders = tracingSalesOrders{SalesOrderRepository: repos.SalesOrders, trace: r.trace}
		return fn(repos)
	})
}

type env struct {
	t            *testing.T
	locks        *lockTrace
	ctx          context.Context
	store        *memory.Store
	read         inventory.Repos
	publisher    *recordingPublisher
	ledger       *inventory.Ledger
	availability *inventory.AvailabilityUseCase
	transfers    *inventory.TransferUseCase
	adjustments  *inventory.AdjustmentUseCase
	reservations *inventory.ReservationUseCase
	receiving    *inventory.ReceivingUseCase
	lowStock     *inventory.LowStockUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	read := store.Repos()
	log := logger.Nop()
	pub := &recordingPublisher{}
	trace := &lockTrace{}
	ledger := inventory.NewLedger(tracingRunner{inner: store, trace: trace}, read, pub, log)
	e := &env{
		t:            t,
		locks:        trace,
		ctx:          context.Background(),
		store:        store,
		read:         read,
		publisher:    pub,
		ledger:       ledger,
		availability: inventory.NewAvailabilityUseCase(ledger, read, log),
		transfers:    inventory.NewTransferUseCase(ledger, read, log),
		adjustments:  inventory.NewAdjustmentUseCase(ledger, read, log),
		reservations: inventory.NewReservationUseCase(ledger, read, log),
		receiving:    inventory.NewReceivingUseCase(ledger, read, log),
		lowStock:     inventory.NewLowStockUseCase(read),
	}
	now := time.Now()
	require.NoError(t, store.Warehouses().Create(e.ctx, &entity.Warehouse{ID: whA, CompanyID: companyID, Name: "A", IsDefault: true, CreatedAt: now}))
	require.NoError(t, store.Warehouses().Create(e.ctx, &entity.Warehouse{ID: whB, CompanyID: companyID, Name: "B", CreatedAt: now}))
	return e
}

func (e *env) product(sku string, mode entity.TrackingMode) string {
	e.t.Helper()
	p := &entity.Product{
		ID: "p-" + sku, CompanyID: companyID, SKU: sku, Name: sku,
		TrackingMode: mode, LowStockThreshold: decimal.Zero, Cost: decimal.Zero, CreatedAt: time.Now(),
	}
	require.NoError(e.t, e.store.Products().Create(e.ctx, p))
	return p.ID
}

func (e *env) receive(productID, warehouseID string, n int64, units ...stock.Unit) *entity.StockMovement {
	e.t.Helper()
	m, err := e.ledger.AppendMovement(e.ctx, inventory.MovementInput{
		CompanyID: companyID, UserID: userID, ProductID: productID, WarehouseID: warehouseID,
		Type: entity.MovementReceiptIn, QuantityChange: qty(n), Units: units,
	})
	require.NoError(e.t, err)
	return m
}

func (e *env) info(productID, warehouseID string) stock.StockInfo {
	e.t.Helper()
	info, err := e.availability.GetStockInfo(e.ctx, companyID, productID, warehouseID)
	require.NoError(e.t, err)
	return info
}

func (e *env) order(lines ...inventory.SalesOrderLineDraft) *entity.SalesOrder {
	e.t.Helper()
	o, err := e.reservations.RegisterSalesOrder(e.ctx, inventory.SalesOrderDraft{
		CompanyID: companyID, Reference: "SO-1", FulfillmentWarehouseID: whA, Lines: lines,
	})
	require.NoError(e.t, err)
	return o
}

func (e *env) movements(productID string) []*entity.StockMovement {
	e.t.Helper()
	list, err := e.ledger.ListMovements(e.ctx, repository.MovementFilter{CompanyID: companyID, ProductID: productID, Limit: 500})
	require.NoError(e.t, err)
	return list
}

func countType(list []*entity.StockMovement, typ entity.MovementType) int {
	n := 0
	for _, m := range list {
		if m.Type == typ {
			n++
		}
	}
	return n
}

// assertConsistent verifica que el libro y las filas cuadren en (producto, bodega).
func (e *env) assertConsistent(productID, warehouseID string) {
	e.t.Helper()
	check, err := e.availability.VerifyLedger(e.ctx, companyID, productID, warehouseID)
	require.NoError(e.t, err)
	require.True(e.t, check.LedgerBalance.Equal(check.ItemsBalance),
		"libro %s vs filas %s", check.LedgerBalance, check.ItemsBalance)
}
