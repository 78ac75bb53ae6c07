package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
)

var errBoom = errors.New("boom")

func item(id, serial string) *entity.StockItem {
	return &entity.StockItem{
		ID: id, ProductID: "p-1", WarehouseID: "w-1", Status: entity.StockAvailable,
		Quantity: decimal.NewFromInt(1), SerialNumber: serial, CreatedAt: time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_RunConfirmaSoloSinError(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	err := s.Run(ctx, func(r inventory.Repos) error {
		require.NoError(t, r.Items.Create(ctx, item("a", "")))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	got, err := s.Repos().Items.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got, "una transacción fallida no debe dejar rastro")

	require.NoError(t, s.Run(ctx, func(r inventory.Repos) error {
		return r.Items.Create(ctx, item("a", ""))
	}))
	got, err = s.Repos().Items.GetByID(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.Version)
}

func TestStore_ContextoCanceladoRevierte(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := memory.NewStore()

	err := s.Run(ctx, func(r inventory.Repos) error {
		require.NoError(t, r.Items.Create(ctx, item("a", "")))
		cancel()
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)

	got, _ := s.Repos().Items.GetByID(context.Background(), "a")
	assert.Nil(t, got)
}

func TestStore_LectorNoVeCambiosSinConfirmar(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	read := s.Repos()

	require.NoError(t, s.Run(ctx, func(r inventory.Repos) error {
		require.NoError(t, r.Items.Create(ctx, item("a", "")))
		got, err := read.Items.GetByID(ctx, "a")
		require.NoError(t, err)
		assert.Nil(t, got, "el lector solo ve el último estado confirmado")
		return nil
	}))

	got, err := read.Items.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filas de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestItemRepo_VersionDesactualizadaEsConflicto(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Run(ctx, func(r inventory.Repos) error { return r.Items.Create(ctx, item("a", "")) }))

	stale, _ := s.Repos().Items.GetByID(ctx, "a")
	require.NoError(t, s.Run(ctx, func(r inventory.Repos) error {
		cur, _ := r.Items.GetByID(ctx, "a")
		cur.Quantity = decimal.NewFromInt(2)
		return r.Items.Update(ctx, cur)
	}))

	err := s.Run(ctx, func(r inventory.Repos) error { return r.Items.Update(ctx, stale) })
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
}

func TestItemRepo_SerieRepetidaEsDuplicado(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Run(ctx, func(r inventory.Repos) error { return r.Items.Create(ctx, item("a", "SN-1")) }))

	err := s.Run(ctx, func(r inventory.Repos) error { return r.Items.Create(ctx, item("b", "SN-1")) })
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemRepo_CopiasIndependientes(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Run(ctx, func(r inventory.Repos) error { return r.Items.Create(ctx, item("a", "")) }))

	got, _ := s.Repos().Items.GetByID(ctx, "a")
	got.Quantity = decimal.NewFromInt(99)

	again, _ := s.Repos().Items.GetByID(ctx, "a")
	assert.True(t, again.Quantity.Equal(decimal.NewFromInt(1)), "mutar la copia no debe tocar el estado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro
// ──────────────────────────────────────────────────────────────────────────────

func movement(key string, typ entity.MovementType, n int64, at time.Time) *entity.StockMovement {
	return &entity.StockMovement{
		ID: key + "-id", CompanyID: "c-1", ProductID: "p-1", WarehouseID: "w-1",
		Type: typ, QuantityChange: decimal.NewFromInt(n), IdempotencyKey: key, CreatedAt: at,
	}
}

func TestMovementRepo_LlaveRepetidaEsDuplicado(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	now := time.Now()
	require.NoError(t, s.Run(ctx, func(r inventory.Repos) error {
		return r.Movements.Create(ctx, movement("k1", entity.MovementReceiptIn, 5, now))
	}))

	err := s.Run(ctx, func(r inventory.Repos) error {
		return r.Movements.Create(ctx, movement("k1", entity.MovementReceiptIn, 5, now))
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := s.Repos().Movements.GetByIdempotencyKey(ctx, "k1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "k1-id", got.ID)
}

func TestMovementRepo_ListaRecientesPrimeroYSumaSinReservas(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Run(ctx, func(r inventory.Repos) error {
		for _, m := range []*entity.StockMovement{
			movement("a", entity.MovementReceiptIn, 10, base),
			movement("b", entity.MovementReservationHold, 4, base.Add(time.Hour)),
			movement("c", entity.MovementShipmentOut, -3, base.Add(2*time.Hour)),
		} {
			if err := r.Movements.Create(ctx, m); err != nil {
				return err
			}
		}
		return nil
	}))

	list, err := s.Repos().Movements.List(ctx, repository.MovementFilter{CompanyID: "c-1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].IdempotencyKey)
	assert.Equal(t, "b", list[1].IdempotencyKey)

	from := base.Add(30 * time.Minute)
	list, err = s.Repos().Movements.List(ctx, repository.MovementFilter{From: &from})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	sum, err := s.Repos().Movements.SumByProductWarehouse(ctx, "p-1", "w-1")
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(7)), "las reservas no cambian el saldo físico: %s", sum)
}

// ──────────────────────────────────────────────────────────────────────────────
// Documentos
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesOrderRepo_ActualizaLinea(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	order := &entity.SalesOrder{
		ID: "o-1", CompanyID: "c-1",
		Lines: []*entity.SalesOrderLine{{ID: "l-1", SalesOrderID: "o-1", ProductID: "p-1", OrderedQuantity: decimal.NewFromInt(3)}},
	}
	require.NoError(t, s.Run(ctx, func(r inventory.Repos) error { return r.SalesOrders.Create(ctx, order) }))

	require.NoError(t, s.Run(ctx, func(r inventory.Repos) error {
		line, err := r.SalesOrders.GetLineForUpdate(ctx, "l-1")
		require.NoError(t, err)
		line.Status = entity.LineFullyCommitted
		line.CommittedStockItemIDs = []string{"a"}
		return r.SalesOrders.UpdateLine(ctx, line)
	}))

	got, err := s.Repos().SalesOrders.GetByID(ctx, "o-1")
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, entity.LineFullyCommitted, got.Lines[0].Status)
	assert.Equal(t, []string{"a"}, got.Lines[0].CommittedStockItemIDs)

	missing, err := s.Repos().SalesOrders.GetLineForUpdate(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPickListRepo_SoloAbiertas(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Run(ctx, func(r inventory.Repos) error {
		if err := r.PickLists.Create(ctx, &entity.PickList{ID: "a", SalesOrderID: "o-1", Status: entity.PickListOpen}); err != nil {
			return err
		}
		return r.PickLists.Create(ctx, &entity.PickList{ID: "b", SalesOrderID: "o-1", Status: entity.PickListConfirmed})
	}))

	open, err := s.Repos().PickLists.ListOpenByOrder(ctx, "o-1")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "a", open[0].ID)
}

func TestWarehouses_EscriturasFueraDeTransaccion(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	repo := s.Warehouses()

	require.NoError(t, repo.Create(ctx, &entity.Warehouse{ID: "w-1", CompanyID: "c-1", IsDefault: true}))
	require.NoError(t, repo.Create(ctx, &entity.Warehouse{ID: "w-2", CompanyID: "c-1"}))
	require.NoError(t, repo.ClearDefault(ctx, "c-1"))

	w, err := repo.GetByID(ctx, "w-1")
	require.NoError(t, err)
	assert.False(t, w.IsDefault)

	list, err := repo.ListByCompany(ctx, "c-1", 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	err = s.Products().Create(ctx, &entity.Product{ID: "p-1", CompanyID: "c-1", SKU: "X"})
	require.NoError(t, err)
	err = s.Products().Create(ctx, &entity.Product{ID: "p-2", CompanyID: "c-1", SKU: "X"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
