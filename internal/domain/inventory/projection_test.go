package inventory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID   = "p-1"
	testWarehouseID = "w-1"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func day(d int) *time.Time {
	t := time.Date(2026, 4, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func row(id string, status entity.StockStatus, n int64) *entity.StockItem {
	return &entity.StockItem{
		ID: id, ProductID: testProductID, WarehouseID: testWarehouseID,
		Status: status, Quantity: qty(n), CreatedAt: testNow.Add(-time.Hour),
	}
}

func product(mode entity.TrackingMode) *entity.Product {
	return &entity.Product{ID: testProductID, TrackingMode: mode}
}

// apply simula la persistencia de los cambios sobre el conjunto de filas.
func apply(items []*entity.StockItem, c inventory.ItemChanges) []*entity.StockItem {
	deleted := map[string]bool{}
	for _, id := range c.Deleted {
		deleted[id] = true
	}
	updated := map[string]*entity.StockItem{}
	for _, u := range c.Updated {
		updated[u.ID] = u
	}
	var out []*entity.StockItem
	for _, it := range items {
		if deleted[it.ID] {
			continue
		}
		if u, ok := updated[it.ID]; ok {
			out = append(out, u)
			continue
		}
		out = append(out, it)
	}
	return append(out, c.Created...)
}

// ──────────────────────────────────────────────────────────────────────────────
// Incrementos
// ──────────────────────────────────────────────────────────────────────────────

func TestPlanIncrease_SinTrazabilidadSumaAlAgregado(t *testing.T) {
	items := []*entity.StockItem{row("a", entity.StockAvailable, 5)}

	c, err := inventory.PlanIncrease(items, product(entity.TrackingNone), testWarehouseID,
		[]inventory.Unit{{Quantity: qty(3)}}, entity.StockAvailable, testNow)
	require.NoError(t, err)

	assert.Empty(t, c.Created, "no debe crear una segunda fila agregada")
	require.Len(t, c.Updated, 1)
	assert.True(t, c.Updated[0].Quantity.Equal(qty(8)))
	assert.True(t, items[0].Quantity.Equal(qty(5)), "el planificador no debe mutar las filas de entrada")
	assert.True(t, c.Quantity().Equal(qty(3)))
}

func TestPlanIncrease_SerialCreaUnaFilaPorSerie(t *testing.T) {
	c, err := inventory.PlanIncrease(nil, product(entity.TrackingSerial), testWarehouseID,
		inventory.SerialUnits([]string{"S1", "S2"}), entity.StockAvailable, testNow)
	require.NoError(t, err)

	require.Len(t, c.Created, 2)
	for _, it := range c.Created {
		assert.True(t, it.Quantity.Equal(qty(1)))
		assert.NotEmpty(t, it.SerialNumber)
		assert.Equal(t, testWarehouseID, it.WarehouseID)
	}
}

func TestPlanIncrease_SerieDuplicadaEsInvalida(t *testing.T) {
	existing := row("s1", entity.StockAvailable, 1)
	existing.SerialNumber = "S1"

	_, err := inventory.PlanIncrease([]*entity.StockItem{existing}, product(entity.TrackingSerial), testWarehouseID,
		inventory.SerialUnits([]string{"S1"}), entity.StockAvailable, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)

	_, err = inventory.PlanIncrease(nil, product(entity.TrackingSerial), testWarehouseID,
		inventory.SerialUnits([]string{"S9", "S9"}), entity.StockAvailable, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidMovement, "series repetidas en la misma entrada")
}

func TestPlanIncrease_LoteRequiereNumeroYSeFusiona(t *testing.T) {
	lot := row("l1", entity.StockAvailable, 4)
	lot.BatchNumber = "L-01"
	lot.ExpiryDate = day(10)

	_, err := inventory.PlanIncrease(nil, product(entity.TrackingBatch), testWarehouseID,
		[]inventory.Unit{{Quantity: qty(2)}}, entity.StockAvailable, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)

	c, err := inventory.PlanIncrease([]*entity.StockItem{lot}, product(entity.TrackingBatch), testWarehouseID,
		[]inventory.Unit{{Quantity: qty(2), BatchNumber: "L-01", ExpiryDate: day(10)}}, entity.StockAvailable, testNow)
	require.NoError(t, err)
	require.Len(t, c.Updated, 1)
	assert.True(t, c.Updated[0].Quantity.Equal(qty(6)))

	c, err = inventory.PlanIncrease([]*entity.StockItem{lot}, product(entity.TrackingBatch), testWarehouseID,
		[]inventory.Unit{{Quantity: qty(2), BatchNumber: "L-01", ExpiryDate: day(11)}}, entity.StockAvailable, testNow)
	require.NoError(t, err)
	assert.Len(t, c.Created, 1, "otro vencimiento es otro lote")
}

func TestPlanIncrease_CantidadFraccionariaEsInvalida(t *testing.T) {
	_, err := inventory.PlanIncrease(nil, product(entity.TrackingNone), testWarehouseID,
		[]inventory.Unit{{Quantity: decimal.RequireFromString("1.5")}}, entity.StockAvailable, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decrementos
// ──────────────────────────────────────────────────────────────────────────────

func TestPlanDecrease_ConsumeFEFO(t *testing.T) {
	late := row("late", entity.StockAvailable, 5)
	late.ExpiryDate = day(20)
	early := row("early", entity.StockAvailable, 3)
	early.ExpiryDate = day(5)
	none := row("none", entity.StockAvailable, 10)

	c, err := inventory.PlanDecrease([]*entity.StockItem{none, late, early}, testProductID, testWarehouseID,
		qty(4), "", []entity.StockStatus{entity.StockAvailable}, testNow)
	require.NoError(t, err)

	require.Len(t, c.Portions, 2)
	assert.Equal(t, "early", c.Portions[0].StockItemID)
	assert.True(t, c.Portions[0].Quantity.Equal(qty(3)))
	assert.Equal(t, "late", c.Portions[1].StockItemID)
	assert.True(t, c.Portions[1].Quantity.Equal(qty(1)))
	assert.Equal(t, []string{"early"}, c.Deleted)
}

func TestPlanDecrease_InsuficienteNoModificaNada(t *testing.T) {
	items := []*entity.StockItem{row("a", entity.StockAvailable, 2), row("c", entity.StockCommitted, 5)}

	_, err := inventory.PlanDecrease(items, testProductID, testWarehouseID,
		qty(3), "", []entity.StockStatus{entity.StockAvailable}, testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var ise *domain.InsufficientStockError
	require.True(t, errors.As(err, &ise))
	assert.True(t, ise.Available.Equal(qty(2)), "lo comprometido no cuenta como disponible")
}

func TestPlanDecrease_FilaDirigida(t *testing.T) {
	items := []*entity.StockItem{row("a", entity.StockAvailable, 2), row("c", entity.StockCommitted, 5)}

	c, err := inventory.PlanDecrease(items, testProductID, testWarehouseID,
		qty(2), "c", []entity.StockStatus{entity.StockCommitted}, testNow)
	require.NoError(t, err)
	require.Len(t, c.Updated, 1)
	assert.Equal(t, "c", c.Updated[0].ID)
	assert.True(t, c.Updated[0].Quantity.Equal(qty(3)))

	_, err = inventory.PlanDecrease(items, testProductID, testWarehouseID,
		qty(1), "c", []entity.StockStatus{entity.StockAvailable}, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidMovement, "el estado de la fila debe estar permitido")
}

func TestPlanDecrease_OrdenDeEstados(t *testing.T) {
	items := []*entity.StockItem{row("a", entity.StockAvailable, 2), row("d", entity.StockDamaged, 2)}

	c, err := inventory.PlanDecrease(items, testProductID, testWarehouseID,
		qty(3), "", []entity.StockStatus{entity.StockDamaged, entity.StockAvailable}, testNow)
	require.NoError(t, err)
	require.Len(t, c.Portions, 2)
	assert.Equal(t, "d", c.Portions[0].StockItemID)
	assert.Equal(t, "a", c.Portions[1].StockItemID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compromiso y liberación
// ──────────────────────────────────────────────────────────────────────────────

func TestPlanCommit_ParteElAgregado(t *testing.T) {
	items := []*entity.StockItem{row("a", entity.StockAvailable, 10)}

	c, err := inventory.PlanCommit(items, testProductID, testWarehouseID, qty(7), "line-1", testNow)
	require.NoError(t, err)

	items = apply(items, c)
	info := inventory.ComputeStockInfo(items)
	assert.True(t, info.Physical.Equal(qty(10)))
	assert.True(t, info.Committed.Equal(qty(7)))
	assert.True(t, info.Available.Equal(qty(3)))

	committed, ids := inventory.CommittedTo(items, "line-1")
	assert.True(t, committed.Equal(qty(7)))
	assert.Len(t, ids, 1)
}

func TestPlanCommit_FusionaConCompromisoPrevio(t *testing.T) {
	items := []*entity.StockItem{row("a", entity.StockAvailable, 10)}

	c, err := inventory.PlanCommit(items, testProductID, testWarehouseID, qty(3), "line-1", testNow)
	require.NoError(t, err)
	items = apply(items, c)

	c, err = inventory.PlanCommit(items, testProductID, testWarehouseID, qty(2), "line-1", testNow)
	require.NoError(t, err)
	items = apply(items, c)

	assert.Len(t, items, 2, "un agregado disponible y una fila comprometida")
	committed, _ := inventory.CommittedTo(items, "line-1")
	assert.True(t, committed.Equal(qty(5)))
}

func TestPlanCommit_SinDisponibleSuficiente(t *testing.T) {
	items := []*entity.StockItem{row("a", entity.StockAvailable, 2)}
	_, err := inventory.PlanCommit(items, testProductID, testWarehouseID, qty(3), "line-1", testNow)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestPlanRelease_VuelveAlAgregado(t *testing.T) {
	items := []*entity.StockItem{row("a", entity.StockAvailable, 10)}
	c, err := inventory.PlanCommit(items, testProductID, testWarehouseID, qty(4), "line-1", testNow)
	require.NoError(t, err)
	items = apply(items, c)

	c, err = inventory.PlanRelease(items, testProductID, testWarehouseID, "line-1", testNow)
	require.NoError(t, err)
	assert.True(t, c.Quantity().Equal(qty(4)))
	items = apply(items, c)

	require.Len(t, items, 1)
	assert.Equal(t, entity.StockAvailable, items[0].Status)
	assert.True(t, items[0].Quantity.Equal(qty(10)))
	assert.Empty(t, items[0].OrderLineID)
}

func TestPlanRelease_SerialCambiaEstado(t *testing.T) {
	s := row("s1", entity.StockCommitted, 1)
	s.SerialNumber = "S1"
	s.OrderLineID = "line-1"

	c, err := inventory.PlanRelease([]*entity.StockItem{s}, testProductID, testWarehouseID, "line-1", testNow)
	require.NoError(t, err)
	require.Len(t, c.Updated, 1)
	assert.Equal(t, entity.StockAvailable, c.Updated[0].Status)
	assert.Empty(t, c.Deleted)
}
