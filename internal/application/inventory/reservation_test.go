package inventory_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	stock "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Asignación
// ──────────────────────────────────────────────────────────────────────────────

func TestAllocate_ParcialSoloSiSePide(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	e.receive(sku, whA, 3)
	o := e.order(inventory.SalesOrderLineDraft{ProductID: sku, OrderedQuantity: qty(5)})
	lineID := o.Lines[0].ID

	_, err := e.reservations.Allocate(e.ctx, companyID, userID, lineID, qty(5), inventory.AllocateOptions{})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	res, err := e.reservations.Allocate(e.ctx, companyID, userID, lineID, qty(5), inventory.AllocateOptions{AllowPartial: true})
	require.NoError(t, err)
	assert.True(t, res.Partial)
	assert.True(t, res.Committed.Equal(qty(3)))
	assert.Equal(t, entity.LinePartiallyCommitted, res.Line.Status)

	_, err = e.reservations.Allocate(e.ctx, companyID, userID, lineID, qty(1), inventory.AllocateOptions{AllowPartial: true})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "sin disponible no hay asignación parcial")
}

func TestAllocate_NoSuperaLoPendiente(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	e.receive(sku, whA, 10)
	o := e.order(inventory.SalesOrderLineDraft{ProductID: sku, OrderedQuantity: qty(3)})

	_, err := e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(2), inventory.AllocateOptions{})
	require.NoError(t, err)
	_, err = e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(2), inventory.AllocateOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)

	items, err := e.read.Items.ListByOrderLine(e.ctx, o.Lines[0].ID)
	require.NoError(t, err)
	require.Len(t, items, 1, "las asignaciones de la misma línea se fusionan")
	assert.True(t, items[0].Quantity.Equal(qty(2)))
}

func TestAllocate_LlaveRepetidaNoDuplica(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	e.receive(sku, whA, 10)
	o := e.order(inventory.SalesOrderLineDraft{ProductID: sku, OrderedQuantity: qty(6)})
	opts := inventory.AllocateOptions{IdempotencyKey: "alloc-1"}

	first, err := e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(3), opts)
	require.NoError(t, err)
	second, err := e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(3), opts)
	require.NoError(t, err)

	assert.True(t, second.Replayed)
	assert.Equal(t, first.MovementID, second.MovementID)
	assert.True(t, e.info(sku, whA).Committed.Equal(qty(3)))
}

func TestAllocate_LotesPorVencimiento(t *testing.T) {
	e := newEnv(t)
	sku := e.product("LOT", entity.TrackingBatch)
	e.receive(sku, whA, 4, stock.Unit{Quantity: qty(4), BatchNumber: "TARDE", ExpiryDate: expiry(12, 1)})
	e.receive(sku, whA, 2, stock.Unit{Quantity: qty(2), BatchNumber: "PRONTO", ExpiryDate: expiry(2, 1)})
	o := e.order(inventory.SalesOrderLineDraft{ProductID: sku, OrderedQuantity: qty(3)})

	_, err := e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(3), inventory.AllocateOptions{})
	require.NoError(t, err)

	items, err := e.read.Items.ListByOrderLine(e.ctx, o.Lines[0].ID)
	require.NoError(t, err)
	byBatch := map[string]string{}
	for _, it := range items {
		byBatch[it.BatchNumber] = it.Quantity.String()
	}
	assert.Equal(t, map[string]string{"PRONTO": "2", "TARDE": "1"}, byBatch)
}

func TestAllocate_LineaDeOtraEmpresa(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	e.receive(sku, whA, 1)
	o := e.order(inventory.SalesOrderLineDraft{ProductID: sku, OrderedQuantity: qty(1)})

	_, err := e.reservations.Allocate(e.ctx, "otra", userID, o.Lines[0].ID, qty(1), inventory.AllocateOptions{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Liberación
// ──────────────────────────────────────────────────────────────────────────────

func TestRelease_DevuelveTodoADisponible(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	e.receive(sku, whA, 10)
	o := e.order(inventory.SalesOrderLineDraft{ProductID: sku, OrderedQuantity: qty(4)})
	_, err := e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(4), inventory.AllocateOptions{})
	require.NoError(t, err)

	res, err := e.reservations.Release(e.ctx, companyID, userID, o.Lines[0].ID)
	require.NoError(t, err)
	assert.True(t, res.Released.Equal(qty(4)))
	assert.Equal(t, entity.LineUnallocated, res.Line.Status)

	info := e.info(sku, whA)
	assert.True(t, info.Available.Equal(qty(10)))
	items, err := e.read.Items.ListByProductWarehouse(e.ctx, sku, whA)
	require.NoError(t, err)
	assert.Len(t, items, 1, "lo liberado vuelve al agregado")

	again, err := e.reservations.Release(e.ctx, companyID, userID, o.Lines[0].ID)
	require.NoError(t, err)
	assert.True(t, again.Released.IsZero())
	assert.Equal(t, 1, countType(e.movements(sku), entity.MovementReservationRelease))
}

func TestReleaseOrder_LiberaTodasLasLineas(t *testing.T) {
	e := newEnv(t)
	x := e.product("SKU-X", entity.TrackingNone)
	y := e.product("SKU-Y", entity.TrackingNone)
	e.receive(x, whA, 5)
	e.receive(y, whA, 5)
	o := e.order(
		inventory.SalesOrderLineDraft{ProductID: x, OrderedQuantity: qty(2)},
		inventory.SalesOrderLineDraft{ProductID: y, OrderedQuantity: qty(3)},
	)
	for _, l := range o.Lines {
		_, err := e.reservations.Allocate(e.ctx, companyID, userID, l.ID, l.OrderedQuantity, inventory.AllocateOptions{})
		require.NoError(t, err)
	}

	results, err := e.reservations.ReleaseOrder(e.ctx, companyID, userID, o.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, e.info(x, whA).Committed.IsZero())
	assert.True(t, e.info(y, whA).Committed.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Alistamiento y despacho
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePickList_NadaQueAlistar(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	e.receive(sku, whA, 5)
	o := e.order(inventory.SalesOrderLineDraft{ProductID: sku, OrderedQuantity: qty(2)})

	_, err := e.reservations.CreatePickList(e.ctx, companyID, o.ID)
	assert.ErrorIs(t, err, domain.ErrNothingToPick)

	_, err = e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(2), inventory.AllocateOptions{})
	require.NoError(t, err)
	_, err = e.reservations.CreatePickList(e.ctx, companyID, o.ID)
	require.NoError(t, err)

	_, err = e.reservations.CreatePickList(e.ctx, companyID, o.ID)
	assert.ErrorIs(t, err, domain.ErrNothingToPick, "lo comprometido ya está en una lista abierta")
}

func TestConfirmPickList_DesactualizadaTrasLiberar(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	e.receive(sku, whA, 5)
	o := e.order(inventory.SalesOrderLineDraft{ProductID: sku, OrderedQuantity: qty(2)})
	_, err := e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(2), inventory.AllocateOptions{})
	require.NoError(t, err)
	pl, err := e.reservations.CreatePickList(e.ctx, companyID, o.ID)
	require.NoError(t, err)

	_, err = e.reservations.Release(e.ctx, companyID, userID, o.Lines[0].ID)
	require.NoError(t, err)

	_, err = e.reservations.ConfirmPickList(e.ctx, companyID, userID, pl.ID)
	require.ErrorIs(t, err, domain.ErrStalePickList)
	assert.Zero(t, countType(e.movements(sku), entity.MovementShipmentOut))
	assert.True(t, e.info(sku, whA).Physical.Equal(qty(5)))
}

func TestConfirmPickList_RepetirDevuelveElMismoDespacho(t *testing.T) {
	e := newEnv(t)
	sn := e.product("SN", entity.TrackingSerial)
	e.receive(sn, whA, 3, stock.SerialUnits([]string{"S1", "S2", "S3"})...)
	o := e.order(inventory.SalesOrderLineDraft{ProductID: sn, OrderedQuantity: qty(2)})
	_, err := e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(2), inventory.AllocateOptions{})
	require.NoError(t, err)

	pl, err := e.reservations.CreatePickList(e.ctx, companyID, o.ID)
	require.NoError(t, err)
	require.Len(t, pl.Lines, 2)
	for _, l := range pl.Lines {
		assert.NotEmpty(t, l.SerialNumber)
	}

	first, err := e.reservations.ConfirmPickList(e.ctx, companyID, userID, pl.ID)
	require.NoError(t, err)
	second, err := e.reservations.ConfirmPickList(e.ctx, companyID, userID, pl.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	require.Len(t, first.Lines, 1)
	assert.Len(t, first.Lines[0].StockItemIDs, 2)
	assert.Equal(t, 2, countType(e.movements(sn), entity.MovementShipmentOut))

	info := e.info(sn, whA)
	assert.True(t, info.Physical.Equal(qty(1)))
	assert.True(t, info.Committed.IsZero())

	got, err := e.reservations.GetPickList(e.ctx, companyID, pl.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PickListConfirmed, got.Status)
	assert.Equal(t, first.ID, got.ShipmentID)
}

// assertLinesBeforeStock verifica el orden de bloqueo compartido con Allocate y Release:
// todas las líneas de pedido antes que cualquier llave de stock.
func assertLinesBeforeStock(t *testing.T, events []string) {
	t.Helper()
	require.NotEmpty(t, events)
	stockSeen := false
	lines := 0
	for _, ev := range events {
		switch {
		case strings.HasPrefix(ev, "stock:"):
			stockSeen = true
		case strings.HasPrefix(ev, "line:"):
			lines++
			assert.False(t, stockSeen, "línea bloqueada después de una llave de stock: %v", events)
		}
	}
	assert.Positive(t, lines, "no se bloqueó ninguna línea: %v", events)
}

func TestBloqueos_LineasAntesQueStock(t *testing.T) {
	e := newEnv(t)
	a := e.product("A", entity.TrackingNone)
	b := e.product("B", entity.TrackingNone)
	e.receive(a, whA, 5)
	e.receive(b, whA, 5)
	o := e.order(
		inventory.SalesOrderLineDraft{ProductID: a, OrderedQuantity: qty(2)},
		inventory.SalesOrderLineDraft{ProductID: b, OrderedQuantity: qty(2)},
	)

	e.locks.reset()
	_, err := e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(2), inventory.AllocateOptions{})
	require.NoError(t, err)
	assertLinesBeforeStock(t, e.locks.snapshot())

	_, err = e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[1].ID, qty(2), inventory.AllocateOptions{})
	require.NoError(t, err)
	pl, err := e.reservations.CreatePickList(e.ctx, companyID, o.ID)
	require.NoError(t, err)

	e.locks.reset()
	_, err = e.reservations.ConfirmPickList(e.ctx, companyID, userID, pl.ID)
	require.NoError(t, err)
	assertLinesBeforeStock(t, e.locks.snapshot())

	o2 := e.order(
		inventory.SalesOrderLineDraft{ProductID: a, OrderedQuantity: qty(1)},
		inventory.SalesOrderLineDraft{ProductID: b, OrderedQuantity: qty(1)},
	)
	for _, l := range o2.Lines {
		_, err = e.reservations.Allocate(e.ctx, companyID, userID, l.ID, qty(1), inventory.AllocateOptions{})
		require.NoError(t, err)
	}
	e.locks.reset()
	_, err = e.reservations.ReleaseOrder(e.ctx, companyID, userID, o2.ID)
	require.NoError(t, err)
	assertLinesBeforeStock(t, e.locks.snapshot())
	assert.True(t, e.info(a, whA).Committed.IsZero())
}

func TestConfirmPickList_DespachoParcialDeLaLinea(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	e.receive(sku, whA, 3)
	o := e.order(inventory.SalesOrderLineDraft{ProductID: sku, OrderedQuantity: qty(5)})
	_, err := e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(5), inventory.AllocateOptions{AllowPartial: true})
	require.NoError(t, err)

	pl, err := e.reservations.CreatePickList(e.ctx, companyID, o.ID)
	require.NoError(t, err)
	_, err = e.reservations.ConfirmPickList(e.ctx, companyID, userID, pl.ID)
	require.NoError(t, err)

	got, err := e.reservations.GetSalesOrder(e.ctx, companyID, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LinePartiallyShipped, got.Lines[0].Status)
	assert.True(t, got.Lines[0].ShippedQuantity.Equal(qty(3)))

	e.receive(sku, whA, 2)
	res, err := e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(2), inventory.AllocateOptions{})
	require.NoError(t, err)
	assert.True(t, res.Committed.Equal(qty(2)))
	_, err = e.reservations.Allocate(e.ctx, companyID, userID, o.Lines[0].ID, qty(1), inventory.AllocateOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidMovement, "la línea ya no tiene pendiente")
}
