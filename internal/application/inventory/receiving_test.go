package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

func (e *env) purchaseOrder(productID string, ordered int64, unitCost decimal.Decimal) *entity.PurchaseOrder {
	e.t.Helper()
	po, err := e.receiving.RegisterPurchaseOrder(e.ctx, inventory.PurchaseOrderDraft{
		CompanyID: companyID, Reference: "OC-1", WarehouseID: whA,
		Lines: []inventory.PurchaseOrderLineDraft{{ProductID: productID, OrderedQuantity: qty(ordered), UnitCost: unitCost}},
	})
	require.NoError(e.t, err)
	return po
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepción de órdenes de compra
// ──────────────────────────────────────────────────────────────────────────────

func TestReceive_LlaveRepetidaNoDuplica(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	po := e.purchaseOrder(sku, 10, decimal.NewFromInt(100))
	line := inventory.ReceiptLine{POLineID: po.Lines[0].ID, Quantity: qty(4), IdempotencyKey: "guia-77"}

	first, err := e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID, []inventory.ReceiptLine{line})
	require.NoError(t, err)
	require.Len(t, first.Lines, 1)
	assert.True(t, first.Lines[0].Received.Equal(qty(4)))

	second, err := e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID, []inventory.ReceiptLine{line})
	require.NoError(t, err)
	assert.True(t, second.Lines[0].Skipped)
	assert.Equal(t, first.Lines[0].MovementID, second.Lines[0].MovementID)

	assert.True(t, e.info(sku, whA).Physical.Equal(qty(4)))
	got, err := e.receiving.GetPurchaseOrder(e.ctx, companyID, po.ID)
	require.NoError(t, err)
	assert.True(t, got.Lines[0].ReceivedQuantity.Equal(qty(4)))
}

func TestReceive_ReintentoPorDocumentoNoDuplica(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	po := e.purchaseOrder(sku, 10, decimal.Zero)
	receipt := []inventory.ReceiptLine{{POLineID: po.Lines[0].ID, Quantity: qty(4), DocumentRef: "REM-55"}}

	first, err := e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID, receipt)
	require.NoError(t, err)
	assert.False(t, first.Lines[0].Skipped)

	second, err := e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID, receipt)
	require.NoError(t, err)
	assert.True(t, second.Lines[0].Skipped, "el reintento con la misma remisión se omite")
	assert.True(t, second.Lines[0].ReceivedTotal.Equal(qty(4)))
	assert.True(t, e.info(sku, whA).Physical.Equal(qty(4)))

	third, err := e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID,
		[]inventory.ReceiptLine{{POLineID: po.Lines[0].ID, Quantity: qty(4), DocumentRef: "REM-56"}})
	require.NoError(t, err)
	assert.False(t, third.Lines[0].Skipped, "otra remisión es otra entrega")
	assert.True(t, e.info(sku, whA).Physical.Equal(qty(8)))
}

func TestReceive_ParcialSinLlaveSeRechaza(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	po := e.purchaseOrder(sku, 10, decimal.Zero)
	lineID := po.Lines[0].ID

	_, err := e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID,
		[]inventory.ReceiptLine{{POLineID: lineID, Quantity: qty(4)}})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, e.movements(sku))

	// La entrega que cierra la línea no necesita llave: un reintento la encuentra completa.
	for i := 0; i < 2; i++ {
		_, err = e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID,
			[]inventory.ReceiptLine{{POLineID: lineID, Quantity: qty(10)}})
		require.NoError(t, err)
	}
	assert.True(t, e.info(sku, whA).Physical.Equal(qty(10)))
	assert.Len(t, e.movements(sku), 1)
}

func TestReceive_LineaCompletaSeOmiteYElExcesoSeMarca(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	po := e.purchaseOrder(sku, 5, decimal.Zero)
	lineID := po.Lines[0].ID

	res, err := e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID,
		[]inventory.ReceiptLine{{POLineID: lineID, Quantity: qty(6)}})
	require.NoError(t, err)
	assert.True(t, res.Lines[0].OverReceived)
	assert.True(t, res.Lines[0].ReceivedTotal.Equal(qty(6)))

	res, err = e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID,
		[]inventory.ReceiptLine{{POLineID: lineID, Quantity: qty(1)}})
	require.NoError(t, err)
	assert.True(t, res.Lines[0].Skipped)
	assert.True(t, e.info(sku, whA).Physical.Equal(qty(6)))
}

func TestReceive_CostoPromedioPonderado(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	po := e.purchaseOrder(sku, 20, decimal.NewFromInt(10))
	lineID := po.Lines[0].ID

	res, err := e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID,
		[]inventory.ReceiptLine{{POLineID: lineID, Quantity: qty(10), DocumentRef: "REM-1"}})
	require.NoError(t, err)
	require.NotNil(t, res.Lines[0].NewAverageCost)
	assert.True(t, res.Lines[0].NewAverageCost.Equal(decimal.NewFromInt(10)), "sin existencias gana el costo recibido")

	cost := decimal.NewFromInt(20)
	res, err = e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID,
		[]inventory.ReceiptLine{{POLineID: lineID, Quantity: qty(10), UnitCost: &cost}})
	require.NoError(t, err)
	assert.True(t, res.Lines[0].NewAverageCost.Equal(decimal.NewFromInt(15)), "costo %s", res.Lines[0].NewAverageCost)

	p, err := e.read.Products.GetByID(e.ctx, sku)
	require.NoError(t, err)
	assert.True(t, p.Cost.Equal(decimal.NewFromInt(15)))
}

func TestReceive_SerialesYAveriados(t *testing.T) {
	e := newEnv(t)
	sn := e.product("SN", entity.TrackingSerial)
	po := e.purchaseOrder(sn, 3, decimal.Zero)
	lineID := po.Lines[0].ID

	_, err := e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID,
		[]inventory.ReceiptLine{{POLineID: lineID, Quantity: qty(2), SerialNumbers: []string{"S1"}, DocumentRef: "REM-1"}})
	require.ErrorIs(t, err, domain.ErrInvalidMovement)

	_, err = e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID, []inventory.ReceiptLine{
		{POLineID: lineID, Quantity: qty(2), SerialNumbers: []string{"S1", "S2"}, DocumentRef: "REM-1"},
		{POLineID: lineID, Quantity: qty(1), SerialNumbers: []string{"S3"}, Damaged: true, DocumentRef: "REM-1"},
	})
	require.NoError(t, err)

	info := e.info(sn, whA)
	assert.True(t, info.Available.Equal(qty(2)))
	assert.True(t, info.Damaged.Equal(qty(1)))
	e.assertConsistent(sn, whA)
}

func TestReceive_LineaDesconocidaNoEscribeNada(t *testing.T) {
	e := newEnv(t)
	sku := e.product("SKU-X", entity.TrackingNone)
	po := e.purchaseOrder(sku, 5, decimal.Zero)

	_, err := e.receiving.ReceivePurchaseOrderItems(e.ctx, companyID, userID, po.ID, []inventory.ReceiptLine{
		{POLineID: po.Lines[0].ID, Quantity: qty(2)},
		{POLineID: "no-existe", Quantity: qty(1)},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, e.movements(sku))
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestListLowStock_OrdenaPorDeficit(t *testing.T) {
	e := newEnv(t)
	for _, p := range []*entity.Product{
		{ID: "p-a", CompanyID: companyID, SKU: "A", TrackingMode: entity.TrackingNone, LowStockThreshold: qty(10), Cost: decimal.NewFromInt(2)},
		{ID: "p-b", CompanyID: companyID, SKU: "B", TrackingMode: entity.TrackingNone, LowStockThreshold: qty(4)},
		{ID: "p-c", CompanyID: companyID, SKU: "C", TrackingMode: entity.TrackingNone, LowStockThreshold: qty(2)},
	} {
		require.NoError(t, e.store.Products().Create(e.ctx, p))
	}
	e.receive("p-a", whA, 3)
	e.receive("p-b", whA, 1)
	e.receive("p-c", whA, 5)

	list, err := e.lowStock.ListLowStock(e.ctx, companyID, whA)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "A", list[0].SKU)
	assert.Equal(t, 1, list[0].Priority)
	assert.True(t, list[0].SuggestedOrderQty.Equal(qty(12)), "ceil(10*1.5) - 3")
	assert.True(t, list[0].EstimatedOrderCost.Equal(decimal.NewFromInt(24)))
	assert.Equal(t, "B", list[1].SKU)
	assert.True(t, list[1].SuggestedOrderQty.Equal(qty(5)), "6 - 1")

	_, err = e.lowStock.ListLowStock(e.ctx, "otra", whA)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
