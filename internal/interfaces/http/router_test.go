package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/despatch"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/inventario-ledger/internal/interfaces/http"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// API completa sobre el almacenamiento en memoria
// ──────────────────────────────────────────────────────────────────────────────

type apiClient struct {
	t    *testing.T
	app  *fiber.App
	auth string
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	store := memory.NewStore()
	read := store.Repos()
	log := logger.Nop()
	ledger := inventory.NewLedger(store, read, nil, log)
	reservations := inventory.NewReservationUseCase(ledger, read, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		WarehouseUC:  usecase.NewWarehouseUseCase(read.Warehouses, store),
		ProductUC:    usecase.NewProductUseCase(read.Products),
		Ledger:       ledger,
		Availability: inventory.NewAvailabilityUseCase(ledger, read, log),
		LowStock:     inventory.NewLowStockUseCase(read),
		Transfers:    inventory.NewTransferUseCase(ledger, read, log),
		Adjustments:  inventory.NewAdjustmentUseCase(ledger, read, log),
		Reservations: reservations,
		Receiving:    inventory.NewReceivingUseCase(ledger, read, log),
		Printouts:    inventory.NewPrintoutUseCase(reservations, read, pdf.NewPickListGenerator(), despatch.NewBuilder()),
		JWTSecret:    testJWTSecret,
		JWTIssuer:    testIssuer,
		Log:          log,
	})
	return &apiClient{t: t, app: app, auth: bearer(t, testCompanyID)}
}

func (a *apiClient) do(method, path string, body interface{}) *http.Response {
	a.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if a.auth != "" {
		req.Header.Set("Authorization", a.auth)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	return resp
}

// call ejecuta la petición, valida el código y decodifica la respuesta en out.
func (a *apiClient) call(method, path string, body interface{}, status int, out interface{}) {
	a.t.Helper()
	resp := a.do(method, path, body)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	require.Equal(a.t, status, resp.StatusCode, "%s %s: %s", method, path, raw)
	if out != nil {
		require.NoError(a.t, json.Unmarshal(raw, out))
	}
}

func (a *apiClient) errorCode(method, path string, body interface{}, status int) string {
	a.t.Helper()
	var e dto.ErrorResponse
	a.call(method, path, body, status, &e)
	return e.Code
}

func (a *apiClient) setup() (warehouseID, productID string) {
	a.t.Helper()
	var wh dto.WarehouseResponse
	a.call(http.MethodPost, "/api/warehouses", fiber.Map{"name": "Principal"}, fiber.StatusCreated, &wh)
	assert.True(a.t, wh.IsDefault, "la primera bodega queda como predeterminada")

	var p dto.ProductResponse
	a.call(http.MethodPost, "/api/products", fiber.Map{"sku": "CAF-500", "name": "Café 500g", "low_stock_threshold": 5}, fiber.StatusCreated, &p)

	var m dto.MovementResponse
	a.call(http.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id": p.ID, "warehouse_id": wh.ID, "type": "RECEIPT_IN", "quantity_change": 10,
	}, fiber.StatusCreated, &m)
	assert.True(a.t, decimal.NewFromInt(10).Equal(m.QuantityChange))
	return wh.ID, p.ID
}

func (a *apiClient) stock(productID, warehouseID string) dto.StockInfoResponse {
	a.t.Helper()
	var info dto.StockInfoResponse
	a.call(http.MethodGet, "/api/inventory/stock/"+productID+"?warehouse_id="+warehouseID, nil, fiber.StatusOK, &info)
	return info
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de pedido: asignar → alistar → despachar
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_FlujoPedidoCompleto(t *testing.T) {
	api := newAPI(t)
	whID, productID := api.setup()

	var order dto.SalesOrderResponse
	api.call(http.MethodPost, "/api/sales-orders", fiber.Map{
		"reference": "PV-100",
		"lines":     []fiber.Map{{"product_id": productID, "ordered_quantity": 4}},
	}, fiber.StatusCreated, &order)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, whID, order.FulfillmentWarehouseID, "sin bodega se usa la predeterminada")
	lineID := order.Lines[0].ID

	var alloc dto.AllocationResponse
	api.call(http.MethodPost, "/api/order-lines/"+lineID+"/allocate", fiber.Map{"quantity": 4}, fiber.StatusOK, &alloc)
	assert.True(t, decimal.NewFromInt(4).Equal(alloc.Committed))
	assert.False(t, alloc.Partial)

	info := api.stock(productID, whID)
	assert.True(t, decimal.NewFromInt(10).Equal(info.Physical), "físico")
	assert.True(t, decimal.NewFromInt(4).Equal(info.Committed), "comprometido")
	assert.True(t, decimal.NewFromInt(6).Equal(info.Available), "disponible")

	var pl dto.PickListResponse
	api.call(http.MethodPost, "/api/sales-orders/"+order.ID+"/pick-lists", nil, fiber.StatusCreated, &pl)
	require.NotEmpty(t, pl.Lines)

	resp := api.do(http.MethodGet, "/api/pick-lists/"+pl.ID+"/pdf", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	var sh dto.ShipmentResponse
	api.call(http.MethodPost, "/api/pick-lists/"+pl.ID+"/confirm", nil, fiber.StatusCreated, &sh)
	require.Len(t, sh.Lines, 1)
	assert.True(t, decimal.NewFromInt(4).Equal(sh.Lines[0].Quantity))

	info = api.stock(productID, whID)
	assert.True(t, decimal.NewFromInt(6).Equal(info.Physical))
	assert.True(t, info.Committed.IsZero())

	var replay dto.ShipmentResponse
	api.call(http.MethodPost, "/api/pick-lists/"+pl.ID+"/confirm", nil, fiber.StatusCreated, &replay)
	assert.Equal(t, sh.ID, replay.ID, "confirmar de nuevo devuelve el mismo despacho")
	assert.True(t, decimal.NewFromInt(6).Equal(api.stock(productID, whID).Physical), "sin doble descuento")

	resp = api.do(http.MethodGet, "/api/shipments/"+sh.ID+"/despatch-advice", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "DespatchAdvice")
	assert.Contains(t, string(body), "PV-100")

	var check dto.LedgerCheckResponse
	api.call(http.MethodGet, "/api/inventory/ledger-check?product_id="+productID+"&warehouse_id="+whID, nil, fiber.StatusOK, &check)
	assert.True(t, check.Consistent)
	assert.True(t, decimal.NewFromInt(6).Equal(check.LedgerBalance))

	var movements dto.MovementListResponse
	api.call(http.MethodGet, "/api/inventory/movements?product_id="+productID, nil, fiber.StatusOK, &movements)
	assert.GreaterOrEqual(t, len(movements.Items), 3, "entrada, reserva y despacho")
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados, ajustes y compras
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_TrasladoEntreBodegas(t *testing.T) {
	api := newAPI(t)
	whA, productID := api.setup()
	var whB dto.WarehouseResponse
	api.call(http.MethodPost, "/api/warehouses", fiber.Map{"name": "Sucursal"}, fiber.StatusCreated, &whB)

	var tr dto.TransferResponse
	api.call(http.MethodPost, "/api/transfers", fiber.Map{
		"from_warehouse_id": whA, "to_warehouse_id": whB.ID,
		"lines": []fiber.Map{{"product_id": productID, "quantity": 3}},
	}, fiber.StatusCreated, &tr)
	assert.Equal(t, "DRAFT", tr.Status)

	api.call(http.MethodPost, "/api/transfers/"+tr.ID+"/complete", nil, fiber.StatusOK, &tr)
	assert.Equal(t, "COMPLETED", tr.Status)

	assert.True(t, decimal.NewFromInt(7).Equal(api.stock(productID, whA).Physical))
	assert.True(t, decimal.NewFromInt(3).Equal(api.stock(productID, whB.ID).Physical))

	api.call(http.MethodPost, "/api/transfers/"+tr.ID+"/complete", nil, fiber.StatusOK, &tr)
	assert.True(t, decimal.NewFromInt(7).Equal(api.stock(productID, whA).Physical), "completar de nuevo no mueve stock")
}

func TestAPI_AjusteConConteoDesactualizado(t *testing.T) {
	api := newAPI(t)
	whID, productID := api.setup()

	var adj dto.AdjustmentResponse
	api.call(http.MethodPost, "/api/adjustments", fiber.Map{
		"warehouse_id": whID, "reason": "STOCKTAKE",
		"lines": []fiber.Map{{"product_id": productID, "expected_quantity": 10, "counted_quantity": 8}},
	}, fiber.StatusCreated, &adj)

	// Entra mercancía entre el conteo y la aplicación.
	api.call(http.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id": productID, "warehouse_id": whID, "type": "RECEIPT_IN", "quantity_change": 1,
	}, fiber.StatusCreated, nil)

	code := api.errorCode(http.MethodPost, "/api/adjustments/"+adj.ID+"/apply", nil, fiber.StatusConflict)
	assert.Equal(t, "STALE_COUNT", code)
	info := api.stock(productID, whID)
	assert.True(t, decimal.NewFromInt(11).Equal(info.Physical), "el ajuste no se aplicó")
	assert.True(t, decimal.NewFromInt(11).Equal(info.LedgerBalance), "referencia para un nuevo conteo")
}

func TestAPI_RecepcionDeCompraIdempotente(t *testing.T) {
	api := newAPI(t)
	whID, productID := api.setup()

	var po dto.PurchaseOrderResponse
	api.call(http.MethodPost, "/api/purchase-orders", fiber.Map{
		"reference": "OC-7", "warehouse_id": whID,
		"lines": []fiber.Map{{"product_id": productID, "ordered_quantity": 5, "unit_cost": "1000"}},
	}, fiber.StatusCreated, &po)
	require.Len(t, po.Lines, 1)

	receipt := fiber.Map{"lines": []fiber.Map{{"po_line_id": po.Lines[0].ID, "quantity": 5, "idempotency_key": "rx-1"}}}
	var first, second dto.ReceiptResponse
	api.call(http.MethodPost, "/api/purchase-orders/"+po.ID+"/receipts", receipt, fiber.StatusOK, &first)
	api.call(http.MethodPost, "/api/purchase-orders/"+po.ID+"/receipts", receipt, fiber.StatusOK, &second)

	assert.True(t, decimal.NewFromInt(15).Equal(api.stock(productID, whID).Physical), "el reintento no duplica la entrada")

	api.call(http.MethodGet, "/api/purchase-orders/"+po.ID, nil, fiber.StatusOK, &po)
	assert.True(t, decimal.NewFromInt(5).Equal(po.Lines[0].ReceivedQuantity))
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CodigosDeError(t *testing.T) {
	api := newAPI(t)
	whID, productID := api.setup()

	code := api.errorCode(http.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id": productID, "warehouse_id": whID, "type": "SHIPMENT_OUT", "quantity_change": -1,
	}, fiber.StatusBadRequest)
	assert.Equal(t, "INVALID_MOVEMENT", code, "los despachos solo salen de una lista de alistamiento")

	var e dto.ErrorResponse
	api.call(http.MethodPost, "/api/inventory/movements", fiber.Map{
		"product_id": productID, "warehouse_id": whID, "type": "ADJUSTMENT_DECREASE", "quantity_change": -50,
	}, fiber.StatusConflict, &e)
	assert.Equal(t, "INSUFFICIENT_STOCK", e.Code)
	assert.NotNil(t, e.Details, "el detalle incluye las cantidades")

	assert.Equal(t, "NOT_FOUND", api.errorCode(http.MethodGet, "/api/transfers/no-existe", nil, fiber.StatusNotFound))

	resp := api.do(http.MethodPost, "/api/inventory/movements", nil)
	resp.Body.Close()
	assert.NotEqual(t, fiber.StatusCreated, resp.StatusCode, "sin cuerpo no se registra nada")
}

func TestAPI_SinTokenResponde401(t *testing.T) {
	api := newAPI(t)
	api.auth = ""
	resp := api.do(http.MethodGet, "/api/warehouses", nil)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_OtraEmpresaNoVeElStock(t *testing.T) {
	api := newAPI(t)
	whID, productID := api.setup()
	api.auth = bearer(t, "otra-empresa")

	resp := api.do(http.MethodGet, "/api/inventory/stock/"+productID+"?warehouse_id="+whID, nil)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.True(t, strings.Contains(string(raw), "NOT_FOUND"))
}
