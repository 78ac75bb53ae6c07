package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC  *usecase.WarehouseUseCase
	ProductUC    *usecase.ProductUseCase
	Ledger       *inventory.Ledger
	Availability *inventory.AvailabilityUseCase
	LowStock     *inventory.LowStockUseCase
	Transfers    *inventory.TransferUseCase
	Adjustments  *inventory.AdjustmentUseCase
	Reservations *inventory.ReservationUseCase
	Receiving    *inventory.ReceivingUseCase
	Printouts    *inventory.PrintoutUseCase
	JWTSecret    string
	JWTIssuer    string
	Log          *logger.Logger
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, log)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Post("/:id/default", warehouseHandler.SetDefault)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Libro y consultas de stock
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.Availability, deps.LowStock, log)
	invGroup.Post("/movements", inventoryHandler.AppendMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/stock/:product_id", inventoryHandler.GetStock)
	invGroup.Get("/ledger-check", inventoryHandler.LedgerCheck)
	invGroup.Get("/low-stock", inventoryHandler.ListLowStock)

	// Traslados
	transfers := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.Transfers, log)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Post("/:id/complete", transferHandler.Complete)

	// Ajustes
	adjustments := api.Group("/adjustments")
	adjustmentHandler := NewAdjustmentHandler(deps.Adjustments, log)
	adjustments.Post("/", adjustmentHandler.Create)
	adjustments.Get("/:id", adjustmentHandler.GetByID)
	adjustments.Post("/:id/apply", adjustmentHandler.Apply)

	// Pedidos, asignación y despacho
	fulfillment := NewFulfillmentHandler(deps.Reservations, deps.Printouts, log)
	orders := api.Group("/sales-orders")
	orders.Post("/", fulfillment.RegisterSalesOrder)
	orders.Get("/:id", fulfillment.GetSalesOrder)
	orders.Post("/:id/release", fulfillment.ReleaseOrder)
	orders.Post("/:id/pick-lists", fulfillment.CreatePickList)
	lines := api.Group("/order-lines")
	lines.Post("/:id/allocate", fulfillment.Allocate)
	lines.Post("/:id/release", fulfillment.ReleaseLine)
	pickLists := api.Group("/pick-lists")
	pickLists.Get("/:id", fulfillment.GetPickList)
	pickLists.Get("/:id/pdf", fulfillment.PickListPDF)
	pickLists.Post("/:id/confirm", fulfillment.ConfirmPickList)
	shipments := api.Group("/shipments")
	shipments.Get("/:id", fulfillment.GetShipment)
	shipments.Get("/:id/despatch-advice", fulfillment.DespatchAdvice)

	// Compras
	purchases := api.Group("/purchase-orders")
	purchaseHandler := NewPurchaseHandler(deps.Receiving, log)
	purchases.Post("/", purchaseHandler.RegisterPurchaseOrder)
	purchases.Get("/:id", purchaseHandler.GetPurchaseOrder)
	purchases.Post("/:id/receipts", purchaseHandler.Receive)
}
