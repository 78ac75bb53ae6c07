package http

import (
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		WarehouseID:    m.WarehouseID,
		Type:           string(m.Type),
		QuantityChange: m.QuantityChange,
		Notes:          m.Notes,
		ReferenceType:  m.ReferenceType,
		ReferenceID:    m.ReferenceID,
		StockItemID:    m.StockItemID,
		IdempotencyKey: m.IdempotencyKey,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}

func toTransferResponse(t *entity.InventoryTransfer) dto.TransferResponse {
	lines := make([]dto.TransferLineDTO, 0, len(t.Lines))
	for _, l := range t.Lines {
		lines = append(lines, dto.TransferLineDTO{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return dto.TransferResponse{
		ID:              t.ID,
		Date:            t.Date,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		Status:          t.Status,
		Notes:           t.Notes,
		Lines:           lines,
		CompletedAt:     t.CompletedAt,
		CreatedAt:       t.CreatedAt,
	}
}

func toAdjustmentResponse(a *entity.InventoryAdjustment) dto.AdjustmentResponse {
	lines := make([]dto.AdjustmentLineDTO, 0, len(a.Lines))
	for _, l := range a.Lines {
		lines = append(lines, dto.AdjustmentLineDTO{
			ProductID:        l.ProductID,
			ExpectedQuantity: l.ExpectedQuantity,
			CountedQuantity:  l.CountedQuantity,
			SerialNumbers:    l.SerialNumbers,
			BatchNumber:      l.BatchNumber,
			ExpiryDate:       l.ExpiryDate,
		})
	}
	return dto.AdjustmentResponse{
		ID:          a.ID,
		Date:        a.Date,
		WarehouseID: a.WarehouseID,
		Reason:      string(a.Reason),
		Status:      a.Status,
		Lines:       lines,
		AppliedAt:   a.AppliedAt,
		CreatedAt:   a.CreatedAt,
	}
}

func toOrderLineResponse(l *entity.SalesOrderLine) dto.SalesOrderLineResponse {
	ids := l.CommittedStockItemIDs
	if ids == nil {
		ids = []string{}
	}
	return dto.SalesOrderLineResponse{
		ID:                    l.ID,
		ProductID:             l.ProductID,
		OrderedQuantity:       l.OrderedQuantity,
		ShippedQuantity:       l.ShippedQuantity,
		CommittedStockItemIDs: ids,
		Status:                string(l.Status),
	}
}

func toSalesOrderResponse(o *entity.SalesOrder) dto.SalesOrderResponse {
	lines := make([]dto.SalesOrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, toOrderLineResponse(l))
	}
	return dto.SalesOrderResponse{
		ID:                     o.ID,
		Reference:              o.Reference,
		FulfillmentWarehouseID: o.FulfillmentWarehouseID,
		Lines:                  lines,
		CreatedAt:              o.CreatedAt,
	}
}

func toAllocationResponse(r *inventory.AllocationResult) dto.AllocationResponse {
	out := dto.AllocationResponse{
		OrderLineID: r.OrderLineID,
		Requested:   r.Requested,
		Committed:   r.Committed,
		Partial:     r.Partial,
		MovementID:  r.MovementID,
	}
	if r.Line != nil {
		line := toOrderLineResponse(r.Line)
		out.Line = &line
	}
	return out
}

func toPickListResponse(p *entity.PickList) dto.PickListResponse {
	lines := make([]dto.PickListLineResponse, 0, len(p.Lines))
	for _, l := range p.Lines {
		lines = append(lines, dto.PickListLineResponse{
			StockItemID:    l.StockItemID,
			OrderLineID:    l.OrderLineID,
			ProductID:      l.ProductID,
			QuantityToPick: l.QuantityToPick,
			SerialNumber:   l.SerialNumber,
			BatchNumber:    l.BatchNumber,
			ExpiryDate:     l.ExpiryDate,
		})
	}
	return dto.PickListResponse{
		ID:           p.ID,
		SalesOrderID: p.SalesOrderID,
		Status:       p.Status,
		ShipmentID:   p.ShipmentID,
		Lines:        lines,
		CreatedAt:    p.CreatedAt,
		ConfirmedAt:  p.ConfirmedAt,
	}
}

func toShipmentResponse(s *entity.Shipment) dto.ShipmentResponse {
	lines := make([]dto.ShipmentLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, dto.ShipmentLineResponse{ProductID: l.ProductID, Quantity: l.Quantity, StockItemIDs: l.StockItemIDs})
	}
	return dto.ShipmentResponse{
		ID:           s.ID,
		SalesOrderID: s.SalesOrderID,
		PickListID:   s.PickListID,
		WarehouseID:  s.WarehouseID,
		Lines:        lines,
		CreatedAt:    s.CreatedAt,
	}
}

func toPurchaseOrderResponse(po *entity.PurchaseOrder) dto.PurchaseOrderResponse {
	lines := make([]dto.PurchaseOrderLineResponse, 0, len(po.Lines))
	for _, l := range po.Lines {
		lines = append(lines, dto.PurchaseOrderLineResponse{
			ID:               l.ID,
			ProductID:        l.ProductID,
			OrderedQuantity:  l.OrderedQuantity,
			ReceivedQuantity: l.ReceivedQuantity,
			UnitCost:         l.UnitCost,
		})
	}
	return dto.PurchaseOrderResponse{
		ID:          po.ID,
		Reference:   po.Reference,
		WarehouseID: po.WarehouseID,
		Lines:       lines,
		CreatedAt:   po.CreatedAt,
	}
}

func toReceiptResponse(r *inventory.ReceiptResult) dto.ReceiptResponse {
	lines := make([]dto.ReceiptLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, dto.ReceiptLineResponse{
			POLineID:       l.POLineID,
			Received:       l.Received,
			ReceivedTotal:  l.ReceivedTotal,
			Skipped:        l.Skipped,
			OverReceived:   l.OverReceived,
			MovementID:     l.MovementID,
			NewAverageCost: l.NewAverageCost,
		})
	}
	return dto.ReceiptResponse{PurchaseOrderID: r.PurchaseOrderID, Lines: lines}
}
