package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// ReceivingUseCase recepción de mercancía de órdenes de compra.
type ReceivingUseCase struct {
	ledger *Ledger
	read   Repos
	log    *logger.Logger
}

// NewReceivingUseCase construye el caso de uso.
func NewReceivingUseCase(ledger *Ledger, read Repos, log *logger.Logger) *ReceivingUseCase {
	return &ReceivingUseCase{ledger: ledger, read: read, log: log}
}

// PurchaseOrderDraft orden de compra registrada por el módulo de compras.
type PurchaseOrderDraft struct {
	CompanyID   string
	Reference   string
	WarehouseID string
	Lines       []PurchaseOrderLineDraft
}

// PurchaseOrderLineDraft línea de compra.
type PurchaseOrderLineDraft struct {
	ProductID       string
	OrderedQuantity decimal.Decimal
	UnitCost        decimal.Decimal
}

// RegisterPurchaseOrder registra una orden de compra pendiente de recibir.
func (uc *ReceivingUseCase) RegisterPurchaseOrder(ctx context.Context, d PurchaseOrderDraft) (*entity.PurchaseOrder, error) {
	if len(d.Lines) == 0 {
		return nil, fmt.Errorf("%w: la orden de compra no tiene líneas", domain.ErrInvalidInput)
	}
	wh, err := uc.read.Warehouses.GetByID(ctx, d.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil || wh.CompanyID != d.CompanyID {
		return nil, fmt.Errorf("bodega %s: %w", d.WarehouseID, domain.ErrNotFound)
	}
	now := uc.ledger.now()
	po := &entity.PurchaseOrder{
		ID:          uuid.New().String(),
		CompanyID:   d.CompanyID,
		Reference:   d.Reference,
		WarehouseID: d.WarehouseID,
		CreatedAt:   now,
	}
	for _, l := range d.Lines {
		if !l.OrderedQuantity.IsPositive() || !inventory.IsWhole(l.OrderedQuantity) || l.UnitCost.IsNegative() {
			return nil, fmt.Errorf("%w: línea de compra inválida", domain.ErrInvalidInput)
		}
		p, err := uc.read.Products.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.CompanyID != d.CompanyID {
			return nil, fmt.Errorf("producto %s: %w", l.ProductID, domain.ErrNotFound)
		}
		po.Lines = append(po.Lines, &entity.PurchaseOrderLine{
			ID:               uuid.New().String(),
			PurchaseOrderID:  po.ID,
			ProductID:        l.ProductID,
			OrderedQuantity:  l.OrderedQuantity,
			ReceivedQuantity: decimal.Zero,
			UnitCost:         l.UnitCost,
			UpdatedAt:        now,
		})
	}
	if err := uc.ledger.run(ctx, func(s *txScope) error {
		return s.PurchaseOrders.Create(ctx, po)
	}); err != nil {
		return nil, err
	}
	return po, nil
}

// ReceiptLine mercancía recibida contra una línea de compra.
type ReceiptLine struct {
	POLineID       string
	Quantity       decimal.Decimal
	UnitCost       *decimal.Decimal
	SerialNumbers  []string
	BatchNumber    string
	ExpiryDate     *time.Time
	Damaged        bool
	IdempotencyKey string
	// DocumentRef documento del proveedor (remisión, guía) con el que llegó la mercancía.
	DocumentRef string
}

// ReceiptLineResult resultado por línea.
type ReceiptLineResult struct {
	POLineID       string
	Received       decimal.Decimal
	ReceivedTotal  decimal.Decimal
	Skipped        bool
	OverReceived   bool
	MovementID     string
	NewAverageCost *decimal.Decimal
}

// ReceiptResult resultado de una recepción.
type ReceiptResult struct {
	PurchaseOrderID string
	Lines           []ReceiptLineResult
}

// GetPurchaseOrder obtiene una orden de compra.
func (uc *ReceivingUseCase) GetPurchaseOrder(ctx context.Context, companyID, id string) (*entity.PurchaseOrder, error) {
	po, err := uc.read.PurchaseOrders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil || po.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return po, nil
}

// ReceivePurchaseOrderItems registra RECEIPT_IN por línea en la bodega de la orden. Una línea ya
// recibida completa, o una llave de idempotencia repetida, se omite sin error. Recibir de más
// se permite y queda marcado. Una recepción que deja la línea parcial necesita IdempotencyKey
// o DocumentRef: sin ellas un reintento no se distingue de una segunda entrega.
func (uc *ReceivingUseCase) ReceivePurchaseOrderItems(ctx context.Context, companyID, userID, poID string, lines []ReceiptLine) (*ReceiptResult, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: la recepción no tiene líneas", domain.ErrInvalidInput)
	}
	var res *ReceiptResult
	err := uc.ledger.run(ctx, func(s *txScope) error {
		po, err := s.PurchaseOrders.GetForUpdate(ctx, poID)
		if err != nil {
			return err
		}
		if po == nil || po.CompanyID != companyID {
			return domain.ErrNotFound
		}
		poLines := make(map[string]*entity.PurchaseOrderLine, len(po.Lines))
		for _, l := range po.Lines {
			poLines[l.ID] = l
		}
		keys := make([]repository.StockKey, 0, len(lines))
		for _, rl := range lines {
			pl, ok := poLines[rl.POLineID]
			if !ok {
				return fmt.Errorf("línea de compra %s: %w", rl.POLineID, domain.ErrNotFound)
			}
			keys = append(keys, repository.StockKey{ProductID: pl.ProductID, WarehouseID: po.WarehouseID})
		}
		if err := lockKeys(ctx, s, keys); err != nil {
			return err
		}

		res = &ReceiptResult{PurchaseOrderID: po.ID}
		for i, rl := range lines {
			r, err := uc.receiveLine(ctx, s, companyID, userID, po, poLines[rl.POLineID], i, rl)
			if err != nil {
				return err
			}
			res.Lines = append(res.Lines, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, l := range res.Lines {
		if l.OverReceived {
			uc.log.Warn().Str("purchase_order_id", poID).Str("po_line_id", l.POLineID).
				Str("received_total", l.ReceivedTotal.String()).Msg("se recibió más de lo pedido")
		}
	}
	return res, nil
}

func (uc *ReceivingUseCase) receiveLine(ctx context.Context, s *txScope, companyID, userID string, po *entity.PurchaseOrder, pl *entity.PurchaseOrderLine, pos int, rl ReceiptLine) (ReceiptLineResult, error) {
	out := ReceiptLineResult{POLineID: pl.ID, Received: decimal.Zero, ReceivedTotal: pl.ReceivedQuantity}
	if !rl.Quantity.IsPositive() || !inventory.IsWhole(rl.Quantity) {
		return out, fmt.Errorf("%w: cantidad recibida %s inválida", domain.ErrInvalidMovement, rl.Quantity)
	}
	if rl.UnitCost != nil && rl.UnitCost.IsNegative() {
		return out, fmt.Errorf("%w: costo unitario negativo", domain.ErrInvalidInput)
	}
	if pl.FullyReceived() {
		out.Skipped = true
		return out, nil
	}
	key, err := receiptKey(po, pl, pos, rl)
	if err != nil {
		return out, err
	}

	product, err := s.Products.GetByID(ctx, pl.ProductID)
	if err != nil {
		return out, err
	}
	if product == nil {
		return out, fmt.Errorf("producto %s: %w", pl.ProductID, domain.ErrNotFound)
	}

	var units []inventory.Unit
	switch product.TrackingMode {
	case entity.TrackingSerial:
		if int64(len(rl.SerialNumbers)) != rl.Quantity.IntPart() {
			return out, fmt.Errorf("%w: se reciben %s unidades y %d series", domain.ErrInvalidMovement, rl.Quantity, len(rl.SerialNumbers))
		}
		units = inventory.SerialUnits(rl.SerialNumbers)
		for i := range units {
			units[i].ExpiryDate = rl.ExpiryDate
		}
	case entity.TrackingBatch:
		units = []inventory.Unit{{Quantity: rl.Quantity, BatchNumber: rl.BatchNumber, ExpiryDate: rl.ExpiryDate}}
	}
	status := entity.StockAvailable
	if rl.Damaged {
		status = entity.StockDamaged
	}

	r, err := uc.ledger.append(ctx, s, MovementInput{
		CompanyID:      companyID,
		UserID:         userID,
		ProductID:      pl.ProductID,
		WarehouseID:    po.WarehouseID,
		Type:           entity.MovementReceiptIn,
		QuantityChange: rl.Quantity,
		Notes:          "recepción OC " + po.Reference,
		ReferenceType:  entity.RefPurchaseOrder,
		ReferenceID:    po.ID,
		IdempotencyKey: key,
		Units:          units,
		Status:         status,
	})
	if err != nil {
		return out, err
	}
	out.MovementID = r.Movement.ID
	if r.Replayed {
		out.Skipped = true
		return out, nil
	}

	unitCost := rl.UnitCost
	if unitCost == nil && pl.UnitCost.IsPositive() {
		unitCost = &pl.UnitCost
	}
	if unitCost != nil {
		all, err := s.Items.ListByProduct(ctx, pl.ProductID)
		if err != nil {
			return out, err
		}
		before := inventory.LedgerBalance(all).Sub(rl.Quantity)
		cost := inventory.WeightedAverageCost(before, product.Cost, rl.Quantity, *unitCost)
		if err := s.Products.UpdateCost(ctx, product.ID, cost); err != nil {
			return out, err
		}
		out.NewAverageCost = &cost
	}

	pl.ReceivedQuantity = pl.ReceivedQuantity.Add(rl.Quantity)
	pl.UpdatedAt = uc.ledger.now()
	if err := s.PurchaseOrders.UpdateLine(ctx, pl); err != nil {
		return out, err
	}
	out.Received = rl.Quantity
	out.ReceivedTotal = pl.ReceivedQuantity
	out.OverReceived = pl.ReceivedQuantity.GreaterThan(pl.OrderedQuantity)
	return out, nil
}

// receiptKey llave de idempotencia del RECEIPT_IN. Sale de datos del cliente que no cambian
// entre reintentos. Sin ellos solo se acepta la entrega que cierra la línea: un reintento la
// encuentra completa y se omite.
func receiptKey(po *entity.PurchaseOrder, pl *entity.PurchaseOrderLine, pos int, rl ReceiptLine) (string, error) {
	prefix := fmt.Sprintf("po:%s:line:%s:", po.ID, pl.ID)
	switch {
	case rl.IdempotencyKey != "":
		return prefix + rl.IdempotencyKey, nil
	case rl.DocumentRef != "":
		return fmt.Sprintf("%sdoc:%s:%d", prefix, rl.DocumentRef, pos), nil
	case pl.ReceivedQuantity.Add(rl.Quantity).LessThan(pl.OrderedQuantity):
		return "", fmt.Errorf("%w: la recepción parcial de la línea %s requiere idempotency_key o document_ref", domain.ErrInvalidInput, pl.ID)
	default:
		return prefix + "cierre", nil
	}
}
