package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// PickListSheet datos de la hoja de alistamiento que se imprime para bodega.
type PickListSheet struct {
	PickListID     string
	SalesOrderID   string
	OrderReference string
	Warehouse      *entity.Warehouse
	Status         string
	CreatedAt      time.Time
	Lines          []PickListSheetLine
}

// PickListSheetLine una fila a alistar con los datos del producto.
type PickListSheetLine struct {
	SKU          string
	ProductName  string
	UnitMeasure  string
	Quantity     decimal.Decimal
	SerialNumber string
	BatchNumber  string
	ExpiryDate   *time.Time
}

// DespatchAdviceDoc datos del aviso de despacho de un envío.
type DespatchAdviceDoc struct {
	ShipmentID     string
	SalesOrderID   string
	OrderReference string
	CompanyID      string
	Warehouse      *entity.Warehouse
	IssuedAt       time.Time
	Lines          []DespatchAdviceLine
}

// DespatchAdviceLine cantidad despachada de un producto con sus series y lotes.
type DespatchAdviceLine struct {
	SKU           string
	ProductName   string
	UnitMeasure   string
	Quantity      decimal.Decimal
	SerialNumbers []string
	Batches       []DespatchBatch
}

// DespatchBatch cantidad despachada de un lote.
type DespatchBatch struct {
	BatchNumber string
	ExpiryDate  *time.Time
	Quantity    decimal.Decimal
}

// PickListPDFGenerator genera el PDF de la hoja de alistamiento.
type PickListPDFGenerator interface {
	GeneratePickListPDF(ctx context.Context, sheet *PickListSheet) ([]byte, error)
}

// DespatchAdviceBuilder genera el XML del aviso de despacho.
type DespatchAdviceBuilder interface {
	BuildDespatchAdvice(doc *DespatchAdviceDoc) ([]byte, error)
}

// PrintoutUseCase documentos impresos/exportados del alistamiento y despacho.
type PrintoutUseCase struct {
	orders *ReservationUseCase
	read   Repos
	pdf    PickListPDFGenerator
	xml    DespatchAdviceBuilder
}

// NewPrintoutUseCase construye el caso de uso.
func NewPrintoutUseCase(orders *ReservationUseCase, read Repos, pdf PickListPDFGenerator, xml DespatchAdviceBuilder) *PrintoutUseCase {
	return &PrintoutUseCase{orders: orders, read: read, pdf: pdf, xml: xml}
}

// PickListPDF devuelve el PDF de la lista de alistamiento.
func (uc *PrintoutUseCase) PickListPDF(ctx context.Context, companyID, pickListID string) ([]byte, error) {
	sheet, err := uc.PickListSheet(ctx, companyID, pickListID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GeneratePickListPDF(ctx, sheet)
}

// PickListSheet arma los datos de la hoja sin renderizar.
func (uc *PrintoutUseCase) PickListSheet(ctx context.Context, companyID, pickListID string) (*PickListSheet, error) {
	pl, err := uc.orders.GetPickList(ctx, companyID, pickListID)
	if err != nil {
		return nil, err
	}
	order, err := uc.orders.GetSalesOrder(ctx, companyID, pl.SalesOrderID)
	if err != nil {
		return nil, err
	}
	wh, err := uc.read.Warehouses.GetByID(ctx, order.FulfillmentWarehouseID)
	if err != nil {
		return nil, err
	}
	sheet := &PickListSheet{
		PickListID:     pl.ID,
		SalesOrderID:   order.ID,
		OrderReference: order.Reference,
		Warehouse:      wh,
		Status:         pl.Status,
		CreatedAt:      pl.CreatedAt,
	}
	products := map[string]*entity.Product{}
	for _, l := range pl.Lines {
		p, err := uc.product(ctx, products, l.ProductID)
		if err != nil {
			return nil, err
		}
		sheet.Lines = append(sheet.Lines, PickListSheetLine{
			SKU:          p.SKU,
			ProductName:  p.Name,
			UnitMeasure:  p.UnitMeasure,
			Quantity:     l.QuantityToPick,
			SerialNumber: l.SerialNumber,
			BatchNumber:  l.BatchNumber,
			ExpiryDate:   l.ExpiryDate,
		})
	}
	return sheet, nil
}

// DespatchAdviceXML devuelve el aviso de despacho UBL del envío.
func (uc *PrintoutUseCase) DespatchAdviceXML(ctx context.Context, companyID, shipmentID string) ([]byte, error) {
	doc, err := uc.DespatchAdvice(ctx, companyID, shipmentID)
	if err != nil {
		return nil, err
	}
	return uc.xml.BuildDespatchAdvice(doc)
}

// DespatchAdvice arma los datos del aviso. Las series y lotes salen de la lista de alistamiento
// confirmada: las filas de stock consumidas ya no existen.
func (uc *PrintoutUseCase) DespatchAdvice(ctx context.Context, companyID, shipmentID string) (*DespatchAdviceDoc, error) {
	sh, err := uc.orders.GetShipment(ctx, companyID, shipmentID)
	if err != nil {
		return nil, err
	}
	order, err := uc.orders.GetSalesOrder(ctx, companyID, sh.SalesOrderID)
	if err != nil {
		return nil, err
	}
	pl, err := uc.read.PickLists.GetByID(ctx, sh.PickListID)
	if err != nil {
		return nil, err
	}
	if pl == nil {
		return nil, fmt.Errorf("despacho %s sin lista de alistamiento %s", sh.ID, sh.PickListID)
	}
	wh, err := uc.read.Warehouses.GetByID(ctx, sh.WarehouseID)
	if err != nil {
		return nil, err
	}

	doc := &DespatchAdviceDoc{
		ShipmentID:     sh.ID,
		SalesOrderID:   order.ID,
		OrderReference: order.Reference,
		CompanyID:      companyID,
		Warehouse:      wh,
		IssuedAt:       sh.CreatedAt,
	}
	products := map[string]*entity.Product{}
	for _, sl := range sh.Lines {
		p, err := uc.product(ctx, products, sl.ProductID)
		if err != nil {
			return nil, err
		}
		line := DespatchAdviceLine{SKU: p.SKU, ProductName: p.Name, UnitMeasure: p.UnitMeasure, Quantity: sl.Quantity}
		batchIdx := map[string]int{}
		for _, pick := range pl.Lines {
			if pick.ProductID != sl.ProductID {
				continue
			}
			if pick.SerialNumber != "" {
				line.SerialNumbers = append(line.SerialNumbers, pick.SerialNumber)
			}
			if pick.BatchNumber != "" {
				if i, ok := batchIdx[pick.BatchNumber]; ok {
					line.Batches[i].Quantity = line.Batches[i].Quantity.Add(pick.QuantityToPick)
					continue
				}
				batchIdx[pick.BatchNumber] = len(line.Batches)
				line.Batches = append(line.Batches, DespatchBatch{
					BatchNumber: pick.BatchNumber, ExpiryDate: pick.ExpiryDate, Quantity: pick.QuantityToPick,
				})
			}
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc, nil
}

func (uc *PrintoutUseCase) product(ctx context.Context, cache map[string]*entity.Product, id string) (*entity.Product, error) {
	if p, ok := cache[id]; ok {
		return p, nil
	}
	p, err := uc.read.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %s no encontrado", id)
	}
	cache[id] = p
	return p, nil
}
