// Package despatch construye el aviso de despacho UBL 2.1 (DespatchAdvice) de un envío, para
// enviarlo al cliente o a la transportadora.
package despatch

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

// Namespaces UBL 2.1.
const (
	NsDespatchAdvice = "urn:oasis:names:specification:ubl:schema:xsd:DespatchAdvice-2"
	NsCac            = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc            = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

var _ inventory.DespatchAdviceBuilder = (*Builder)(nil)

// Builder genera el XML con etree.
type Builder struct {
	indent int
}

// NewBuilder crea el servicio.
func NewBuilder() *Builder { return &Builder{indent: 2} }

// BuildDespatchAdvice serializa el aviso de despacho.
func (b *Builder) BuildDespatchAdvice(d *inventory.DespatchAdviceDoc) ([]byte, error) {
	if d == nil || d.ShipmentID == "" {
		return nil, fmt.Errorf("despatch: documento sin despacho")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("DespatchAdvice")
	root.CreateAttr("xmlns", NsDespatchAdvice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cbc(root, "UBLVersionID", "2.1")
	cbc(root, "ID", d.ShipmentID)
	cbc(root, "IssueDate", d.IssuedAt.Format("2006-01-02"))
	cbc(root, "IssueTime", d.IssuedAt.Format("15:04:05-07:00"))
	cbc(root, "LineCountNumeric", strconv.Itoa(len(d.Lines)))

	orderRef := cac(root, "OrderReference")
	cbc(orderRef, "ID", d.SalesOrderID)
	if d.OrderReference != "" {
		cbc(orderRef, "SalesOrderID", d.OrderReference)
	}

	supplier := cac(cac(root, "DespatchSupplierParty"), "Party")
	cbc(cac(supplier, "PartyIdentification"), "ID", d.CompanyID)

	shipment := cac(root, "Shipment")
	cbc(shipment, "ID", d.ShipmentID)
	if d.Warehouse != nil {
		despatch := cac(cac(shipment, "Delivery"), "Despatch")
		cbc(despatch, "ID", d.Warehouse.ID)
		addr := cac(despatch, "DespatchAddress")
		cbc(addr, "Name", d.Warehouse.Name)
		if d.Warehouse.Address != "" {
			cbc(cac(addr, "AddressLine"), "Line", d.Warehouse.Address)
		}
	}

	for i, l := range d.Lines {
		writeLine(root, i+1, l)
	}

	doc.Indent(b.indent)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("despatch: serializar XML: %w", err)
	}
	return out.Bytes(), nil
}

// writeLine cac:DespatchLine: una por producto, con una ItemInstance por serie o por lote.
func writeLine(root *etree.Element, n int, l inventory.DespatchAdviceLine) {
	line := cac(root, "DespatchLine")
	cbc(line, "ID", strconv.Itoa(n))
	qty := cbc(line, "DeliveredQuantity", l.Quantity.String())
	qty.CreateAttr("unitCode", unitCode(l.UnitMeasure))

	item := cac(line, "Item")
	cbc(item, "Name", l.ProductName)
	cbc(cac(item, "SellersItemIdentification"), "ID", l.SKU)
	for _, serial := range l.SerialNumbers {
		cbc(cac(item, "ItemInstance"), "SerialID", serial)
	}
	for _, batch := range l.Batches {
		lot := cac(cac(item, "ItemInstance"), "LotIdentification")
		cbc(lot, "LotNumberID", batch.BatchNumber)
		if batch.ExpiryDate != nil {
			cbc(lot, "ExpiryDate", batch.ExpiryDate.Format("2006-01-02"))
		}
	}
}

func cbc(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + tag)
	el.SetText(value)
	return el
}

func cac(parent *etree.Element, tag string) *etree.Element {
	return parent.CreateElement("cac:" + tag)
}

// unitCode código UN/ECE Rec. 20 de la unidad de medida; por defecto unidades (NIU).
func unitCode(unit string) string {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kg", "kilo", "kilogramo":
		return "KGM"
	case "g", "gr", "gramo":
		return "GRM"
	case "l", "lt", "litro":
		return "LTR"
	case "m", "metro":
		return "MTR"
	case "caja":
		return "BX"
	default:
		return "NIU"
	}
}
