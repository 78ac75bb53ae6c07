package despatch_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/despatch"
)

func TestBuildDespatchAdvice_SeriesYLotes(t *testing.T) {
	expiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	doc := &inventory.DespatchAdviceDoc{
		ShipmentID:     "sh-1",
		SalesOrderID:   "so-1",
		OrderReference: "PV-0042",
		CompanyID:      "c-1",
		Warehouse:      &entity.Warehouse{ID: "w-1", Name: "Principal", Address: "Calle 10"},
		IssuedAt:       time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC),
		Lines: []inventory.DespatchAdviceLine{
			{SKU: "TV-55", ProductName: "Televisor", Quantity: decimal.NewFromInt(2), SerialNumbers: []string{"SN-1", "SN-2"}},
			{SKU: "LECHE", ProductName: "Leche", UnitMeasure: "litro", Quantity: decimal.NewFromInt(10),
				Batches: []inventory.DespatchBatch{{BatchNumber: "L-1", ExpiryDate: &expiry, Quantity: decimal.NewFromInt(10)}}},
		},
	}

	out, err := despatch.NewBuilder().BuildDespatchAdvice(doc)
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))
	root := parsed.Root()
	require.NotNil(t, root)
	assert.Equal(t, "DespatchAdvice", root.Tag)
	assert.Equal(t, "sh-1", root.FindElement("./cbc:ID").Text())
	assert.Equal(t, "2026-03-01", root.FindElement("./cbc:IssueDate").Text())
	assert.Equal(t, "PV-0042", root.FindElement("./cac:OrderReference/cbc:SalesOrderID").Text())

	lines := root.FindElements("./cac:DespatchLine")
	require.Len(t, lines, 2)
	assert.Equal(t, "NIU", lines[0].FindElement("./cbc:DeliveredQuantity").SelectAttrValue("unitCode", ""))
	assert.Len(t, lines[0].FindElements(".//cbc:SerialID"), 2)

	qty := lines[1].FindElement("./cbc:DeliveredQuantity")
	assert.Equal(t, "10", qty.Text())
	assert.Equal(t, "LTR", qty.SelectAttrValue("unitCode", ""))
	assert.Equal(t, "L-1", lines[1].FindElement(".//cac:LotIdentification/cbc:LotNumberID").Text())
	assert.Equal(t, "2026-12-31", lines[1].FindElement(".//cac:LotIdentification/cbc:ExpiryDate").Text())
}

func TestBuildDespatchAdvice_SinDespacho(t *testing.T) {
	_, err := despatch.NewBuilder().BuildDespatchAdvice(&inventory.DespatchAdviceDoc{})
	assert.Error(t, err)
}
