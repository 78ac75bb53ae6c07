package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestReadRows_Latin1ConLotesYSeries(t *testing.T) {
	src := "SKU;Cantidad;Lote;Vencimiento;Series\n" +
		"CAF-500;12;L-01;31/03/2027;\n" +
		"TEL-01;2;;;SN1|SN2\n" +
		";;;;\n" +
		"AZÚCAR;3,0;;;\n"
	encoded, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	rows, err := readRows(bytes.NewReader([]byte(encoded)), true, ';')
	require.NoError(t, err)
	require.Len(t, rows, 3, "las filas vacías se ignoran")

	assert.Equal(t, "CAF-500", rows[0].SKU)
	assert.Equal(t, "L-01", rows[0].BatchNumber)
	require.NotNil(t, rows[0].ExpiryDate)
	assert.Equal(t, "2027-03-31", rows[0].ExpiryDate.Format("2006-01-02"))

	assert.Equal(t, []string{"SN1", "SN2"}, rows[1].SerialNumber)
	assert.Equal(t, "AZÚCAR", rows[2].SKU, "el SKU se decodifica de ISO-8859-1")
	assert.True(t, decimal.NewFromInt(3).Equal(rows[2].Quantity))
	assert.Equal(t, 5, rows[2].Line)
}

func TestReadRows_Errores(t *testing.T) {
	cases := map[string]string{
		"sin columna cantidad":  "sku;lote\nA;L1\n",
		"cantidad fraccionaria": "sku;cantidad\nA;1.5\n",
		"cantidad negativa":     "sku;cantidad\nA;-2\n",
		"series no cuadran":     "sku;cantidad;series\nA;3;S1|S2\n",
		"fecha inválida":        "sku;cantidad;vencimiento\nA;1;mañana\n",
		"series con lote":       "sku;cantidad;lote;series\nA;2;L9;X|Y\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := readRows(strings.NewReader(src), false, ';')
			assert.Error(t, err)
		})
	}
}

func TestRowUnits(t *testing.T) {
	rows, err := readRows(strings.NewReader("sku,cantidad,lote,vencimiento,series\nA,2,,2027-05-01,X|Y\nB,4,L1,,\nC,1,,,\n"), false, ',')
	require.NoError(t, err)

	units := rowUnits(rows[0])
	require.Len(t, units, 2)
	assert.Equal(t, "X", units[0].SerialNumber)
	assert.Empty(t, units[0].BatchNumber)
	require.NotNil(t, units[1].ExpiryDate)
	assert.Equal(t, "2027-05-01", units[1].ExpiryDate.Format("2006-01-02"))

	units = rowUnits(rows[1])
	require.Len(t, units, 1)
	assert.True(t, decimal.NewFromInt(4).Equal(units[0].Quantity))

	assert.Nil(t, rowUnits(rows[2]))
}
