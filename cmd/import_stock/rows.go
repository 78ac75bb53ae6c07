package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	stock "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

// stockRow una fila del archivo de saldos iniciales.
type stockRow struct {
	Line         int
	SKU          string
	Quantity     decimal.Decimal
	BatchNumber  string
	ExpiryDate   *time.Time
	SerialNumber []string
}

// Columnas esperadas en el encabezado. lote, vencimiento y series son opcionales.
var requiredColumns = []string{"sku", "cantidad"}

// readRows lee el CSV exportado desde Excel (ISO-8859-1 por defecto, separador ';').
// Las series van en una sola celda separadas por '|'.
func readRows(r io.Reader, latin1 bool, delim rune) ([]stockRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("falta la columna %q", c)
		}
	}
	cell := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []stockRow
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		sku := cell(rec, "sku")
		if sku == "" {
			continue
		}
		qty, err := decimal.NewFromString(strings.ReplaceAll(cell(rec, "cantidad"), ",", "."))
		if err != nil || !qty.IsPositive() || !qty.Equal(qty.Truncate(0)) {
			return nil, fmt.Errorf("línea %d: cantidad %q inválida", line, cell(rec, "cantidad"))
		}
		row := stockRow{Line: line, SKU: sku, Quantity: qty, BatchNumber: cell(rec, "lote")}
		if v := cell(rec, "vencimiento"); v != "" {
			t, err := parseDate(v)
			if err != nil {
				return nil, fmt.Errorf("línea %d: vencimiento %q inválido", line, v)
			}
			row.ExpiryDate = &t
		}
		if v := cell(rec, "series"); v != "" {
			for _, s := range strings.Split(v, "|") {
				if s = strings.TrimSpace(s); s != "" {
					row.SerialNumber = append(row.SerialNumber, s)
				}
			}
			if int64(len(row.SerialNumber)) != qty.IntPart() {
				return nil, fmt.Errorf("línea %d: %s unidades y %d series", line, qty, len(row.SerialNumber))
			}
			if row.BatchNumber != "" {
				return nil, fmt.Errorf("línea %d: una fila con series no lleva lote", line)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// rowUnits unidades de la entrada: una por serie, el lote completo o nada (producto sin rastreo).
func rowUnits(row stockRow) []stock.Unit {
	if len(row.SerialNumber) > 0 {
		units := stock.SerialUnits(row.SerialNumber)
		for i := range units {
			units[i].ExpiryDate = row.ExpiryDate
		}
		return units
	}
	if row.BatchNumber != "" {
		return []stock.Unit{{Quantity: row.Quantity, BatchNumber: row.BatchNumber, ExpiryDate: row.ExpiryDate}}
	}
	return nil
}

// parseDate acepta 2006-01-02 y 02/01/2006.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("formato de fecha desconocido")
}
