package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/application/validation"
)

type inventoryRow struct {
	warehouseName string
	itemName      string
	description   string
	category      string
	status        string
	quantity      decimal.Decimal
}

// newReader envuelve r con decodificación ISO-8859-1 si latin1 es true.
func newReader(r io.Reader, latin1 bool) io.Reader {
	if latin1 {
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	return r
}

// readRecords lee un CSV con encabezado y devuelve cada fila como columna → valor.
func readRecords(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	var out []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila %d: %w", len(out)+2, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// parseWarehouses pasa cada fila por el mismo validador que usa POST /api/warehouses.
func parseWarehouses(records []map[string]string) ([]dto.WarehouseInput, error) {
	v := validation.NewWarehouseValidator()
	out := make([]dto.WarehouseInput, 0, len(records))
	for i, rec := range records {
		p := make(validation.Payload, len(rec))
		for k, val := range rec {
			p[k] = val
		}
		in, err := v.ValidateCreate(p)
		if err != nil {
			return nil, fmt.Errorf("bodega fila %d: %w", i+2, err)
		}
		out = append(out, in)
	}
	return out, nil
}

// parseInventories valida campos y cantidad; la bodega se referencia por nombre y debe estar en known.
func parseInventories(records []map[string]string, known map[string]bool) ([]inventoryRow, error) {
	out := make([]inventoryRow, 0, len(records))
	for i, rec := range records {
		line := i + 2
		for _, col := range []string{"warehouse_name", "item_name", "description", "category", "status", "quantity"} {
			if _, ok := rec[col]; !ok {
				return nil, fmt.Errorf("inventario fila %d: falta columna %s", line, col)
			}
		}
		if !known[rec["warehouse_name"]] {
			return nil, fmt.Errorf("inventario fila %d: bodega %q no existe", line, rec["warehouse_name"])
		}
		qty, ok := validation.ParseQuantity(rec["quantity"])
		if !ok {
			return nil, fmt.Errorf("inventario fila %d: %s", line, validation.MsgQuantityNumber)
		}
		out = append(out, inventoryRow{
			warehouseName: rec["warehouse_name"],
			itemName:      rec["item_name"],
			description:   rec["description"],
			category:      rec["category"],
			status:        rec["status"],
			quantity:      qty,
		})
	}
	return out, nil
}

// writeSQL escribe el script de seed. Los artículos resuelven warehouse_id por nombre con subquery.
func writeSQL(w io.Writer, warehouses []dto.WarehouseInput, items []inventoryRow) error {
	var b strings.Builder
	b.WriteString("-- Datos de ejemplo de bodegas e inventario\n")
	b.WriteString("-- Generado por cmd/seed\n\n")

	if len(warehouses) == 0 {
		return fmt.Errorf("no hay bodegas para sembrar")
	}
	b.WriteString("-- 1. Bodegas\n")
	b.WriteString("INSERT INTO warehouses (warehouse_name, address, city, country, contact_name, contact_position, contact_phone, contact_email) VALUES\n")
	for i, wh := range warehouses {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s')",
			escapeSQL(wh.WarehouseName), escapeSQL(wh.Address), escapeSQL(wh.City), escapeSQL(wh.Country),
			escapeSQL(wh.ContactName), escapeSQL(wh.ContactPosition), escapeSQL(wh.ContactPhone), escapeSQL(wh.ContactEmail))
		if i < len(warehouses)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString(";\n\n")
		}
	}

	b.WriteString("-- 2. Inventario\n")
	for _, it := range items {
		b.WriteString("INSERT INTO inventories (warehouse_id, item_name, description, category, status, quantity)\n")
		fmt.Fprintf(&b, "SELECT id, '%s', '%s', '%s', '%s', %s FROM warehouses WHERE warehouse_name = '%s' LIMIT 1;\n",
			escapeSQL(it.itemName), escapeSQL(it.description), escapeSQL(it.category), escapeSQL(it.status),
			it.quantity.String(), escapeSQL(it.warehouseName))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
