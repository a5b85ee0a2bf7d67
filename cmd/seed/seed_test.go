package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const warehousesCSV = "\ufeffwarehouse_name,address,city,country,contact_name,contact_position,contact_phone,contact_email\n" +
	"Manhattan,503 Broadway,New York,USA,Parmin Aujla,Warehouse Manager,+1 (646) 123-1234,paujla@instock.com\n" +
	"Jersey,300 Main Street,New Jersey,USA,Brad MacDonald,Warehouse Manager,+1 (646) 123-1234,bmcdonald@instock.com\n"

func TestReadRecords_QuitaBOM(t *testing.T) {
	recs, err := readRecords(strings.NewReader(warehousesCSV))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Manhattan", recs[0]["warehouse_name"])
	assert.Equal(t, "+1 (646) 123-1234", recs[1]["contact_phone"])
}

func TestNewReader_Latin1(t *testing.T) {
	// "Bogotá" en ISO-8859-1: á = 0xE1.
	raw := []byte("warehouse_name,city\nCentral,Bogot\xe1\n")
	recs, err := readRecords(newReader(bytes.NewReader(raw), true))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Bogotá", recs[0]["city"])
}

func TestParseWarehouses(t *testing.T) {
	recs, err := readRecords(strings.NewReader(warehousesCSV))
	require.NoError(t, err)

	out, err := parseWarehouses(recs)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Jersey", out[1].WarehouseName)

	recs[1]["contact_email"] = "not-an-email"
	_, err = parseWarehouses(recs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fila 3")
	assert.Contains(t, err.Error(), "invalid email format")
}

func TestParseInventories(t *testing.T) {
	csv := "warehouse_name,item_name,description,category,status,quantity\n" +
		"Manhattan,Television,50 inch TV,Electronics,In Stock,500\n" +
		"Manhattan,Gym Bag,Made out of military-grade O'Brien nylon,Gear,Out of Stock,0\n"
	recs, err := readRecords(strings.NewReader(csv))
	require.NoError(t, err)

	known := map[string]bool{"Manhattan": true}
	items, err := parseInventories(recs, known)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[1].quantity.IsZero())

	_, err = parseInventories(recs, map[string]bool{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Manhattan")

	recs[0]["quantity"] = "many"
	_, err = parseInventories(recs, known)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity must be a number")

	recs[0]["quantity"] = "1e20000000"
	_, err = parseInventories(recs, known)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fila 2")
	assert.Contains(t, err.Error(), "quantity must be a number")

	delete(recs[0], "status")
	_, err = parseInventories(recs, known)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestWriteSQL(t *testing.T) {
	recs, err := readRecords(strings.NewReader(warehousesCSV))
	require.NoError(t, err)
	warehouses, err := parseWarehouses(recs)
	require.NoError(t, err)

	itemRecs, err := readRecords(strings.NewReader("warehouse_name,item_name,description,category,status,quantity\n" +
		"Jersey,Gym Bag,O'Brien nylon,Gear,Out of Stock,0\n"))
	require.NoError(t, err)
	items, err := parseInventories(itemRecs, map[string]bool{"Manhattan": true, "Jersey": true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, warehouses, items))
	sql := buf.String()

	assert.Contains(t, sql, "INSERT INTO warehouses")
	assert.Contains(t, sql, "('Manhattan', '503 Broadway'")
	assert.Contains(t, sql, "'O''Brien nylon'", "las comillas simples se escapan")
	assert.Contains(t, sql, "FROM warehouses WHERE warehouse_name = 'Jersey' LIMIT 1;")
	assert.Equal(t, 1, strings.Count(sql, "INSERT INTO inventories"))

	assert.Error(t, writeSQL(&buf, nil, items))
}

func TestSeedFiles(t *testing.T) {
	dir := filepath.Join(findModuleRoot(), "seed")

	wRecs, err := readCSV(filepath.Join(dir, "warehouses.csv"), false)
	require.NoError(t, err)
	warehouses, err := parseWarehouses(wRecs)
	require.NoError(t, err, "los CSV incluidos deben pasar la validación de la API")

	known := make(map[string]bool, len(warehouses))
	for _, w := range warehouses {
		known[w.WarehouseName] = true
	}
	iRecs, err := readCSV(filepath.Join(dir, "inventories.csv"), false)
	require.NoError(t, err)
	items, err := parseInventories(iRecs, known)
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}
