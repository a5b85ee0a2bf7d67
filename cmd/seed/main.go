// seed genera el script SQL con datos de ejemplo de bodegas e inventario
// a partir de warehouses.csv e inventories.csv.
//
// Uso: go run ./cmd/seed [-latin1] [directorio]
// Por defecto busca los CSV en ./seed. Con -latin1 los lee como ISO-8859-1.
// Escribe: internal/infrastructure/postgres/migrations/002_seed.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	dir := "seed"
	latin1 := false
	for _, arg := range os.Args[1:] {
		if arg == "-latin1" {
			latin1 = true
			continue
		}
		dir = arg
	}

	warehouseRecords, err := readCSV(filepath.Join(dir, "warehouses.csv"), latin1)
	if err != nil {
		fail("Leer bodegas", err)
	}
	warehouses, err := parseWarehouses(warehouseRecords)
	if err != nil {
		fail("Validar bodegas", err)
	}
	known := make(map[string]bool, len(warehouses))
	for _, w := range warehouses {
		known[w.WarehouseName] = true
	}

	itemRecords, err := readCSV(filepath.Join(dir, "inventories.csv"), latin1)
	if err != nil {
		fail("Leer inventario", err)
	}
	items, err := parseInventories(itemRecords, known)
	if err != nil {
		fail("Validar inventario", err)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fail("Crear archivo", err)
	}
	defer out.Close()

	if err := writeSQL(out, warehouses, items); err != nil {
		fail("Escribir SQL", err)
	}

	fmt.Printf("Generado %s: %d bodegas, %d artículos\n", outPath, len(warehouses), len(items))
}

func readCSV(path string, latin1 bool) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readRecords(newReader(f, latin1))
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
