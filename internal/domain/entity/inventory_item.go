package entity

import "github.com/shopspring/decimal"

// InventoryItem representa un artículo almacenado en una bodega (N:1 con Warehouse).
// WarehouseName solo se llena en lecturas desnormalizadas (join con warehouses).
type InventoryItem struct {
	ID            string
	WarehouseID   string
	WarehouseName string
	ItemName      string
	Description   string
	Category      string
	Status        string
	Quantity      decimal.Decimal // 0 es un valor válido
}
