package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// InventoryItemInput cuerpo validado de POST/PUT /api/inventories.
type InventoryItemInput struct {
	WarehouseID string          `json:"warehouse_id"`
	ItemName    string          `json:"item_name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"number"`
}

// InventoryItemResponse salida de un artículo. WarehouseName solo viene en lecturas (GET).
type InventoryItemResponse struct {
	ID            string      `json:"id"`
	WarehouseID   string      `json:"warehouse_id"`
	WarehouseName string      `json:"warehouse_name,omitempty"`
	ItemName      string      `json:"item_name"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
	Status        string      `json:"status"`
	Quantity      json.Number `json:"quantity" swaggertype:"number"`
}

// WarehouseInventoryResponse fila de GET /api/warehouses/{id}/inventories.
type WarehouseInventoryResponse struct {
	ID       string      `json:"id"`
	ItemName string      `json:"item_name"`
	Category string      `json:"category"`
	Status   string      `json:"status"`
	Quantity json.Number `json:"quantity" swaggertype:"number"`
}

// QuantityNumber serializa la cantidad como número JSON (decimal.Decimal usa string por defecto).
func QuantityNumber(q decimal.Decimal) json.Number {
	return json.Number(q.String())
}
