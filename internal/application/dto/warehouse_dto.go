package dto

// WarehouseInput cuerpo validado de POST/PUT /api/warehouses (los 8 campos son requeridos).
type WarehouseInput struct {
	WarehouseName   string `json:"warehouse_name"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Country         string `json:"country"`
	ContactName     string `json:"contact_name"`
	ContactPosition string `json:"contact_position"`
	ContactPhone    string `json:"contact_phone"`
	ContactEmail    string `json:"contact_email"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID              string `json:"id"`
	WarehouseName   string `json:"warehouse_name"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Country         string `json:"country"`
	ContactName     string `json:"contact_name"`
	ContactPosition string `json:"contact_position"`
	ContactPhone    string `json:"contact_phone"`
	ContactEmail    string `json:"contact_email"`
}
