package entity

// Warehouse representa una bodega con su contacto. ID lo asigna la base de datos y no cambia.
type Warehouse struct {
	ID              string
	Name            string // warehouse_name
	Address         string
	City            string
	Country         string
	ContactName     string
	ContactPosition string
	ContactPhone    string
	ContactEmail    string
}
