package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID              int64
	Name            string
	Address         string
	City            string
	Country         string
	ContactName     string
	ContactPosition string
	ContactPhone    string
	ContactEmail    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WarehouseSortColumns columnas por las que se permite ordenar bodegas.
var WarehouseSortColumns = []string{
	"id", "warehouse_name", "address", "city", "country",
	"contact_name", "contact_position", "contact_phone", "contact_email",
	"created_at", "updated_at",
}
