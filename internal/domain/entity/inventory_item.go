package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem artículo almacenado en exactamente una bodega.
// WarehouseID es una referencia débil: se valida al escribir, no se mantiene después.
type InventoryItem struct {
	ID          int64
	WarehouseID int64
	ItemName    string
	Description string
	Category    string
	Status      string
	Quantity    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InventoryItemView proyección de lectura: el artículo con el nombre de su bodega.
type InventoryItemView struct {
	InventoryItem
	WarehouseName string
}

// InventorySortColumns columnas por las que se permite ordenar artículos.
var InventorySortColumns = []string{
	"id", "warehouse_id", "warehouse_name", "item_name", "description",
	"category", "status", "quantity", "created_at", "updated_at",
}
