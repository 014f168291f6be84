package dto

import (
	"encoding/json"
	"time"
)

// InventoryRequest entrada para crear o reemplazar un artículo de inventario.
// warehouse_id y quantity aceptan número o string numérico.
type InventoryRequest struct {
	WarehouseID Scalar `json:"warehouse_id"`
	ItemName    string `json:"item_name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Quantity    Scalar `json:"quantity"`
}

// InventoryResponse salida de un artículo con el nombre de su bodega.
type InventoryResponse struct {
	ID            int64       `json:"id"`
	WarehouseID   int64       `json:"warehouse_id"`
	WarehouseName string      `json:"warehouse_name"`
	ItemName      string      `json:"item_name"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
	Status        string      `json:"status"`
	Quantity      json.Number `json:"quantity"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
