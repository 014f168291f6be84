package dto

import "time"

// WarehouseRequest entrada para crear o reemplazar una bodega (POST y PUT).
type WarehouseRequest struct {
	WarehouseName   string `json:"warehouse_name" validate:"required"`
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
	ID              int64     `json:"id"`
	WarehouseName   string    `json:"warehouse_name"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	ContactName     string    `json:"contact_name"`
	ContactPosition string    `json:"contact_position"`
	ContactPhone    string    `json:"contact_phone"`
	ContactEmail    string    `json:"contact_email"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
