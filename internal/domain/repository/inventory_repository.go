package repository

import (
	"context"

	"github.com/jhoicas/instock-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem.
// Las lecturas devuelven la proyección con el nombre de la bodega.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id int64) (*entity.InventoryItemView, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.InventoryItemView, error)
	ListByWarehouse(ctx context.Context, warehouseID int64) ([]*entity.InventoryItemView, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id int64) error
	// DeleteByWarehouse elimina todos los artículos de una bodega y devuelve cuántos borró.
	DeleteByWarehouse(ctx context.Context, warehouseID int64) (int64, error)
}
