package repository

import (
	"context"

	"github.com/jhoicas/instock-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	// Create inserta la bodega y completa ID, CreatedAt y UpdatedAt.
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	// Exists indica si la bodega existe. Dentro de una transacción bloquea la fila en modo compartido.
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.Warehouse, error)
	// Update sobrescribe los campos editables, refresca UpdatedAt y completa CreatedAt.
	// domain.ErrNotFound si no existe.
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	// Delete devuelve domain.ErrNotFound si no se eliminó ninguna fila.
	Delete(ctx context.Context, id int64) error
}
