package usecase

import (
	"context"

	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		warehouses repository.WarehouseRepository,
		items repository.InventoryRepository,
	) error) error
}
