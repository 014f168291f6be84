package usecase

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// InventoryUseCase casos de uso de artículos de inventario. Valida la referencia a la bodega
// dentro de la misma transacción que la escritura.
type InventoryUseCase struct {
	repo repository.InventoryRepository
	tx   TxRunner
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, tx TxRunner) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, tx: tx}
}

// List devuelve todos los artículos con el nombre de su bodega.
func (uc *InventoryUseCase) List(ctx context.Context) ([]dto.InventoryResponse, error) {
	return uc.list(ctx, repository.ListOptions{})
}

// Search busca en item_name, category, quantity y warehouse_name (OR, sin distinguir mayúsculas).
func (uc *InventoryUseCase) Search(ctx context.Context, s string) ([]dto.InventoryResponse, error) {
	return uc.list(ctx, repository.ListOptions{Search: s})
}

// ListSorted ordena por una columna de la lista permitida.
func (uc *InventoryUseCase) ListSorted(ctx context.Context, column, order string) ([]dto.InventoryResponse, error) {
	sort, err := parseSort(column, order, entity.InventorySortColumns)
	if err != nil {
		return nil, err
	}
	return uc.list(ctx, repository.ListOptions{Sort: sort})
}

func (uc *InventoryUseCase) list(ctx context.Context, opts repository.ListOptions) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// GetByID obtiene un artículo por ID.
func (uc *InventoryUseCase) GetByID(ctx context.Context, id int64) (*dto.InventoryResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryResponse(item), nil
}

// Create valida en orden: campos obligatorios, bodega existente, cantidad numérica >= 0.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.InventoryRequest) (*dto.InventoryResponse, error) {
	var out *entity.InventoryItemView
	err := uc.write(ctx, in, func(items repository.InventoryRepository, item *entity.InventoryItem) error {
		if err := items.Create(ctx, item); err != nil {
			return err
		}
		view, err := items.GetByID(ctx, item.ID)
		if err != nil {
			return err
		}
		out = view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(out), nil
}

// Update aplica la misma validación que Create y reemplaza el artículo identificado por id.
func (uc *InventoryUseCase) Update(ctx context.Context, id int64, in dto.InventoryRequest) (*dto.InventoryResponse, error) {
	var out *entity.InventoryItemView
	err := uc.write(ctx, in, func(items repository.InventoryRepository, item *entity.InventoryItem) error {
		item.ID = id
		if err := items.Update(ctx, item); err != nil {
			return err
		}
		view, err := items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if view == nil {
			return domain.ErrNotFound
		}
		out = view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(out), nil
}

// Delete elimina un artículo. domain.ErrNotFound si no existía.
func (uc *InventoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// write ejecuta la validación ordenada y, si pasa, la persiste dentro de la misma transacción.
func (uc *InventoryUseCase) write(ctx context.Context, in dto.InventoryRequest,
	persist func(items repository.InventoryRepository, item *entity.InventoryItem) error,
) error {
	if !inventoryFieldsPresent(in) {
		return domain.NewValidationError(domain.MsgMissingData)
	}
	warehouseID, err := parseWarehouseID(in.WarehouseID)
	if err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(warehouses repository.WarehouseRepository, items repository.InventoryRepository) error {
		exists, err := warehouses.Exists(ctx, warehouseID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewValidationError(domain.MsgInvalidWarehouseID)
		}
		quantity, err := parseQuantity(in.Quantity)
		if err != nil {
			return err
		}
		return persist(items, &entity.InventoryItem{
			WarehouseID: warehouseID,
			ItemName:    in.ItemName,
			Description: in.Description,
			Category:    in.Category,
			Status:      in.Status,
			Quantity:    quantity,
		})
	})
}

func toInventoryResponses(list []*entity.InventoryItemView) []dto.InventoryResponse {
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toInventoryResponse(v))
	}
	return out
}

func toInventoryResponse(v *entity.InventoryItemView) *dto.InventoryResponse {
	if v == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:            v.ID,
		WarehouseID:   v.WarehouseID,
		WarehouseName: v.WarehouseName,
		ItemName:      v.ItemName,
		Description:   v.Description,
		Category:      v.Category,
		Status:        v.Status,
		Quantity:      json.Number(v.Quantity.String()),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
