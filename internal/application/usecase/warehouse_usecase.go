package usecase

import (
	"context"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD, búsqueda y orden para bodegas.
type WarehouseUseCase struct {
	repo  repository.WarehouseRepository
	items repository.InventoryRepository
	tx    TxRunner
}

// NewWarehouseUseCase construye el caso de uso. items se usa para las lecturas por bodega;
// tx para el borrado en cascada.
func NewWarehouseUseCase(repo repository.WarehouseRepository, items repository.InventoryRepository, tx TxRunner) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, items: items, tx: tx}
}

// List devuelve todas las bodegas en el orden por defecto del almacenamiento.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	return uc.list(ctx, repository.ListOptions{})
}

// Search filtra por subcadena (sin distinguir mayúsculas) en todos los campos de texto.
// Una cadena vacía devuelve todas las bodegas.
func (uc *WarehouseUseCase) Search(ctx context.Context, s string) ([]dto.WarehouseResponse, error) {
	return uc.list(ctx, repository.ListOptions{Search: s})
}

// ListSorted ordena por una columna de la lista permitida.
func (uc *WarehouseUseCase) ListSorted(ctx context.Context, column, order string) ([]dto.WarehouseResponse, error) {
	sort, err := parseSort(column, order, entity.WarehouseSortColumns)
	if err != nil {
		return nil, err
	}
	return uc.list(ctx, repository.ListOptions{Sort: sort})
}

func (uc *WarehouseUseCase) list(ctx context.Context, opts repository.ListOptions) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, *toWarehouseResponse(w))
	}
	return out, nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id int64) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// Create crea una nueva bodega. warehouse_name es obligatorio.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	if blank(in.WarehouseName) {
		return nil, domain.NewValidationError(domain.MsgMissingData)
	}
	warehouse := &entity.Warehouse{}
	applyWarehouseRequest(warehouse, in)
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Update reemplaza los campos editables de una bodega existente.
func (uc *WarehouseUseCase) Update(ctx context.Context, id int64, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	if blank(in.WarehouseName) {
		return nil, domain.NewValidationError(domain.MsgMissingData)
	}
	warehouse := &entity.Warehouse{ID: id}
	applyWarehouseRequest(warehouse, in)
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Delete elimina la bodega y, en la misma transacción, sus artículos de inventario.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(warehouses repository.WarehouseRepository, items repository.InventoryRepository) error {
		exists, err := warehouses.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		if _, err := items.DeleteByWarehouse(ctx, id); err != nil {
			return err
		}
		return warehouses.Delete(ctx, id)
	})
}

// Inventories lista los artículos de una bodega. domain.ErrNotFound si la bodega no existe.
func (uc *WarehouseUseCase) Inventories(ctx context.Context, id int64) ([]dto.InventoryResponse, error) {
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	list, err := uc.items.ListByWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

func applyWarehouseRequest(w *entity.Warehouse, in dto.WarehouseRequest) {
	w.Name = in.WarehouseName
	w.Address = in.Address
	w.City = in.City
	w.Country = in.Country
	w.ContactName = in.ContactName
	w.ContactPosition = in.ContactPosition
	w.ContactPhone = in.ContactPhone
	w.ContactEmail = in.ContactEmail
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:              w.ID,
		WarehouseName:   w.Name,
		Address:         w.Address,
		City:            w.City,
		Country:         w.Country,
		ContactName:     w.ContactName,
		ContactPosition: w.ContactPosition,
		ContactPhone:    w.ContactPhone,
		ContactEmail:    w.ContactEmail,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}
