package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación en memoria de InventoryRepository.
// Las lecturas se comportan como el JOIN de los adaptadores SQL: un artículo cuya bodega
// ya no existe no aparece.
type InventoryRepo struct {
	h handle
}

// NewInventoryRepository construye el repositorio sobre el Store.
func NewInventoryRepository(s *Store) *InventoryRepo {
	return &InventoryRepo{h: handle{s: s}}
}

// Create asigna id y timestamps. Rechaza una bodega inexistente como lo haría la llave foránea.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var err error
	r.h.write(func() {
		s := r.h.s
		if _, ok := s.warehouses[item.WarehouseID]; !ok {
			err = domain.NewValidationError(domain.MsgInvalidWarehouseID)
			return
		}
		s.lastIID++
		item.ID = s.lastIID
		item.CreatedAt = s.stamp()
		item.UpdatedAt = item.CreatedAt
		s.items[item.ID] = *item
	})
	return err
}

// GetByID devuelve nil, nil si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryItemView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out *entity.InventoryItemView
	r.h.read(func() {
		if item, ok := r.h.s.items[id]; ok {
			out = r.view(item)
		}
	})
	return out, nil
}

// List busca en item_name, category, quantity y warehouse_name y ordena según opts.
func (r *InventoryRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.InventoryItemView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	compare, err := inventoryComparator(opts.Sort)
	if err != nil {
		return nil, err
	}
	list := r.collect(func(v *entity.InventoryItemView) bool {
		return opts.Search == "" || containsFold(opts.Search,
			v.ItemName, v.Category, v.Quantity.String(), v.WarehouseName)
	})
	slices.SortFunc(list, compare)
	return list, nil
}

// ListByWarehouse lista los artículos de una bodega por id ascendente.
func (r *InventoryRepo) ListByWarehouse(ctx context.Context, warehouseID int64) ([]*entity.InventoryItemView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	list := r.collect(func(v *entity.InventoryItemView) bool { return v.WarehouseID == warehouseID })
	slices.SortFunc(list, func(a, b *entity.InventoryItemView) int { return cmp.Compare(a.ID, b.ID) })
	return list, nil
}

// Update reemplaza el artículo conservando id y created_at.
func (r *InventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var err error
	r.h.write(func() {
		s := r.h.s
		prev, ok := s.items[item.ID]
		if !ok {
			err = domain.ErrNotFound
			return
		}
		if _, ok := s.warehouses[item.WarehouseID]; !ok {
			err = domain.NewValidationError(domain.MsgInvalidWarehouseID)
			return
		}
		item.CreatedAt = prev.CreatedAt
		item.UpdatedAt = s.stamp()
		s.items[item.ID] = *item
	})
	return err
}

// Delete elimina un artículo por ID.
func (r *InventoryRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	found := false
	r.h.write(func() {
		if _, ok := r.h.s.items[id]; ok {
			found = true
			delete(r.h.s.items, id)
		}
	})
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByWarehouse elimina los artículos de una bodega.
func (r *InventoryRepo) DeleteByWarehouse(ctx context.Context, warehouseID int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var n int64
	r.h.write(func() {
		for id, item := range r.h.s.items {
			if item.WarehouseID == warehouseID {
				delete(r.h.s.items, id)
				n++
			}
		}
	})
	return n, nil
}

// view arma la proyección con el nombre de la bodega; nil si la bodega no existe (JOIN interno).
func (r *InventoryRepo) view(item entity.InventoryItem) *entity.InventoryItemView {
	w, ok := r.h.s.warehouses[item.WarehouseID]
	if !ok {
		return nil
	}
	return &entity.InventoryItemView{InventoryItem: item, WarehouseName: w.Name}
}

func (r *InventoryRepo) collect(keep func(*entity.InventoryItemView) bool) []*entity.InventoryItemView {
	list := make([]*entity.InventoryItemView, 0)
	r.h.read(func() {
		for _, item := range r.h.s.items {
			v := r.view(item)
			if v != nil && keep(v) {
				list = append(list, v)
			}
		}
	})
	return list
}

var inventoryText = map[string]func(*entity.InventoryItemView) string{
	"warehouse_name": func(v *entity.InventoryItemView) string { return v.WarehouseName },
	"item_name":      func(v *entity.InventoryItemView) string { return v.ItemName },
	"description":    func(v *entity.InventoryItemView) string { return v.Description },
	"category":       func(v *entity.InventoryItemView) string { return v.Category },
	"status":         func(v *entity.InventoryItemView) string { return v.Status },
}

func inventoryComparator(sort *repository.Sort) (func(a, b *entity.InventoryItemView) int, error) {
	if sort == nil {
		return func(a, b *entity.InventoryItemView) int { return cmp.Compare(a.ID, b.ID) }, nil
	}
	if sort.Order != repository.SortAsc && sort.Order != repository.SortDesc {
		return nil, domain.NewValidationError(domain.MsgInvalidSortOrder)
	}
	var base func(a, b *entity.InventoryItemView) int
	switch sort.Column {
	case "id":
		base = func(a, b *entity.InventoryItemView) int { return cmp.Compare(a.ID, b.ID) }
	case "warehouse_id":
		base = func(a, b *entity.InventoryItemView) int { return cmp.Compare(a.WarehouseID, b.WarehouseID) }
	case "quantity":
		base = func(a, b *entity.InventoryItemView) int { return a.Quantity.Cmp(b.Quantity) }
	case "created_at":
		base = func(a, b *entity.InventoryItemView) int { return compareTime(a.CreatedAt, b.CreatedAt) }
	case "updated_at":
		base = func(a, b *entity.InventoryItemView) int { return compareTime(a.UpdatedAt, b.UpdatedAt) }
	default:
		field, ok := inventoryText[sort.Column]
		if !ok {
			return nil, domain.NewValidationError(domain.MsgInvalidSortColumn)
		}
		base = func(a, b *entity.InventoryItemView) int { return strings.Compare(field(a), field(b)) }
	}
	return func(a, b *entity.InventoryItemView) int {
		return byIDThen(directed(base(a, b), sort.Order), a.ID, b.ID)
	}, nil
}
