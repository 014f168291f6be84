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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación en memoria de WarehouseRepository.
type WarehouseRepo struct {
	h handle
}

// NewWarehouseRepository construye el repositorio sobre el Store.
func NewWarehouseRepository(s *Store) *WarehouseRepo {
	return &WarehouseRepo{h: handle{s: s}}
}

// Create asigna id y timestamps y guarda la bodega.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.h.write(func() {
		s := r.h.s
		s.lastWID++
		w.ID = s.lastWID
		w.CreatedAt = s.stamp()
		w.UpdatedAt = w.CreatedAt
		s.warehouses[w.ID] = *w
	})
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out *entity.Warehouse
	r.h.read(func() {
		if w, ok := r.h.s.warehouses[id]; ok {
			out = &w
		}
	})
	return out, nil
}

// Exists indica si la bodega existe.
func (r *WarehouseRepo) Exists(ctx context.Context, id int64) (bool, error) {
	w, err := r.GetByID(ctx, id)
	return w != nil, err
}

// List filtra y ordena como los adaptadores SQL.
func (r *WarehouseRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Warehouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	compare, err := warehouseComparator(opts.Sort)
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Warehouse, 0)
	r.h.read(func() {
		for _, w := range r.h.s.warehouses {
			if opts.Search != "" && !containsFold(opts.Search,
				w.Name, w.Address, w.City, w.Country,
				w.ContactName, w.ContactPosition, w.ContactPhone, w.ContactEmail) {
				continue
			}
			list = append(list, &w)
		}
	})
	slices.SortFunc(list, compare)
	return list, nil
}

// Update reemplaza los campos editables conservando id y created_at.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	found := false
	r.h.write(func() {
		s := r.h.s
		prev, ok := s.warehouses[w.ID]
		if !ok {
			return
		}
		found = true
		w.CreatedAt = prev.CreatedAt
		w.UpdatedAt = s.stamp()
		s.warehouses[w.ID] = *w
	})
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la bodega. No toca los artículos: el borrado en cascada lo coordina el caso de uso.
func (r *WarehouseRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	found := false
	r.h.write(func() {
		if _, ok := r.h.s.warehouses[id]; ok {
			found = true
			delete(r.h.s.warehouses, id)
		}
	})
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

var warehouseText = map[string]func(*entity.Warehouse) string{
	"warehouse_name":   func(w *entity.Warehouse) string { return w.Name },
	"address":          func(w *entity.Warehouse) string { return w.Address },
	"city":             func(w *entity.Warehouse) string { return w.City },
	"country":          func(w *entity.Warehouse) string { return w.Country },
	"contact_name":     func(w *entity.Warehouse) string { return w.ContactName },
	"contact_position": func(w *entity.Warehouse) string { return w.ContactPosition },
	"contact_phone":    func(w *entity.Warehouse) string { return w.ContactPhone },
	"contact_email":    func(w *entity.Warehouse) string { return w.ContactEmail },
}

func warehouseComparator(sort *repository.Sort) (func(a, b *entity.Warehouse) int, error) {
	if sort == nil {
		return func(a, b *entity.Warehouse) int { return cmp.Compare(a.ID, b.ID) }, nil
	}
	if sort.Order != repository.SortAsc && sort.Order != repository.SortDesc {
		return nil, domain.NewValidationError(domain.MsgInvalidSortOrder)
	}
	var base func(a, b *entity.Warehouse) int
	switch sort.Column {
	case "id":
		base = func(a, b *entity.Warehouse) int { return cmp.Compare(a.ID, b.ID) }
	case "created_at":
		base = func(a, b *entity.Warehouse) int { return compareTime(a.CreatedAt, b.CreatedAt) }
	case "updated_at":
		base = func(a, b *entity.Warehouse) int { return compareTime(a.UpdatedAt, b.UpdatedAt) }
	default:
		field, ok := warehouseText[sort.Column]
		if !ok {
			return nil, domain.NewValidationError(domain.MsgInvalidSortColumn)
		}
		base = func(a, b *entity.Warehouse) int { return strings.Compare(field(a), field(b)) }
	}
	return func(a, b *entity.Warehouse) int {
		return byIDThen(directed(base(a, b), sort.Order), a.ID, b.ID)
	}, nil
}
