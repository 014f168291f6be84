package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
	"github.com/jhoicas/instock-api/internal/infrastructure/sqlutil"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventorySelect = `
		SELECT i.id, i.warehouse_id, w.warehouse_name, i.item_name, i.description, i.category,
			i.status, i.quantity, i.created_at, i.updated_at
		FROM inventories i
		JOIN warehouses w ON w.id = i.warehouse_id`

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta un artículo; id y timestamps los genera la BD.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventories (warehouse_id, item_name, description, category, status, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		item.WarehouseID, item.ItemName, item.Description, item.Category, item.Status, item.Quantity,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError(domain.MsgInvalidWarehouseID)
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo con el nombre de su bodega.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryItemView, error) {
	v, err := scanInventoryItem(r.q.QueryRow(ctx, inventorySelect+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return v, nil
}

// List lista artículos. La búsqueda es OR sobre item_name, category, quantity (como texto) y warehouse_name.
func (r *InventoryRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.InventoryItemView, error) {
	orderBy, err := sqlutil.OrderBy(opts.Sort, sqlutil.InventoryColumns, "i.id")
	if err != nil {
		return nil, err
	}
	query := inventorySelect
	var args []any
	if opts.Search != "" {
		query += `
		WHERE i.item_name ILIKE $1 OR i.category ILIKE $1 OR i.quantity::text ILIKE $1 OR w.warehouse_name ILIKE $1`
		args = append(args, sqlutil.LikePattern(opts.Search))
	}
	return r.query(ctx, "list inventory", query+orderBy, args...)
}

// ListByWarehouse lista los artículos de una bodega.
func (r *InventoryRepo) ListByWarehouse(ctx context.Context, warehouseID int64) ([]*entity.InventoryItemView, error) {
	return r.query(ctx, "list inventory by warehouse",
		inventorySelect+` WHERE i.warehouse_id = $1 ORDER BY i.id ASC`, warehouseID)
}

// Update reemplaza los campos del artículo. domain.ErrNotFound si no existe.
func (r *InventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		UPDATE inventories SET warehouse_id = $2, item_name = $3, description = $4, category = $5,
			status = $6, quantity = $7, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		item.ID, item.WarehouseID, item.ItemName, item.Description, item.Category, item.Status, item.Quantity,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return domain.NewValidationError(domain.MsgInvalidWarehouseID)
		}
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *InventoryRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByWarehouse elimina todos los artículos de una bodega.
func (r *InventoryRepo) DeleteByWarehouse(ctx context.Context, warehouseID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventories WHERE warehouse_id = $1`, warehouseID)
	if err != nil {
		return 0, fmt.Errorf("delete inventory by warehouse: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *InventoryRepo) query(ctx context.Context, op, query string, args ...any) ([]*entity.InventoryItemView, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.InventoryItemView, 0)
	for rows.Next() {
		v, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func scanInventoryItem(row pgx.Row) (*entity.InventoryItemView, error) {
	var v entity.InventoryItemView
	err := row.Scan(&v.ID, &v.WarehouseID, &v.WarehouseName, &v.ItemName, &v.Description, &v.Category,
		&v.Status, &v.Quantity, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
