package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

var inventorySearchFields = []string{
	"i.item_name", "i.category", "CAST(i.quantity AS CHAR)", "w.warehouse_name",
}

// InventoryRepo implementación de InventoryRepository sobre MySQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta un artículo y relee id y timestamps.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO inventories (warehouse_id, item_name, description, category, status, quantity)
		VALUES (?, ?, ?, ?, ?, ?)`,
		item.WarehouseID, item.ItemName, item.Description, item.Category, item.Status, item.Quantity,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError(domain.MsgInvalidWarehouseID)
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert inventory item id: %w", err)
	}
	item.ID = id
	return r.loadTimestamps(ctx, item)
}

// GetByID obtiene un artículo con el nombre de su bodega.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryItemView, error) {
	v, err := scanInventoryItem(r.q.QueryRowContext(ctx, inventorySelect+` WHERE i.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return v, nil
}

// List lista artículos; la búsqueda es OR sobre item_name, category, quantity y warehouse_name.
func (r *InventoryRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.InventoryItemView, error) {
	orderBy, err := sqlutil.OrderBy(opts.Sort, sqlutil.InventoryColumns, "i.id")
	if err != nil {
		return nil, err
	}
	query := inventorySelect
	var args []any
	if opts.Search != "" {
		where, whereArgs := searchClause(inventorySearchFields, opts.Search)
		query += where
		args = whereArgs
	}
	return r.query(ctx, "list inventory", query+orderBy, args...)
}

// ListByWarehouse lista los artículos de una bodega.
func (r *InventoryRepo) ListByWarehouse(ctx context.Context, warehouseID int64) ([]*entity.InventoryItemView, error) {
	return r.query(ctx, "list inventory by warehouse",
		inventorySelect+` WHERE i.warehouse_id = ? ORDER BY i.id ASC`, warehouseID)
}

// Update reemplaza los campos del artículo. domain.ErrNotFound si no existe.
func (r *InventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE inventories SET warehouse_id = ?, item_name = ?, description = ?, category = ?,
			status = ?, quantity = ?, updated_at = CURRENT_TIMESTAMP(6)
		WHERE id = ?`,
		item.WarehouseID, item.ItemName, item.Description, item.Category, item.Status, item.Quantity, item.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError(domain.MsgInvalidWarehouseID)
		}
		return fmt.Errorf("update inventory item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return r.loadTimestamps(ctx, item)
}

// Delete elimina un artículo por ID.
func (r *InventoryRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM inventories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByWarehouse elimina todos los artículos de una bodega.
func (r *InventoryRepo) DeleteByWarehouse(ctx context.Context, warehouseID int64) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM inventories WHERE warehouse_id = ?`, warehouseID)
	if err != nil {
		return 0, fmt.Errorf("delete inventory by warehouse: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *InventoryRepo) loadTimestamps(ctx context.Context, item *entity.InventoryItem) error {
	err := r.q.QueryRowContext(ctx, `SELECT created_at, updated_at FROM inventories WHERE id = ?`, item.ID).
		Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("reload inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepo) query(ctx context.Context, op, query string, args ...any) ([]*entity.InventoryItemView, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
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

func scanInventoryItem(row rowScanner) (*entity.InventoryItemView, error) {
	var v entity.InventoryItemView
	err := row.Scan(&v.ID, &v.WarehouseID, &v.WarehouseName, &v.ItemName, &v.Description, &v.Category,
		&v.Status, &v.Quantity, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
