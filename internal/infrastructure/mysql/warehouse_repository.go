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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseSelect = `
		SELECT w.id, w.warehouse_name, w.address, w.city, w.country,
			w.contact_name, w.contact_position, w.contact_phone, w.contact_email, w.created_at, w.updated_at
		FROM warehouses w`

var warehouseSearchFields = []string{
	"w.warehouse_name", "w.address", "w.city", "w.country",
	"w.contact_name", "w.contact_position", "w.contact_phone", "w.contact_email",
}

// WarehouseRepo implementación de WarehouseRepository sobre MySQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar *sql.DB o *sql.Tx.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create inserta la bodega y relee id y timestamps generados.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO warehouses (warehouse_name, address, city, country, contact_name, contact_position, contact_phone, contact_email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.Name, w.Address, w.City, w.Country,
		w.ContactName, w.ContactPosition, w.ContactPhone, w.ContactEmail,
	)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert warehouse id: %w", err)
	}
	w.ID = id
	return r.loadTimestamps(ctx, w)
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRowContext(ctx, warehouseSelect+` WHERE w.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// Exists comprueba la bodega con LOCK IN SHARE MODE (bloqueo compartido dentro de una tx).
func (r *WarehouseRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.q.QueryRowContext(ctx, `SELECT id FROM warehouses WHERE id = ? LOCK IN SHARE MODE`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check warehouse: %w", err)
	}
	return true, nil
}

// List lista bodegas con búsqueda por subcadena sin distinguir mayúsculas.
func (r *WarehouseRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Warehouse, error) {
	orderBy, err := sqlutil.OrderBy(opts.Sort, sqlutil.WarehouseColumns, "w.id")
	if err != nil {
		return nil, err
	}
	query := warehouseSelect
	var args []any
	if opts.Search != "" {
		where, whereArgs := searchClause(warehouseSearchFields, opts.Search)
		query += where
		args = whereArgs
	}
	rows, err := r.q.QueryContext(ctx, query+orderBy, args...)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Warehouse, 0)
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Update actualiza una bodega existente. domain.ErrNotFound si el id no existe.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE warehouses SET warehouse_name = ?, address = ?, city = ?, country = ?,
			contact_name = ?, contact_position = ?, contact_phone = ?, contact_email = ?,
			updated_at = CURRENT_TIMESTAMP(6)
		WHERE id = ?`,
		w.Name, w.Address, w.City, w.Country,
		w.ContactName, w.ContactPosition, w.ContactPhone, w.ContactEmail, w.ID,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return r.loadTimestamps(ctx, w)
}

// Delete elimina una bodega por ID.
func (r *WarehouseRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM warehouses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *WarehouseRepo) loadTimestamps(ctx context.Context, w *entity.Warehouse) error {
	err := r.q.QueryRowContext(ctx, `SELECT created_at, updated_at FROM warehouses WHERE id = ?`, w.ID).
		Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("reload warehouse: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWarehouse(row rowScanner) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(&w.ID, &w.Name, &w.Address, &w.City, &w.Country,
		&w.ContactName, &w.ContactPosition, &w.ContactPhone, &w.ContactEmail,
		&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// searchClause arma "WHERE LOWER(f1) LIKE ? OR ..." con un argumento por campo.
func searchClause(fields []string, search string) (string, []any) {
	pattern := sqlutil.LikePattern(search)
	where := " WHERE "
	args := make([]any, 0, len(fields))
	for i, f := range fields {
		if i > 0 {
			where += " OR "
		}
		where += "LOWER(" + f + ") LIKE LOWER(?)"
		args = append(args, pattern)
	}
	return where, args
}
