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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `w.id, w.warehouse_name, w.address, w.city, w.country,
		w.contact_name, w.contact_position, w.contact_phone, w.contact_email, w.created_at, w.updated_at`

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una nueva bodega; id y timestamps los genera la BD.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (warehouse_name, address, city, country, contact_name, contact_position, contact_phone, contact_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		w.Name, w.Address, w.City, w.Country,
		w.ContactName, w.ContactPosition, w.ContactPhone, w.ContactEmail,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses w WHERE w.id = $1`
	w, err := scanWarehouse(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// Exists comprueba la bodega con FOR SHARE: dentro de una tx impide borrarla hasta el commit.
func (r *WarehouseRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.q.QueryRow(ctx, `SELECT id FROM warehouses WHERE id = $1 FOR SHARE`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check warehouse: %w", err)
	}
	return true, nil
}

// List lista bodegas, filtrando por subcadena en cualquier campo de texto (ILIKE) y ordenando según opts.
func (r *WarehouseRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Warehouse, error) {
	orderBy, err := sqlutil.OrderBy(opts.Sort, sqlutil.WarehouseColumns, "w.id")
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + warehouseColumns + ` FROM warehouses w`
	var args []any
	if opts.Search != "" {
		query += `
		WHERE w.warehouse_name ILIKE $1 OR w.address ILIKE $1 OR w.city ILIKE $1 OR w.country ILIKE $1
		   OR w.contact_name ILIKE $1 OR w.contact_position ILIKE $1 OR w.contact_phone ILIKE $1 OR w.contact_email ILIKE $1`
		args = append(args, sqlutil.LikePattern(opts.Search))
	}
	query += orderBy

	rows, err := r.q.Query(ctx, query, args...)
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
	query := `
		UPDATE warehouses SET warehouse_name = $2, address = $3, city = $4, country = $5,
			contact_name = $6, contact_position = $7, contact_phone = $8, contact_email = $9,
			updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		w.ID, w.Name, w.Address, w.City, w.Country,
		w.ContactName, w.ContactPosition, w.ContactPhone, w.ContactEmail,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// Delete elimina una bodega por ID.
func (r *WarehouseRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(&w.ID, &w.Name, &w.Address, &w.City, &w.Country,
		&w.ContactName, &w.ContactPosition, &w.ContactPhone, &w.ContactEmail,
		&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
