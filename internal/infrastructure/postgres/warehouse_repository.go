package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `id, warehouse_name, address, city, country,
	contact_name, contact_position, contact_phone, contact_email`

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// List lista todas las bodegas en orden de creación.
func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query)
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

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	w, err := scanWarehouse(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// Exists indica si hay una bodega con ese ID.
func (r *WarehouseRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM warehouses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("warehouse exists: %w", err)
	}
	return exists, nil
}

// Create persiste una nueva bodega; el ID lo genera la base de datos.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) (*entity.Warehouse, error) {
	query := `
		INSERT INTO warehouses (warehouse_name, address, city, country,
			contact_name, contact_position, contact_phone, contact_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + warehouseColumns
	w, err := scanWarehouse(r.q.QueryRow(ctx, query,
		warehouse.Name, warehouse.Address, warehouse.City, warehouse.Country,
		warehouse.ContactName, warehouse.ContactPosition, warehouse.ContactPhone, warehouse.ContactEmail,
	))
	if err != nil {
		return nil, fmt.Errorf("insert warehouse: %w", err)
	}
	return w, nil
}

// Update reemplaza los campos de una bodega existente. Devuelve nil si el ID no existe.
func (r *WarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) (*entity.Warehouse, error) {
	query := `
		UPDATE warehouses SET warehouse_name = $2, address = $3, city = $4, country = $5,
			contact_name = $6, contact_position = $7, contact_phone = $8, contact_email = $9,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + warehouseColumns
	w, err := scanWarehouse(r.q.QueryRow(ctx, query,
		warehouse.ID, warehouse.Name, warehouse.Address, warehouse.City, warehouse.Country,
		warehouse.ContactName, warehouse.ContactPosition, warehouse.ContactPhone, warehouse.ContactEmail,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update warehouse: %w", err)
	}
	return w, nil
}

// Delete elimina una bodega por ID. Devuelve false si no existía.
func (r *WarehouseRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete warehouse: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(
		&w.ID, &w.Name, &w.Address, &w.City, &w.Country,
		&w.ContactName, &w.ContactPosition, &w.ContactPhone, &w.ContactEmail,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
