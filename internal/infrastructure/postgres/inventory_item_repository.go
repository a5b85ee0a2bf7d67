package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/instock-api/internal/application/validation"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `id, warehouse_id, item_name, description, category, status, quantity`

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// InventoryItemRepo implementación de InventoryItemRepository sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// joinedSelect lectura desnormalizada: artículo + warehouses.warehouse_name.
func joinedSelect() squirrel.SelectBuilder {
	return psql.Select(
		"i.id",
		"i.warehouse_id",
		"w.warehouse_name",
		"i.item_name",
		"i.description",
		"i.category",
		"i.status",
		"i.quantity",
	).
		From("inventories i").
		Join("warehouses w ON w.id = i.warehouse_id").
		OrderBy("i.created_at", "i.id")
}

// List lista todos los artículos con el nombre de su bodega.
func (r *InventoryItemRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	return r.queryJoined(ctx, joinedSelect(), "list inventories")
}

// ListByWarehouse lista los artículos de una bodega.
func (r *InventoryItemRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.InventoryItem, error) {
	return r.queryJoined(ctx, joinedSelect().Where(squirrel.Eq{"i.warehouse_id": warehouseID}), "list inventories by warehouse")
}

// GetByID obtiene un artículo por ID con el nombre de su bodega.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query, args, err := joinedSelect().Where(squirrel.Eq{"i.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get inventory: %w", err)
	}
	it, err := scanJoinedItem(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return it, nil
}

// Create persiste un artículo; el ID lo genera la base de datos.
// Si la bodega desapareció después de la validación, la FK lo rechaza como error de validación.
func (r *InventoryItemRepo) Create(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	query := `
		INSERT INTO inventories (warehouse_id, item_name, description, category, status, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + itemColumns
	it, err := scanItem(r.q.QueryRow(ctx, query,
		item.WarehouseID, item.ItemName, item.Description, item.Category, item.Status, item.Quantity,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewValidationError(validation.MsgWarehouseMissing)
		}
		return nil, fmt.Errorf("insert inventory: %w", err)
	}
	return it, nil
}

// Update reemplaza los campos de un artículo existente. Devuelve nil si el ID no existe.
func (r *InventoryItemRepo) Update(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	query := `
		UPDATE inventories SET warehouse_id = $2, item_name = $3, description = $4,
			category = $5, status = $6, quantity = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + itemColumns
	it, err := scanItem(r.q.QueryRow(ctx, query,
		item.ID, item.WarehouseID, item.ItemName, item.Description, item.Category, item.Status, item.Quantity,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isForeignKeyViolation(err) {
			return nil, domain.NewValidationError(validation.MsgWarehouseMissing)
		}
		return nil, fmt.Errorf("update inventory: %w", err)
	}
	return it, nil
}

// Delete elimina un artículo por ID. Devuelve false si no existía.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete inventory: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DeleteByWarehouse elimina todos los artículos de una bodega y devuelve cuántos borró.
func (r *InventoryItemRepo) DeleteByWarehouse(ctx context.Context, warehouseID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventories WHERE warehouse_id = $1`, warehouseID)
	if err != nil {
		return 0, fmt.Errorf("delete inventories by warehouse: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *InventoryItemRepo) queryJoined(ctx context.Context, qb squirrel.SelectBuilder, op string) ([]*entity.InventoryItem, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.InventoryItem, 0)
	for rows.Next() {
		it, err := scanJoinedItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(&it.ID, &it.WarehouseID, &it.ItemName, &it.Description, &it.Category, &it.Status, &it.Quantity)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func scanJoinedItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(&it.ID, &it.WarehouseID, &it.WarehouseName, &it.ItemName, &it.Description, &it.Category, &it.Status, &it.Quantity)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
