package repository

import (
	"context"

	"github.com/jhoicas/instock-api/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para InventoryItem.
// List y GetByID devuelven filas desnormalizadas (con WarehouseName); Create y Update no.
// GetByID y Update devuelven (nil, nil) si el id no existe.
type InventoryItemRepository interface {
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Create(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByWarehouse(ctx context.Context, warehouseID string) (int64, error)
}
