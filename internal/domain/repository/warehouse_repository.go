package repository

import (
	"context"

	"github.com/jhoicas/instock-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// GetByID y Update devuelven (nil, nil) si el id no existe; Delete devuelve false si no borró filas.
type WarehouseRepository interface {
	List(ctx context.Context) ([]*entity.Warehouse, error)
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, warehouse *entity.Warehouse) (*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) (*entity.Warehouse, error)
	Delete(ctx context.Context, id string) (bool, error)
}
