package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/instock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		warehouseRepo repository.WarehouseRepository,
		itemRepo repository.InventoryItemRepository,
	) error) error
}

// isValidID los ids son UUID; cualquier otra cosa no puede existir en el store.
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
