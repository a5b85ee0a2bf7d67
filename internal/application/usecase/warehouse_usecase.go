package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/application/validation"
	"github.com/jhoicas/instock-api/internal/domain"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
	"github.com/jhoicas/instock-api/pkg/logger"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo      repository.WarehouseRepository
	itemRepo  repository.InventoryItemRepository
	txRunner  TxRunner
	validator *validation.WarehouseValidator
	log       *logger.Logger
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	repo repository.WarehouseRepository,
	itemRepo repository.InventoryItemRepository,
	txRunner TxRunner,
	log *logger.Logger,
) *WarehouseUseCase {
	return &WarehouseUseCase{
		repo:      repo,
		itemRepo:  itemRepo,
		txRunner:  txRunner,
		validator: validation.NewWarehouseValidator(),
		log:       log,
	}
}

// List devuelve todas las bodegas.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar bodegas")
		return nil, domain.NewInternalError("error retrieving warehouses", err)
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, toWarehouseResponse(w))
	}
	return out, nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	if !isValidID(id) {
		return nil, warehouseNotFound(id)
	}
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", id).Msg("obtener bodega")
		return nil, domain.NewInternalError("error retrieving warehouse", err)
	}
	if w == nil {
		return nil, warehouseNotFound(id)
	}
	out := toWarehouseResponse(w)
	return &out, nil
}

// Create valida el cuerpo y crea la bodega; devuelve la fila insertada.
func (uc *WarehouseUseCase) Create(ctx context.Context, p validation.Payload) (*dto.WarehouseResponse, error) {
	in, err := uc.validator.ValidateCreate(p)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, toWarehouseEntity("", in))
	if err != nil {
		uc.log.Error().Err(err).Msg("crear bodega")
		return nil, domain.NewInternalError("error inserting warehouse", err)
	}
	out := toWarehouseResponse(created)
	return &out, nil
}

// Update valida el cuerpo (que no puede traer id) y actualiza la bodega.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, p validation.Payload) (*dto.WarehouseResponse, error) {
	in, err := uc.validator.ValidateUpdate(p)
	if err != nil {
		return nil, err
	}
	if !isValidID(id) {
		return nil, warehouseNotFound(id)
	}
	updated, err := uc.repo.Update(ctx, toWarehouseEntity(id, in))
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", id).Msg("actualizar bodega")
		return nil, domain.NewInternalError("error updating warehouse", err)
	}
	if updated == nil {
		return nil, warehouseNotFound(id)
	}
	out := toWarehouseResponse(updated)
	return &out, nil
}

// Delete elimina la bodega y sus artículos de inventario en una sola transacción.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	if !isValidID(id) {
		return warehouseNotFound(id)
	}
	err := uc.txRunner.Run(ctx, func(warehouseRepo repository.WarehouseRepository, itemRepo repository.InventoryItemRepository) error {
		removed, err := itemRepo.DeleteByWarehouse(ctx, id)
		if err != nil {
			return err
		}
		deleted, err := warehouseRepo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrNotFound
		}
		uc.log.Debug().Str("warehouse_id", id).Int64("items", removed).Msg("bodega eliminada en cascada")
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		return warehouseNotFound(id)
	}
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", id).Msg("eliminar bodega")
		return domain.NewInternalError("error deleting warehouse", err)
	}
	return nil
}

// ListInventories lista los artículos de una bodega; 404 si la bodega no existe.
func (uc *WarehouseUseCase) ListInventories(ctx context.Context, id string) ([]dto.WarehouseInventoryResponse, error) {
	if !isValidID(id) {
		return nil, domain.NewNotFoundError(fmt.Sprintf("No warehouse found with id of %s", id))
	}
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", id).Msg("verificar bodega")
		return nil, domain.NewInternalError("error getting inventory for specified warehouse", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError(fmt.Sprintf("No warehouse found with id of %s", id))
	}
	items, err := uc.itemRepo.ListByWarehouse(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", id).Msg("listar inventario de bodega")
		return nil, domain.NewInternalError("error getting inventory for specified warehouse", err)
	}
	out := make([]dto.WarehouseInventoryResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.WarehouseInventoryResponse{
			ID:       it.ID,
			ItemName: it.ItemName,
			Category: it.Category,
			Status:   it.Status,
			Quantity: dto.QuantityNumber(it.Quantity),
		})
	}
	return out, nil
}

func warehouseNotFound(id string) error {
	return domain.NewNotFoundError(fmt.Sprintf("Warehouse with ID %s not found", id))
}

func toWarehouseEntity(id string, in dto.WarehouseInput) *entity.Warehouse {
	return &entity.Warehouse{
		ID:              id,
		Name:            in.WarehouseName,
		Address:         in.Address,
		City:            in.City,
		Country:         in.Country,
		ContactName:     in.ContactName,
		ContactPosition: in.ContactPosition,
		ContactPhone:    in.ContactPhone,
		ContactEmail:    in.ContactEmail,
	}
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:              w.ID,
		WarehouseName:   w.Name,
		Address:         w.Address,
		City:            w.City,
		Country:         w.Country,
		ContactName:     w.ContactName,
		ContactPosition: w.ContactPosition,
		ContactPhone:    w.ContactPhone,
		ContactEmail:    w.ContactEmail,
	}
}
