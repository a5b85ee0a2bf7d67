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

// InventoryUseCase casos de uso CRUD para artículos de inventario.
type InventoryUseCase struct {
	repo      repository.InventoryItemRepository
	validator *validation.InventoryValidator
	log       *logger.Logger
}

// NewInventoryUseCase construye el caso de uso. warehouseRepo se usa para la verificación referencial.
func NewInventoryUseCase(
	repo repository.InventoryItemRepository,
	warehouseRepo repository.WarehouseRepository,
	log *logger.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		repo:      repo,
		validator: validation.NewInventoryValidator(warehouseRepo),
		log:       log,
	}
}

// List devuelve todos los artículos con el nombre de su bodega.
func (uc *InventoryUseCase) List(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar inventario")
		return nil, domain.NewInternalError("error getting inventories", err)
	}
	out := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toInventoryItemResponse(it))
	}
	return out, nil
}

// GetByID obtiene un artículo por ID con el nombre de su bodega.
func (uc *InventoryUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	notFound := domain.NewNotFoundError(fmt.Sprintf("Inventory item with ID %s not found", id))
	if !isValidID(id) {
		return nil, notFound
	}
	it, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("inventory_id", id).Msg("obtener artículo")
		return nil, domain.NewInternalError("unable to retrieve inventory information", err)
	}
	if it == nil {
		return nil, notFound
	}
	out := toInventoryItemResponse(it)
	return &out, nil
}

// Create valida el cuerpo (incluida la bodega referenciada) y crea el artículo.
func (uc *InventoryUseCase) Create(ctx context.Context, p validation.Payload) (*dto.InventoryItemResponse, error) {
	in, err := uc.validator.ValidateCreate(ctx, p)
	if err != nil {
		return nil, uc.validationFailure(err, "")
	}
	created, err := uc.repo.Create(ctx, toInventoryItemEntity("", in))
	if err != nil {
		return nil, uc.storeFailure(err, "", "error inserting inventory item")
	}
	out := toInventoryItemResponse(created)
	return &out, nil
}

// Update valida el cuerpo (que no puede traer id) y actualiza el artículo.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, p validation.Payload) (*dto.InventoryItemResponse, error) {
	in, err := uc.validator.ValidateUpdate(ctx, p)
	if err != nil {
		return nil, uc.validationFailure(err, id)
	}
	notFound := domain.NewNotFoundError(fmt.Sprintf("no inventory found with the id %s", id))
	if !isValidID(id) {
		return nil, notFound
	}
	updated, err := uc.repo.Update(ctx, toInventoryItemEntity(id, in))
	if err != nil {
		return nil, uc.storeFailure(err, id, "error updating inventory item")
	}
	if updated == nil {
		return nil, notFound
	}
	out := toInventoryItemResponse(updated)
	return &out, nil
}

// Delete elimina un artículo por ID.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	notFound := domain.NewNotFoundError(fmt.Sprintf("No inventory item found with ID %s", id))
	if !isValidID(id) {
		return notFound
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("inventory_id", id).Msg("eliminar artículo")
		return domain.NewInternalError("error deleting inventory item", err)
	}
	if !deleted {
		return notFound
	}
	return nil
}

// validationFailure registra la causa cuando el fallo de validación vino del store.
func (uc *InventoryUseCase) validationFailure(err error, id string) error {
	var internal *domain.InternalError
	if errors.As(err, &internal) {
		uc.log.Error().Err(internal.Cause).Str("inventory_id", id).Msg("verificar bodega del artículo")
	}
	return err
}

// storeFailure deja pasar el rechazo por FK (la bodega se borró entre la validación y la escritura).
func (uc *InventoryUseCase) storeFailure(err error, id, msg string) error {
	var invalid *domain.ValidationError
	if errors.As(err, &invalid) {
		return invalid
	}
	uc.log.Error().Err(err).Str("inventory_id", id).Msg(msg)
	return domain.NewInternalError(msg, err)
}

func toInventoryItemEntity(id string, in dto.InventoryItemInput) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:          id,
		WarehouseID: in.WarehouseID,
		ItemName:    in.ItemName,
		Description: in.Description,
		Category:    in.Category,
		Status:      in.Status,
		Quantity:    in.Quantity,
	}
}

func toInventoryItemResponse(it *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:            it.ID,
		WarehouseID:   it.WarehouseID,
		WarehouseName: it.WarehouseName,
		ItemName:      it.ItemName,
		Description:   it.Description,
		Category:      it.Category,
		Status:        it.Status,
		Quantity:      dto.QuantityNumber(it.Quantity),
	}
}
