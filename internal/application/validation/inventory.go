package validation

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain"
)

var inventorySchema = schema{
	required: []string{
		"warehouse_id",
		"item_name",
		"description",
		"category",
		"status",
		"quantity",
	},
	allowZero: true,
}

var inventoryTextFields = []string{"warehouse_id", "item_name", "description", "category", "status"}

// WarehouseLookup lo mínimo que el validador necesita para la verificación referencial.
// Lo implementa repository.WarehouseRepository.
type WarehouseLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// InventoryValidator valida los cuerpos de escritura de artículos de inventario.
type InventoryValidator struct {
	warehouses WarehouseLookup
}

// NewInventoryValidator construye el validador con el lookup de bodegas.
func NewInventoryValidator(warehouses WarehouseLookup) *InventoryValidator {
	return &InventoryValidator{warehouses: warehouses}
}

// ValidateCreate valida el cuerpo de POST /api/inventories.
func (v *InventoryValidator) ValidateCreate(ctx context.Context, p Payload) (dto.InventoryItemInput, error) {
	return v.check(ctx, p)
}

// ValidateUpdate valida el cuerpo de PUT /api/inventories/{id}; además rechaza la clave id.
func (v *InventoryValidator) ValidateUpdate(ctx context.Context, p Payload) (dto.InventoryItemInput, error) {
	in, err := v.check(ctx, p)
	if err != nil {
		return dto.InventoryItemInput{}, err
	}
	if err := rejectID(p); err != nil {
		return dto.InventoryItemInput{}, err
	}
	return in, nil
}

func (v *InventoryValidator) check(ctx context.Context, p Payload) (dto.InventoryItemInput, error) {
	if err := inventorySchema.checkPresence(p); err != nil {
		return dto.InventoryItemInput{}, err
	}

	values := make(map[string]string, len(inventoryTextFields))
	for _, name := range inventoryTextFields {
		s, err := stringField(p, name)
		if err != nil {
			return dto.InventoryItemInput{}, err
		}
		values[name] = s
	}
	quantity, ok := numberField(p, "quantity")
	if !ok {
		return dto.InventoryItemInput{}, domain.NewValidationError(MsgQuantityNumber)
	}

	// Un id que no es UUID nunca puede existir en warehouses.
	if _, err := uuid.Parse(values["warehouse_id"]); err != nil {
		return dto.InventoryItemInput{}, domain.NewValidationError(MsgWarehouseMissing)
	}
	exists, err := v.warehouses.Exists(ctx, values["warehouse_id"])
	if err != nil {
		return dto.InventoryItemInput{}, domain.NewInternalError("internal server error", err)
	}
	if !exists {
		return dto.InventoryItemInput{}, domain.NewValidationError(MsgWarehouseMissing)
	}

	return dto.InventoryItemInput{
		WarehouseID: values["warehouse_id"],
		ItemName:    values["item_name"],
		Description: values["description"],
		Category:    values["category"],
		Status:      values["status"],
		Quantity:    quantity,
	}, nil
}
