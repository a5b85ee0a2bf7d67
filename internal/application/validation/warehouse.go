package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/domain"
)

// PhoneDigits cantidad exacta de dígitos de contact_phone (código de país + 10).
const PhoneDigits = 11

var (
	warehouseSchema = schema{
		required: []string{
			"warehouse_name",
			"address",
			"city",
			"country",
			"contact_name",
			"contact_position",
			"contact_phone",
			"contact_email",
		},
	}

	nonDigits = regexp.MustCompile(`\D`)
)

// WarehouseValidator valida los cuerpos de escritura de bodegas.
type WarehouseValidator struct {
	validate *validator.Validate
}

// NewWarehouseValidator construye el validador.
func NewWarehouseValidator() *WarehouseValidator {
	return &WarehouseValidator{validate: validator.New()}
}

// ValidateCreate valida el cuerpo de POST /api/warehouses.
func (v *WarehouseValidator) ValidateCreate(p Payload) (dto.WarehouseInput, error) {
	return v.check(p)
}

// ValidateUpdate valida el cuerpo de PUT /api/warehouses/{id}; además rechaza la clave id.
func (v *WarehouseValidator) ValidateUpdate(p Payload) (dto.WarehouseInput, error) {
	in, err := v.check(p)
	if err != nil {
		return dto.WarehouseInput{}, err
	}
	if err := rejectID(p); err != nil {
		return dto.WarehouseInput{}, err
	}
	return in, nil
}

func (v *WarehouseValidator) check(p Payload) (dto.WarehouseInput, error) {
	if err := warehouseSchema.checkPresence(p); err != nil {
		return dto.WarehouseInput{}, err
	}

	values := make(map[string]string, len(warehouseSchema.required))
	for _, name := range warehouseSchema.required {
		s, err := stringField(p, name)
		if err != nil {
			return dto.WarehouseInput{}, err
		}
		values[name] = s
	}

	if len(nonDigits.ReplaceAllString(values["contact_phone"], "")) != PhoneDigits {
		return dto.WarehouseInput{}, domain.NewValidationError(MsgInvalidPhone)
	}
	if err := v.validate.Var(values["contact_email"], "required,email"); err != nil {
		return dto.WarehouseInput{}, domain.NewValidationError(MsgInvalidEmail)
	}

	return dto.WarehouseInput{
		WarehouseName:   values["warehouse_name"],
		Address:         values["address"],
		City:            values["city"],
		Country:         values["country"],
		ContactName:     values["contact_name"],
		ContactPosition: values["contact_position"],
		ContactPhone:    values["contact_phone"],
		ContactEmail:    values["contact_email"],
	}, nil
}
