// Package validation contiene la compuerta previa a toda escritura: campos requeridos,
// valores no vacíos, tipos/formatos e integridad referencial, en ese orden y cortando en el
// primer fallo.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/instock-api/internal/domain"
)

// Mensajes devueltos al cliente.
const (
	MsgMissingRequired  = "missing required properties"
	MsgQuantityNumber   = "quantity must be a number"
	MsgWarehouseMissing = "warehouse id does not exist"
	MsgInvalidPhone     = "invalid phone number format"
	MsgInvalidEmail     = "invalid email format"
	MsgCannotUpdateID   = "cannot update id"
)

// ErrInvalidBody el cuerpo no es un objeto JSON.
var ErrInvalidBody = errors.New("request body must be a JSON object")

// Payload cuerpo de la petición: nombre de campo → valor. Los números llegan como json.Number.
type Payload map[string]any

// DecodePayload decodifica body como objeto JSON conservando los números como json.Number.
// Un cuerpo vacío equivale a {}.
func DecodePayload(body []byte) (Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Payload{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var p Payload
	if err := dec.Decode(&p); err != nil {
		return nil, ErrInvalidBody
	}
	if p == nil || dec.More() {
		return nil, ErrInvalidBody
	}
	return p, nil
}

// schema campos requeridos de un recurso, declarados estáticamente.
type schema struct {
	required []string
	// allowZero acepta el número 0 como valor presente (cantidades de inventario).
	allowZero bool
}

// checkPresence aplica los dos primeros pasos: claves requeridas y valores no vacíos.
// El segundo paso recorre todas las claves del payload, no solo las requeridas.
func (s schema) checkPresence(p Payload) error {
	for _, name := range s.required {
		if _, ok := p[name]; !ok {
			return domain.NewValidationError(MsgMissingRequired)
		}
	}
	for _, v := range p {
		if !truthy(v, s.allowZero) {
			return domain.NewValidationError(MsgMissingRequired)
		}
	}
	return nil
}

// truthy: nil, "", false y el cero numérico son vacíos; objetos y arreglos cuentan como presentes.
func truthy(v any, allowZero bool) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return true
		}
		return allowZero || !d.IsZero()
	default:
		return true
	}
}

// stringField devuelve p[name] si es string.
func stringField(p Payload, name string) (string, error) {
	s, ok := p[name].(string)
	if !ok {
		return "", domain.NewValidationError(name + " must be a string")
	}
	return s, nil
}

// numberField interpreta p[name] como número: json.Number o string numérico (con espacios alrededor).
func numberField(p Payload, name string) (decimal.Decimal, bool) {
	switch x := p[name].(type) {
	case json.Number:
		return ParseQuantity(x.String())
	case string:
		return ParseQuantity(strings.TrimSpace(x))
	default:
		return decimal.Zero, false
	}
}

// Rango de inventories.quantity: NUMERIC(20,4).
const (
	QuantityIntDigits = 16
	QuantityScale     = 4
)

var quantityLimit = decimal.New(1, QuantityIntDigits)

// ParseQuantity parsea s y exige que quepa en la columna: |q| < 10^16 con a lo sumo 4 decimales.
// Los límites de exponente y de bits se comprueban antes de cualquier operación que escale el valor.
func ParseQuantity(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if d.IsZero() {
		return decimal.Zero, true
	}
	exp := d.Exponent()
	if exp > QuantityIntDigits || exp < -64 || d.Coefficient().BitLen() > 192 {
		return decimal.Zero, false
	}
	if d.Abs().GreaterThanOrEqual(quantityLimit) || !d.Equal(d.Truncate(QuantityScale)) {
		return decimal.Zero, false
	}
	return d, true
}

// rejectID último paso de una actualización: el id no se puede enviar, sea cual sea su valor.
func rejectID(p Payload) error {
	if _, ok := p["id"]; ok {
		return domain.NewValidationError(MsgCannotUpdateID)
	}
	return nil
}
