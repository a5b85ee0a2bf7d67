package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInternal     = errors.New("error interno")
)

// ValidationError rechazo de la entrada del cliente (400). Message se devuelve tal cual.
type ValidationError struct {
	Message string
}

// NewValidationError construye un ValidationError con el mensaje dado.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NotFoundError el id referenciado no existe (404).
type NotFoundError struct {
	Message string
}

// NewNotFoundError construye un NotFoundError con el mensaje dado.
func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

func (e *NotFoundError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InternalError fallo del store o inesperado (500). Cause se registra en el log, nunca se expone.
type InternalError struct {
	Message string
	Cause   error
}

// NewInternalError envuelve cause con un mensaje seguro para el cliente.
func NewInternalError(msg string, cause error) *InternalError {
	return &InternalError{Message: msg, Cause: cause}
}

func (e *InternalError) Error() string { return e.Message }

func (e *InternalError) Unwrap() error { return e.Cause }

// Is permite errors.Is(err, ErrInternal).
func (e *InternalError) Is(target error) bool { return target == ErrInternal }
