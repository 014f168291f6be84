package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// Mensajes de validación expuestos al cliente.
const (
	MsgMissingData        = "Please provide missing data"
	MsgInvalidWarehouseID = "Invalid warehouse id"
	MsgInvalidQuantity    = "Quantity value must be a valid number"
	MsgInvalidSortColumn  = "Invalid sort column"
	MsgInvalidSortOrder   = "Invalid sort order"
)

// ValidationError error de entrada corregible por el cliente (HTTP 400).
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Message string
}

// NewValidationError construye un ValidationError con el mensaje dado.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }
