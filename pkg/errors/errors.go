package errors

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, details ...string) *AppError {
	var detail string
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Code:    code,
		Message: message,
		Details: detail,
	}
}

func NewValidationError(message string, details ...string) *AppError {
	return NewAppError(http.StatusBadRequest, message, details...)
}

func NewNotFoundError(resource string) *AppError {
	return NewAppError(http.StatusNotFound, fmt.Sprintf("%s no encontrado", resource))
}

func NewForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message)
}

func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message)
}

func NewInternalError(message string, details ...string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, details...)
}

// NewStockError reports insufficient stock for a named product. It maps to
// 400 like any other validation failure but keeps the product visible to
// the caller.
func NewStockError(producto string) *AppError {
	return NewAppError(http.StatusBadRequest, fmt.Sprintf("Stock insuficiente para %s", producto))
}

var (
	ErrSinNegocio         = NewAppError(http.StatusNotFound, "No tienes un negocio asociado")
	ErrSinLicencia        = NewAppError(http.StatusNotFound, "El negocio no tiene una licencia asignada")
	ErrPedidoNoEncontrado = NewNotFoundError("Pedido")
	ErrEstadoInvalido     = NewValidationError("Estado no válido")
	ErrPedidoSinProductos = NewValidationError("Debe incluir al menos un producto")
)
