package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrBackendUnavailable = errors.New("almacén de datos no disponible")
)

// ErrNegativeStock es una forma de entrada inválida: conserva su mensaje
// dedicado pero errors.Is(err, ErrInvalidInput) también lo reconoce.
var ErrNegativeStock = fmt.Errorf("el stock no puede ser negativo: %w", ErrInvalidInput)

// InsufficientStockError lleva la cantidad disponible para el mensaje al usuario.
// Envuelve ErrInsufficientStock: errors.Is(err, ErrInsufficientStock) sigue funcionando.
type InsufficientStockError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %s, solicitado %s",
		e.Available.String(), e.Requested.String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// NewInsufficientStock construye el error con las cantidades involucradas.
func NewInsufficientStock(available, requested decimal.Decimal) error {
	return &InsufficientStockError{Available: available, Requested: requested}
}

// WrapBackend envuelve un fallo del almacén de datos preservando la causa para logs.
// Los handlers colapsan estos errores en un mensaje genérico para el usuario final.
func WrapBackend(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrBackendUnavailable, err)
}
