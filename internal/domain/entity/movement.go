package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento. Un traslado no es un tipo propio: se registra como un
// par salida(general) + entrada(detallado) que comparten TransactionID.
const (
	MovementTypeEntry      = "entrada"
	MovementTypeExit       = "salida"
	MovementTypeAdjustment = "ajuste"
)

// Movement registro inmutable de un evento que afecta stock.
// Convención de signo: entrada y salida llevan magnitud positiva (la dirección
// la da el tipo); ajuste lleva cantidad con signo explícito (corrección).
//
// Las correcciones no editan ni borran movimientos: se registra un movimiento
// compensatorio con Reference apuntando al original (ver ReverseMovement).
type Movement struct {
	ID            string
	Type          string // entrada | salida | ajuste
	ProductID     string
	Partition     string // general | detallado
	LocationID    *string
	TransactionID string // agrupa las dos piernas de un traslado
	Quantity      decimal.Decimal
	Unit          string
	UnitPrice     *decimal.Decimal
	Total         *decimal.Decimal
	Reason        string
	Reference     string // documento externo o ID del movimiento compensado
	UserID        *string
	CreatedAt     time.Time
}

// SignedQuantity devuelve el efecto del movimiento sobre el stock:
// positivo para entradas, negativo para salidas, con signo propio en ajustes.
func (m *Movement) SignedQuantity() decimal.Decimal {
	switch m.Type {
	case MovementTypeEntry:
		return m.Quantity.Abs()
	case MovementTypeExit:
		return m.Quantity.Abs().Neg()
	default:
		return m.Quantity
	}
}

// ValidMovementType indica si t es un tipo de movimiento reconocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntry || t == MovementTypeExit || t == MovementTypeAdjustment
}
