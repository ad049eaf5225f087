package entity

import "github.com/shopspring/decimal"

// Status clasifica la suficiencia de stock de un producto frente a su mínimo.
type Status string

// Estados posibles. Se almacenan como texto en la columna estado.
const (
	StatusAvailable Status = "disponible"
	StatusMedium    Status = "medio"
	StatusLow       Status = "bajo"
	StatusOut       Status = "agotado"
)

// DeriveStatus calcula el estado a partir de (stock, stock_minimo).
// Función pura y determinista:
//   - agotado    cuando stock == 0
//   - bajo       cuando 0 < stock <= stock_minimo
//   - disponible en cualquier otro caso
//
// "medio" nunca se deriva: solo se asigna mediante edición explícita del
// producto y cualquier mutación de stock lo recalcula y sobreescribe.
func DeriveStatus(stock, minStock decimal.Decimal) Status {
	if stock.LessThanOrEqual(decimal.Zero) {
		return StatusOut
	}
	if stock.LessThanOrEqual(minStock) {
		return StatusLow
	}
	return StatusAvailable
}

// ValidStatus indica si s es uno de los estados reconocidos.
func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusMedium, StatusLow, StatusOut:
		return true
	}
	return false
}
