package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para registrar entrada, salida o ajuste.
// Cantidad: magnitud positiva para entrada/salida; con signo para ajuste.
type RegisterMovementRequest struct {
	ProductID string           `json:"producto_id"`
	Partition string           `json:"inventario"` // general | detallado
	Type      string           `json:"tipo"`       // entrada | salida | ajuste
	Quantity  decimal.Decimal  `json:"cantidad"`
	Unit      string           `json:"unidad,omitempty"`
	UnitPrice *decimal.Decimal `json:"precio_unitario,omitempty"`
	Reason    string           `json:"motivo,omitempty"`
	Reference string           `json:"referencia,omitempty"`
}

// ReverseMovementRequest body para registrar la reversa de un movimiento.
type ReverseMovementRequest struct {
	Reason string `json:"motivo,omitempty"`
}

// MovementResponse representación de un movimiento, enriquecida con el nombre
// del producto cuando está disponible en el caché de consulta.
type MovementResponse struct {
	ID          string           `json:"id"`
	Type        string           `json:"tipo"`
	ProductID   string           `json:"producto_id"`
	ProductName string           `json:"producto_nombre,omitempty"`
	Partition   string           `json:"inventario"`
	NegocioID   string           `json:"negocio_id,omitempty"`
	Transaction string           `json:"transaccion_id,omitempty"`
	Quantity    decimal.Decimal  `json:"cantidad"`
	Unit        string           `json:"unidad,omitempty"`
	UnitPrice   *decimal.Decimal `json:"precio_unitario,omitempty"`
	Total       *decimal.Decimal `json:"total,omitempty"`
	Reason      string           `json:"motivo,omitempty"`
	Reference   string           `json:"referencia,omitempty"`
	CreatedAt   time.Time        `json:"fecha_creacion"`
}

// TransferRequest body para trasladar stock del inventario general al
// detallado de un negocio.
type TransferRequest struct {
	NegocioID        string          `json:"negocio_id"`
	GeneralProductID string          `json:"producto_general_id"`
	Quantity         decimal.Decimal `json:"cantidad"`
	MinStock         decimal.Decimal `json:"stock_minimo"`
}
