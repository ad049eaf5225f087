package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para crear un producto (general o detallado).
// NegocioID solo aplica al inventario detallado.
type CreateProductRequest struct {
	Name      string          `json:"nombre"`
	Category  string          `json:"categoria"`
	Unit      string          `json:"unidad"`
	Stock     decimal.Decimal `json:"stock"`
	MinStock  decimal.Decimal `json:"stock_minimo"`
	Price     decimal.Decimal `json:"precio"`
	ImageURL  string          `json:"imagen_url,omitempty"`
	NegocioID string          `json:"negocio_id,omitempty"`
}

// UpdateProductRequest actualización parcial con campos opcionales explícitos.
// Stock no aparece: solo se mueve vía operaciones de stock/movimientos.
// Estado solo admite "medio" (curaduría manual).
type UpdateProductRequest struct {
	Name     *string          `json:"nombre,omitempty"`
	Category *string          `json:"categoria,omitempty"`
	Unit     *string          `json:"unidad,omitempty"`
	MinStock *decimal.Decimal `json:"stock_minimo,omitempty"`
	Price    *decimal.Decimal `json:"precio,omitempty"`
	Status   *string          `json:"estado,omitempty"`
	ImageURL *string          `json:"imagen_url,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"nombre"`
	Category  string          `json:"categoria"`
	Unit      string          `json:"unidad"`
	Stock     decimal.Decimal `json:"stock"`
	MinStock  decimal.Decimal `json:"stock_minimo"`
	Price     decimal.Decimal `json:"precio"`
	Status    string          `json:"estado"`
	ImageURL  string          `json:"imagen_url,omitempty"`
	Active    bool            `json:"activo"`
	NegocioID string          `json:"negocio_id,omitempty"`
	SourceID  string          `json:"producto_general_id,omitempty"`
	CreatedAt time.Time       `json:"fecha_creacion"`
	UpdatedAt time.Time       `json:"fecha_actualizacion"`
}

// SetStockRequest body para fijar stock absoluto.
type SetStockRequest struct {
	Stock decimal.Decimal `json:"stock"`
}

// StockDeltaRequest body para incrementar o decrementar stock.
type StockDeltaRequest struct {
	Delta decimal.Decimal `json:"delta"`
}
