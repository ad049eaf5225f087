package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Particiones de inventario. El inventario general es el catálogo central;
// el detallado es el stock por negocio (sucursal).
const (
	PartitionGeneral  = "general"
	PartitionDetailed = "detallado"
)

// Product representa un producto en cualquiera de las dos particiones.
// Stock y MinStock son cantidades decimales no negativas; Status es una vista
// materializada de (Stock, MinStock) que todo escritor de stock debe mantener
// sincronizada (ver DeriveStatus).
//
// LocationID y SourceID solo aplican al inventario detallado: LocationID es el
// negocio dueño del registro y SourceID el producto general de origen cuando el
// registro nació de un traslado.
type Product struct {
	ID         string
	Name       string
	Category   string
	Unit       string // unidad de medida libre: kg, lt, unidad...
	Stock      decimal.Decimal
	MinStock   decimal.Decimal
	Price      decimal.Decimal // precio unitario de venta, moneda única
	Status     Status
	ImageURL   string
	Active     bool // borrado lógico: false = eliminado
	LocationID *string
	SourceID   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProductPatch actualización parcial explícita de los campos descriptivos.
// Stock nunca se toca por esta vía: solo mediante las operaciones de stock,
// que recalculan el estado. Status solo admite "medio" (curaduría manual);
// cualquier otro valor se rechaza en el caso de uso.
type ProductPatch struct {
	Name     *string
	Category *string
	Unit     *string
	MinStock *decimal.Decimal
	Price    *decimal.Decimal
	Status   *Status
	ImageURL *string
}

// Empty indica si el patch no modifica ningún campo.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Unit == nil &&
		p.MinStock == nil && p.Price == nil && p.Status == nil && p.ImageURL == nil
}
