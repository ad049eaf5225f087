package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
)

// ProductStore operaciones comunes a las dos particiones de inventario.
// El libro de movimientos trabaja contra esta vista para no duplicar la
// lógica de entrada/salida/ajuste por partición.
type ProductStore interface {
	// GetByID devuelve el producto o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate devuelve el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// SetStock es la única vía sancionada para escribir stock. Persiste el
	// nuevo stock, el estado recalculado y fecha_actualizacion en una sola
	// sentencia. La validación stock >= 0 ocurre antes, en el caso de uso.
	SetStock(ctx context.Context, id string, stock decimal.Decimal, status entity.Status) error
}

// GeneralProductRepository acceso a la partición inventario_general.
type GeneralProductRepository interface {
	ProductStore
	// List devuelve los productos ordenados por nombre ascendente.
	List(ctx context.Context, activeOnly bool) ([]*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	// Update escribe los campos descriptivos y el estado; nunca toca stock.
	Update(ctx context.Context, p *entity.Product) error
	// SoftDelete marca activo=false sin alterar stock ni historial.
	SoftDelete(ctx context.Context, id string) error
}

// DetailedProductRepository acceso a la partición inventario_detallado.
type DetailedProductRepository interface {
	ProductStore
	List(ctx context.Context, activeOnly bool) ([]*entity.Product, error)
	// ListByLocation filtra por negocio dueño, ordenado por nombre ascendente.
	ListByLocation(ctx context.Context, locationID string, activeOnly bool) ([]*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
	SoftDelete(ctx context.Context, id string) error
	// SoftDeleteByLocation desactiva todos los productos de un negocio
	// (cascada del borrado lógico del negocio).
	SoftDeleteByLocation(ctx context.Context, locationID string) error
}
