package repository

import (
	"context"

	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
)

// LocationRepository acceso a la tabla negocios.
type LocationRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*entity.Location, error)
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	Create(ctx context.Context, l *entity.Location) error
	Update(ctx context.Context, l *entity.Location) error
	// SoftDelete marca activo=false. La cascada sobre inventario_detallado
	// la orquesta el caso de uso dentro de una transacción.
	SoftDelete(ctx context.Context, id string) error
}
