package inventory

import (
	"context"

	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// inventario: mutación de stock y registro de movimiento van siempre juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		generalRepo repository.GeneralProductRepository,
		detailedRepo repository.DetailedProductRepository,
		movRepo repository.MovementRepository,
		locRepo repository.LocationRepository,
	) error) error
}

// Notifier publica eventos de inventario en el canal lateral de
// notificaciones. Las implementaciones registran sus propios fallos: una
// notificación perdida nunca revierte una operación de stock ya confirmada.
type Notifier interface {
	LowStock(ctx context.Context, p *entity.Product)
	Event(ctx context.Context, title, message, typ string)
}

// storeFor selecciona el repositorio de la partición indicada.
func storeFor(partition string,
	generalRepo repository.GeneralProductRepository,
	detailedRepo repository.DetailedProductRepository,
) (repository.ProductStore, error) {
	switch partition {
	case entity.PartitionGeneral:
		return generalRepo, nil
	case entity.PartitionDetailed:
		return detailedRepo, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}
