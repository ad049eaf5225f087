package repository

import (
	"context"
	"time"

	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
)

// MovementRepository historial append-only de movimientos de stock.
// No existe Update ni Delete: las correcciones se registran como movimientos
// compensatorios (ver ReverseMovement en el caso de uso).
type MovementRepository interface {
	// Create persiste el movimiento con ID y timestamp del servidor.
	// No muta stock: la mutación y el registro van juntos en una transacción
	// orquestada por el caso de uso.
	Create(ctx context.Context, m *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	// ListByProduct movimientos de un producto en una partición, más reciente primero.
	ListByProduct(ctx context.Context, productID, partition string, limit int) ([]*entity.Movement, error)
	ListByLocation(ctx context.Context, locationID string, limit int) ([]*entity.Movement, error)
	ListByType(ctx context.Context, movementType string, limit int) ([]*entity.Movement, error)
	// Recent movimientos desde el umbral dado, más reciente primero.
	// Es el conjunto de trabajo de dashboards y reportes.
	Recent(ctx context.Context, since time.Time) ([]*entity.Movement, error)
}
