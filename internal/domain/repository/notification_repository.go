package repository

import (
	"context"

	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
)

// NotificationRepository canal lateral de eventos para la capa de presentación.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	// ListUnread notificaciones no leídas del destinatario (y las de difusión),
	// más reciente primero.
	ListUnread(ctx context.Context, recipient string, limit int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
