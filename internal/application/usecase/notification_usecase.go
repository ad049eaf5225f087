package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gastrostock/gastrostock-api/internal/application/dto"
	"github.com/gastrostock/gastrostock-api/internal/application/inventory"
	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
	"github.com/gastrostock/gastrostock-api/pkg/logger"
)

// Verificación en compilación de que el caso de uso sirve como Notifier del
// motor de inventario.
var _ inventory.Notifier = (*NotificationUseCase)(nil)

// NotificationUseCase canal lateral de notificaciones. Publica eventos de
// inventario (stock bajo, operaciones completadas) y sirve el listado de no
// leídas. Un fallo al publicar se registra en logs y nunca propaga: la
// operación de stock que lo originó ya fue confirmada.
type NotificationUseCase struct {
	repo repository.NotificationRepository
	log  *logger.Logger
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository, log *logger.Logger) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, log: log}
}

// LowStock publica la alerta de stock bajo o agotado de un producto.
func (uc *NotificationUseCase) LowStock(ctx context.Context, p *entity.Product) {
	typ := entity.NotificationAlert
	message := fmt.Sprintf("%s quedó con stock bajo (%s %s, mínimo %s)",
		p.Name, p.Stock.String(), p.Unit, p.MinStock.String())
	if p.Status == entity.StatusOut {
		typ = entity.NotificationCritical
		message = fmt.Sprintf("%s se agotó", p.Name)
	}
	uc.Event(ctx, "Alerta de stock", message, typ)
}

// Event publica una notificación de difusión.
func (uc *NotificationUseCase) Event(ctx context.Context, title, message, typ string) {
	n := &entity.Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		uc.log.Error().Err(err).Str("titulo", title).Msg("no se pudo publicar la notificación")
	}
}

// ListUnread notificaciones no leídas del destinatario (y las de difusión).
func (uc *NotificationUseCase) ListUnread(ctx context.Context, recipient string, limit int) ([]dto.NotificationResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	notifications, err := uc.repo.ListUnread(ctx, recipient, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			Recipient: n.Recipient,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead marca la notificación como leída.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.MarkRead(ctx, id)
}
