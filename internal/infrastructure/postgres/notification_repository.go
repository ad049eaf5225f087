package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gastrostock/gastrostock-api/internal/domain"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
	"github.com/gastrostock/gastrostock-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo acceso a la tabla notificaciones.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create inserta una notificación con ID y timestamp de servidor.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO notificaciones (id, titulo, mensaje, tipo, destinatario, leida, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, n.ID, n.Title, n.Message, n.Type, n.Recipient, n.Read, n.CreatedAt)
	if err != nil {
		return domain.WrapBackend("insert notificación", err)
	}
	return nil
}

// ListUnread notificaciones no leídas del destinatario más las de difusión.
func (r *NotificationRepo) ListUnread(ctx context.Context, recipient string, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, titulo, mensaje, tipo, destinatario, leida, fecha_creacion
		FROM notificaciones
		WHERE leida = false AND (destinatario = $1 OR destinatario = '')
		ORDER BY fecha_creacion DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, recipient, limit)
	if err != nil {
		return nil, domain.WrapBackend("list notificaciones", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.Recipient, &n.Read, &n.CreatedAt); err != nil {
			return nil, domain.WrapBackend("scan notificación", err)
		}
		list = append(list, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapBackend("rows notificaciones", err)
	}
	return list, nil
}

// MarkRead marca una notificación como leída.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE notificaciones SET leida = true WHERE id = $1`, id)
	if err != nil {
		return domain.WrapBackend("marcar notificación leída", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
