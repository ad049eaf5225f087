package entity

import "time"

// Severidades de notificación.
const (
	NotificationInfo     = "info"
	NotificationAlert    = "alerta"
	NotificationCritical = "critica"
)

// Notification evento publicado en el canal lateral de notificaciones
// (stock bajo, operaciones completadas). El núcleo solo publica; la
// presentación decide cómo mostrarlas.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      string // info | alerta | critica
	Recipient string // vacío = difusión
	Read      bool
	CreatedAt time.Time
}
