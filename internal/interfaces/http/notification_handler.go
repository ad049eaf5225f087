package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gastrostock/gastrostock-api/internal/application/usecase"
)

// NotificationHandler canal lateral de notificaciones (protegido).
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListUnread godoc
// @Summary      Notificaciones no leídas
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(50)
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notificaciones [get]
func (h *NotificationHandler) ListUnread(c *fiber.Ctx) error {
	out, err := h.uc.ListUnread(c.Context(), GetEmail(c), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar notificación como leída
// @Tags         notificaciones
// @Security     Bearer
// @Param        id   path  string  true  "ID de la notificación"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/notificaciones/{id}/leida [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
