package http

import (
	"bufio"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ChangeFeed fuente de avisos de cambio del inventario general. La función
// devuelta da de baja al suscriptor; debe llamarse al terminar el stream.
type ChangeFeed interface {
	Subscribe() (<-chan string, func())
}

const heartbeatInterval = 25 * time.Second

// RealtimeHandler expone el feed de cambios como Server-Sent Events.
type RealtimeHandler struct {
	feed ChangeFeed
}

// NewRealtimeHandler construye el handler.
func NewRealtimeHandler(feed ChangeFeed) *RealtimeHandler {
	return &RealtimeHandler{feed: feed}
}

// Stream godoc
// @Summary      Flujo de cambios del inventario general (SSE)
// @Description  Cada evento lleva el payload del NOTIFY. Avisos perdidos se
// @Description  reconcilian releyendo el estado actual, no se reenvían.
// @Tags         tiempo-real
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200
// @Router       /api/inventario/general/eventos [get]
func (h *RealtimeHandler) Stream(c *fiber.Ctx) error {
	sub, unsubscribe := h.feed.Subscribe()

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()
		heartbeat := time.NewTicker(heartbeatInterval)
		defer heartbeat.Stop()
		for {
			select {
			case payload, ok := <-sub:
				if !ok {
					return
				}
				fmt.Fprintf(w, "event: cambio\ndata: %s\n\n", payload)
			case <-heartbeat.C:
				// Comentario SSE para mantener viva la conexión a través de proxies.
				fmt.Fprint(w, ": ping\n\n")
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	})
	return nil
}
