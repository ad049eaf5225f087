package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gastrostock/gastrostock-api/internal/application/dto"
	"github.com/gastrostock/gastrostock-api/internal/domain"
)

// respondError traduce los errores de dominio al contrato HTTP. Los fallos de
// infraestructura se colapsan en un mensaje genérico: la causa queda en logs,
// no en la respuesta.
func respondError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock insuficiente: disponible %s, solicitado %s",
				insufficient.Available.String(), insufficient.Requested.String()),
		})
	}
	switch {
	case errors.Is(err, domain.ErrNegativeStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "NEGATIVE_STOCK", Message: "el stock no puede ser negativo"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrBackendUnavailable):
		log.Error().Err(err).Str("ruta", c.Path()).Msg("fallo del almacén de datos")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "BACKEND_UNAVAILABLE", Message: "almacén de datos no disponible"})
	}
	log.Error().Err(err).Str("ruta", c.Path()).Msg("error no clasificado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "error interno"})
}
