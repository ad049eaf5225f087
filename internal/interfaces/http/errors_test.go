package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastrostock/gastrostock-api/internal/application/dto"
	"github.com/gastrostock/gastrostock-api/internal/domain"
)

func respondWith(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error { return respondError(c, err) })

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// Caso 1: stock negativo conserva su código dedicado aunque también sea
// entrada inválida.
func TestRespondError_StockNegativo(t *testing.T) {
	status, body := respondWith(t, domain.ErrNegativeStock)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "NEGATIVE_STOCK", body.Code)

	assert.ErrorIs(t, domain.ErrNegativeStock, domain.ErrInvalidInput)
}

// Caso 2: un fallo del almacén responde 503 genérico sin filtrar la causa.
func TestRespondError_FalloDeBackendColapsado(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: conexión rechazada")
	status, body := respondWith(t, domain.WrapBackend("list inventario_general", cause))

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "BACKEND_UNAVAILABLE", body.Code)
	assert.NotContains(t, body.Message, "dial tcp", "la causa va a logs, no al cliente")
}

// Caso 3: stock insuficiente responde 409 con las cantidades involucradas.
func TestRespondError_StockInsuficiente(t *testing.T) {
	err := domain.NewInsufficientStock(decimal.NewFromInt(3), decimal.NewFromInt(10))
	status, body := respondWith(t, err)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Contains(t, body.Message, "disponible 3")
	assert.Contains(t, body.Message, "solicitado 10")
}

// Caso 4: lo no clasificado cae a 500 con mensaje genérico.
func TestRespondError_ErrorNoClasificado(t *testing.T) {
	status, body := respondWith(t, errors.New("algo inesperado"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Message)
}
