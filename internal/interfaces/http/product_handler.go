package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gastrostock/gastrostock-api/internal/application/dto"
	"github.com/gastrostock/gastrostock-api/internal/application/usecase"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido).
// La partición viene en la ruta: /inventario/general o /inventario/detallado.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// partition valida el parámetro de ruta :inventario.
func partition(c *fiber.Ctx) (string, bool) {
	p := c.Params("inventario")
	if p != entity.PartitionGeneral && p != entity.PartitionDetailed {
		return "", false
	}
	return p, true
}

// List godoc
// @Summary      Listar productos de una partición
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        inventario  path   string  true   "general | detallado"
// @Param        q           query  string  false  "Búsqueda por nombre o categoría (insensible a acentos)"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario/{inventario}/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	p, ok := partition(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventario debe ser general o detallado"})
	}
	if q := c.Query("q"); q != "" {
		out, err := h.uc.Search(c.Context(), p, q)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(c.Context(), p, true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByLocation godoc
// @Summary      Listar productos detallados de un negocio
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/negocios/{id}/productos [get]
func (h *ProductHandler) ListByLocation(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListByLocation(c.Context(), id, true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        inventario  path  string  true  "general | detallado"
// @Param        id          path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{inventario}/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p, ok := partition(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventario debe ser general o detallado"})
	}
	out, err := h.uc.GetByID(c.Context(), p, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        inventario  path  string                    true  "general | detallado"
// @Param        body        body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario/{inventario}/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	p, ok := partition(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventario debe ser general o detallado"})
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), p, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (campos descriptivos; nunca stock)
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        inventario  path  string                    true  "general | detallado"
// @Param        id          path  string                    true  "ID del producto"
// @Param        body        body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{inventario}/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	p, ok := partition(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventario debe ser general o detallado"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), p, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto (borrado lógico)
// @Tags         productos
// @Security     Bearer
// @Param        inventario  path  string  true  "general | detallado"
// @Param        id          path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{inventario}/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	p, ok := partition(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventario debe ser general o detallado"})
	}
	if err := h.uc.Delete(c.Context(), p, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
