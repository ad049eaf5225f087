package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gastrostock/gastrostock-api/internal/application/dto"
	"github.com/gastrostock/gastrostock-api/internal/application/inventory"
	"github.com/gastrostock/gastrostock-api/internal/domain/entity"
)

// InventoryHandler operaciones de stock, movimientos y traslados (protegido).
type InventoryHandler struct {
	stockUC    *inventory.StockUseCase
	movementUC *inventory.MovementUseCase
	transferUC *inventory.TransferUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stockUC *inventory.StockUseCase, movementUC *inventory.MovementUseCase, transferUC *inventory.TransferUseCase) *InventoryHandler {
	return &InventoryHandler{stockUC: stockUC, movementUC: movementUC, transferUC: transferUC}
}

// SetStock godoc
// @Summary      Fijar stock absoluto
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        inventario  path  string               true  "general | detallado"
// @Param        id          path  string               true  "ID del producto"
// @Param        body        body  dto.SetStockRequest  true  "Nuevo stock"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{inventario}/productos/{id}/stock [put]
func (h *InventoryHandler) SetStock(c *fiber.Ctx) error {
	p, ok := partition(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventario debe ser general o detallado"})
	}
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.stockUC.SetStock(c.Context(), p, c.Params("id"), in.Stock)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(productResponse(product))
}

// Increment godoc
// @Summary      Incrementar stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        inventario  path  string                 true  "general | detallado"
// @Param        id          path  string                 true  "ID del producto"
// @Param        body        body  dto.StockDeltaRequest  true  "Delta (>= 0)"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario/{inventario}/productos/{id}/stock/incrementar [post]
func (h *InventoryHandler) Increment(c *fiber.Ctx) error {
	p, ok := partition(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventario debe ser general o detallado"})
	}
	var in dto.StockDeltaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.stockUC.IncrementStock(c.Context(), p, c.Params("id"), in.Delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(productResponse(product))
}

// Decrement godoc
// @Summary      Decrementar stock (con piso en cero)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        inventario  path  string                 true  "general | detallado"
// @Param        id          path  string                 true  "ID del producto"
// @Param        body        body  dto.StockDeltaRequest  true  "Delta (>= 0)"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario/{inventario}/productos/{id}/stock/decrementar [post]
func (h *InventoryHandler) Decrement(c *fiber.Ctx) error {
	p, ok := partition(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventario debe ser general o detallado"})
	}
	var in dto.StockDeltaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.stockUC.DecrementStock(c.Context(), p, c.Params("id"), in.Delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(productResponse(product))
}

// RegisterMovement godoc
// @Summary      Registrar entrada, salida o ajuste
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := inventory.MovementInput{
		ProductID: in.ProductID,
		Partition: in.Partition,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		UnitPrice: in.UnitPrice,
		Reason:    in.Reason,
		Reference: in.Reference,
		UserID:    GetUserID(c),
	}

	var err error
	var m *entity.Movement
	switch in.Type {
	case entity.MovementTypeEntry:
		m, err = h.movementUC.RegisterEntry(c.Context(), input)
	case entity.MovementTypeExit:
		m, err = h.movementUC.RegisterExit(c.Context(), input)
	case entity.MovementTypeAdjustment:
		m, err = h.movementUC.RegisterAdjustment(c.Context(), input)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser entrada, salida o ajuste"})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movementResponse(m))
}

// ReverseMovement godoc
// @Summary      Revertir un movimiento (compensación)
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true   "ID del movimiento original"
// @Param        body  body  dto.ReverseMovementRequest  false  "Motivo"
// @Success      201  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id}/revertir [post]
func (h *InventoryHandler) ReverseMovement(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ReverseMovementRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.movementUC.ReverseMovement(c.Context(), id, in.Reason, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movementResponse(m))
}

// ListMovements godoc
// @Summary      Historial reciente de movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Ventana en días"  default(30)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movimientos [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.movementUC.Recent(c.Context(), c.QueryInt("dias", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListProductMovements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        inventario  path   string  true   "general | detallado"
// @Param        id          path   string  true   "ID del producto"
// @Param        limit       query  int     false  "Límite"  default(50)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventario/{inventario}/productos/{id}/movimientos [get]
func (h *InventoryHandler) ListProductMovements(c *fiber.Ctx) error {
	p, ok := partition(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventario debe ser general o detallado"})
	}
	out, err := h.movementUC.ListByProduct(c.Context(), c.Params("id"), p, c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListLocationMovements godoc
// @Summary      Historial de movimientos de un negocio
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del negocio"
// @Param        limit  query  int     false  "Límite"  default(50)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/negocios/{id}/movimientos [get]
func (h *InventoryHandler) ListLocationMovements(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.movementUC.ListByLocation(c.Context(), id, c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Trasladar stock del inventario general a un negocio
// @Tags         traslados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Traslado"
// @Success      201  {object}  dto.ProductResponse  "Producto detallado creado"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/traslados [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.transferUC.Transfer(c.Context(), inventory.TransferInput{
		LocationID:       in.NegocioID,
		GeneralProductID: in.GeneralProductID,
		Quantity:         in.Quantity,
		MinStock:         in.MinStock,
		UserID:           GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(productResponse(result.Detailed))
}
