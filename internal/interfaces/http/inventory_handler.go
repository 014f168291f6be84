package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/application/usecase"
	"github.com/jhoicas/instock-api/pkg/logger"
)

const inventoryNotFound = "Inventory item not found."

// InventoryHandler maneja las peticiones HTTP de artículos de inventario.
type InventoryHandler struct {
	uc  *usecase.InventoryUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar artículos
// @Tags         inventories
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventories [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, inventoryNotFound)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         inventories
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err, inventoryNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear artículo
// @Description  Valida en orden: campos obligatorios, bodega existente, cantidad numérica >= 0.
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventories [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.InventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, inventoryNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo
// @Tags         inventories
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID del artículo"
// @Param        body  body  dto.InventoryRequest  true  "Datos del artículo"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.InventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err, inventoryNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         inventories
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err, inventoryNotFound)
	}
	return c.JSON(dto.MessageResponse{Message: "Item deleted successfully"})
}

// Search godoc
// @Summary      Buscar artículos
// @Tags         inventories
// @Produce      json
// @Param        s    path  string  true  "Texto a buscar en nombre, categoría, cantidad o bodega"
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventories/match/{s} [get]
func (h *InventoryHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), pathParam(c, "s"))
	if err != nil {
		return respondError(c, h.log, err, inventoryNotFound)
	}
	return c.JSON(out)
}

// ListSorted godoc
// @Summary      Listar artículos ordenados
// @Tags         inventories
// @Produce      json
// @Param        column  path  string  true  "Columna permitida"
// @Param        order   path  string  true  "asc | desc"
// @Success      200  {array}   dto.InventoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventories/sortBy/{column}/{order} [get]
func (h *InventoryHandler) ListSorted(c *fiber.Ctx) error {
	out, err := h.uc.ListSorted(c.UserContext(), c.Params("column"), c.Params("order"))
	if err != nil {
		return respondError(c, h.log, err, inventoryNotFound)
	}
	return c.JSON(out)
}
