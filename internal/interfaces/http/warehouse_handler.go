package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/instock-api/internal/application/dto"
	"github.com/jhoicas/instock-api/internal/application/usecase"
	"github.com/jhoicas/instock-api/pkg/logger"
)

const warehouseNotFound = "Warehouse not found"

// WarehouseHandler maneja las peticiones HTTP para Warehouse.
type WarehouseHandler struct {
	uc  *usecase.WarehouseUseCase
	log *logger.Logger
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, log *logger.Logger) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Produce      json
// @Success      200  {array}   dto.WarehouseResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, warehouseNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, warehouseNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Search godoc
// @Summary      Buscar bodegas por subcadena
// @Tags         warehouses
// @Produce      json
// @Param        s    path  string  true  "Texto a buscar"
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/warehouses/match/{s} [get]
func (h *WarehouseHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), pathParam(c, "s"))
	if err != nil {
		return respondError(c, h.log, err, warehouseNotFound)
	}
	return c.JSON(out)
}

// ListSorted godoc
// @Summary      Listar bodegas ordenadas
// @Tags         warehouses
// @Produce      json
// @Param        order   path  string  true  "asc | desc"
// @Param        column  path  string  true  "Columna permitida"
// @Success      200  {array}   dto.WarehouseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/warehouses/sortBy/{order}/{column} [get]
func (h *WarehouseHandler) ListSorted(c *fiber.Ctx) error {
	out, err := h.uc.ListSorted(c.UserContext(), c.Params("column"), c.Params("order"))
	if err != nil {
		return respondError(c, h.log, err, warehouseNotFound)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener bodega por ID
// @Tags         warehouses
// @Produce      json
// @Param        id   path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err, warehouseNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID de la bodega"
// @Param        body  body  dto.WarehouseRequest  true  "Datos de la bodega"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err, warehouseNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar bodega (y sus artículos)
// @Tags         warehouses
// @Produce      json
// @Param        id   path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err, warehouseNotFound)
	}
	return c.JSON(dto.MessageResponse{Message: "Warehouse deleted successfully"})
}

// Inventories godoc
// @Summary      Artículos de una bodega
// @Tags         warehouses
// @Produce      json
// @Param        id   path  int  true  "ID de la bodega"
// @Success      200  {array}   dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/inventories [get]
func (h *WarehouseHandler) Inventories(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.Inventories(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err, warehouseNotFound)
	}
	return c.JSON(out)
}

// pathParam devuelve el parámetro de ruta decodificado (%20 → espacio).
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if s, err := url.PathUnescape(raw); err == nil {
		return s
	}
	return raw
}
