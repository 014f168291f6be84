package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/instock-api/internal/application/usecase"
	"github.com/jhoicas/instock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	InventoryUC *usecase.InventoryUseCase
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
// Las rutas sortBy conservan el orden de argumentos histórico de cada recurso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Logger))

	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Logger)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/match/:s", warehouseHandler.Search)
	warehouses.Get("/sortBy/:order/:column", warehouseHandler.ListSorted)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)
	warehouses.Get("/:id/inventories", warehouseHandler.Inventories)

	inventories := api.Group("/inventories")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Logger)
	inventories.Get("/", inventoryHandler.List)
	inventories.Post("/", inventoryHandler.Create)
	inventories.Get("/match/:s", inventoryHandler.Search)
	inventories.Get("/sortBy/:column/:order", inventoryHandler.ListSorted)
	inventories.Get("/:id", inventoryHandler.GetByID)
	inventories.Put("/:id", inventoryHandler.Update)
	inventories.Delete("/:id", inventoryHandler.Delete)
}
