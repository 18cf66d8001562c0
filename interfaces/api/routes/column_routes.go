package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupColumnRoutes(api fiber.Router, h *handlers.Handlers) {
	columns := api.Group("/columns")

	columns.Put("/:id", h.ColumnHandler.Update)
	columns.Put("/:id/move", h.ColumnHandler.Move)
	columns.Delete("/:id", h.ColumnHandler.Delete)

	// Tasks are created and listed in column scope.
	columns.Get("/:columnId/tasks", h.TaskHandler.ListByColumn)
	columns.Post("/:columnId/tasks", h.TaskHandler.Create)
}
