package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")

	tasks.Put("/:id", h.TaskHandler.Update)
	tasks.Put("/:id/move", h.TaskHandler.Move)
	tasks.Delete("/:id", h.TaskHandler.Delete)
}
