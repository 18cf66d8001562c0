package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupBoardRoutes(api fiber.Router, h *handlers.Handlers) {
	boards := api.Group("/boards")

	boards.Post("/", h.BoardHandler.Create)
	boards.Get("/", h.BoardHandler.List)
	boards.Get("/:id", h.BoardHandler.GetByID)
	boards.Put("/:id", h.BoardHandler.Update)
	boards.Delete("/:id", h.BoardHandler.Delete)

	// Columns are created and listed in board scope.
	boards.Get("/:boardId/columns", h.ColumnHandler.ListByBoard)
	boards.Post("/:boardId/columns", h.ColumnHandler.Create)
}
