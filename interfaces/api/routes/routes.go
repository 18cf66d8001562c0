package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/domain/services"
	wshub "taskboard/infrastructure/websocket"
	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, hub *wshub.Hub, boards services.BoardService, jwtSecret string) {
	SetupHealthRoutes(app)

	// Everything under /api needs an authenticated identity.
	api := app.Group("/api", middleware.Protected(jwtSecret))

	SetupBoardRoutes(api, h)
	SetupColumnRoutes(api, h)
	SetupTaskRoutes(api, h)
	SetupUserRoutes(api, h)

	// WebSocket routes sit outside the /api group but carry their own
	// token and ownership check.
	SetupWebSocketRoutes(app, hub, boards, jwtSecret)
}
