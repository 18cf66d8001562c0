package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/domain/services"
	wshub "taskboard/infrastructure/websocket"
	ws "taskboard/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, hub *wshub.Hub, boards services.BoardService, jwtSecret string) {
	app.Use("/ws", ws.Upgrade())
	app.Get("/ws/boards/:id", ws.Authorized(boards, jwtSecret), ws.BoardSocket(hub))
}
