package websocket

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"taskboard/domain/errs"
	"taskboard/domain/services"
	wshub "taskboard/infrastructure/websocket"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

// Upgrade gates the websocket endpoint to genuine upgrade requests.
func Upgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// Authorized validates the bearer identity and board ownership before the
// upgrade. Browser websocket dials cannot set headers, so the token is also
// accepted from the token query parameter. Events carry full task payloads,
// so the watcher must pass the same ownership check as the REST routes.
func Authorized(boards services.BoardService, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query("token")
		if token == "" {
			token = utils.ExtractTokenFromHeader(c.Get("Authorization"))
		}

		user, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Websocket token validation failed", "error", err)
			return utils.UnauthorizedResponse(c, "Invalid token")
		}

		boardID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid board ID")
		}

		if _, err := boards.Get(c.UserContext(), user.ID, boardID); err != nil {
			switch {
			case errors.Is(err, errs.ErrNotFound):
				return utils.NotFoundResponse(c, err.Error())
			case errors.Is(err, errs.ErrNotAuthorized):
				return utils.UnauthorizedResponse(c, "Not authorized")
			default:
				return utils.InternalServerErrorResponse(c)
			}
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// BoardSocket streams board events to a client watching one board. Clients
// only listen; the read loop exists to notice the close.
func BoardSocket(hub *wshub.Hub) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		boardID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			c.Close()
			return
		}

		hub.Register(boardID, c)
		defer func() {
			hub.Unregister(boardID, c)
			c.Close()
		}()

		logger.Debug("Board watcher connected", "board_id", boardID)

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	})
}
