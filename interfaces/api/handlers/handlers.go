package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskboard/domain/errs"
	"taskboard/domain/services"
	"taskboard/pkg/utils"
)

type Services struct {
	BoardService  services.BoardService
	ColumnService services.ColumnService
	TaskService   services.TaskService
	UserService   services.UserService
}

type Handlers struct {
	BoardHandler  *BoardHandler
	ColumnHandler *ColumnHandler
	TaskHandler   *TaskHandler
	UserHandler   *UserHandler
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		BoardHandler:  NewBoardHandler(s.BoardService),
		ColumnHandler: NewColumnHandler(s.ColumnService),
		TaskHandler:   NewTaskHandler(s.TaskService),
		UserHandler:   NewUserHandler(s.UserService),
	}
}

// translateError maps domain errors to HTTP at the boundary: missing chain
// links → 404, ownership failures → 401, bad values → 400, everything else
// is a storage fault → 500. Nothing is retried.
func translateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, errs.ErrNotAuthorized):
		return utils.UnauthorizedResponse(c, "Not authorized")
	case errors.Is(err, errs.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
