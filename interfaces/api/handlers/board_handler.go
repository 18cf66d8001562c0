package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type BoardHandler struct {
	boardService services.BoardService
}

func NewBoardHandler(boardService services.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// Create makes a new board owned by the requester.
func (h *BoardHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.CreateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	board, err := h.boardService.Create(ctx, user.ID, &req)
	if err != nil {
		return translateError(c, err)
	}

	return utils.CreatedResponse(c, dto.BoardToBoardResponse(board))
}

// List returns the requester's boards, newest first.
func (h *BoardHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	boards, err := h.boardService.List(ctx, user.ID)
	if err != nil {
		return translateError(c, err)
	}

	return utils.SuccessResponse(c, dto.BoardsToBoardResponses(boards))
}

func (h *BoardHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid board ID")
	}

	board, err := h.boardService.Get(ctx, user.ID, id)
	if err != nil {
		return translateError(c, err)
	}

	return utils.SuccessResponse(c, dto.BoardToBoardResponse(board))
}

func (h *BoardHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid board ID")
	}

	var req dto.UpdateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	board, err := h.boardService.Update(ctx, user.ID, id, &req)
	if err != nil {
		return translateError(c, err)
	}

	return utils.SuccessResponse(c, dto.BoardToBoardResponse(board))
}

func (h *BoardHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid board ID")
	}

	if err := h.boardService.Delete(ctx, user.ID, id); err != nil {
		return translateError(c, err)
	}

	return utils.SuccessResponse(c, dto.DeleteResponse{ID: id})
}
