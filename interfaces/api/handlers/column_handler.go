package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type ColumnHandler struct {
	columnService services.ColumnService
}

func NewColumnHandler(columnService services.ColumnService) *ColumnHandler {
	return &ColumnHandler{
		columnService: columnService,
	}
}

// Create adds a column at the end of the board's column list.
func (h *ColumnHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	boardID, err := uuid.Parse(c.Params("boardId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid board ID")
	}

	var req dto.CreateColumnRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	column, err := h.columnService.Create(ctx, user.ID, boardID, &req)
	if err != nil {
		return translateError(c, err)
	}

	return utils.CreatedResponse(c, dto.ColumnToColumnResponse(column))
}

// ListByBoard returns the board's columns sorted by order.
func (h *ColumnHandler) ListByBoard(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	boardID, err := uuid.Parse(c.Params("boardId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid board ID")
	}

	columns, err := h.columnService.ListByBoard(ctx, user.ID, boardID)
	if err != nil {
		return translateError(c, err)
	}

	return utils.SuccessResponse(c, dto.ColumnsToColumnResponses(columns))
}

func (h *ColumnHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid column ID")
	}

	var req dto.UpdateColumnRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	column, err := h.columnService.Update(ctx, user.ID, id, &req)
	if err != nil {
		return translateError(c, err)
	}

	return utils.SuccessResponse(c, dto.ColumnToColumnResponse(column))
}

// Move repositions a column and returns the board's renumbered column list.
func (h *ColumnHandler) Move(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid column ID")
	}

	var req dto.MoveColumnRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	columns, err := h.columnService.Move(ctx, user.ID, id, *req.DestIndex)
	if err != nil {
		return translateError(c, err)
	}

	return utils.SuccessResponse(c, dto.MoveColumnResponse{
		Columns: dto.ColumnsToColumnResponses(columns),
	})
}

func (h *ColumnHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid column ID")
	}

	if err := h.columnService.Delete(ctx, user.ID, id); err != nil {
		return translateError(c, err)
	}

	return utils.SuccessResponse(c, dto.DeleteResponse{ID: id})
}
