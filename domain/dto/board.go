package dto

import (
	"time"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

// === Requests ===

type CreateBoardRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateBoardRequest is a partial patch: nil means "leave unchanged", a
// present empty string is an explicit value.
type UpdateBoardRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// === Responses ===

type BoardResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// === Mappers ===

func BoardToBoardResponse(board *models.Board) *BoardResponse {
	if board == nil {
		return nil
	}
	return &BoardResponse{
		ID:          board.ID,
		Title:       board.Title,
		Description: board.Description,
		OwnerID:     board.OwnerID,
		CreatedAt:   board.CreatedAt,
		UpdatedAt:   board.UpdatedAt,
	}
}

func BoardsToBoardResponses(boards []*models.Board) []BoardResponse {
	responses := make([]BoardResponse, len(boards))
	for i, board := range boards {
		responses[i] = *BoardToBoardResponse(board)
	}
	return responses
}
