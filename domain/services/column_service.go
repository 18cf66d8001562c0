package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type ColumnService interface {
	Create(ctx context.Context, userID, boardID uuid.UUID, req *dto.CreateColumnRequest) (*models.Column, error)
	ListByBoard(ctx context.Context, userID, boardID uuid.UUID) ([]*models.Column, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateColumnRequest) (*models.Column, error)
	// Move repositions a column within its board and returns the board's
	// columns renumbered to sequential order.
	Move(ctx context.Context, userID, id uuid.UUID, destIndex int) ([]*models.Column, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
