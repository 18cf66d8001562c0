package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

type BoardRepository interface {
	Create(ctx context.Context, board *models.Board) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Board, error)
	// ListByOwner returns the owner's boards, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Board, error)
	Update(ctx context.Context, board *models.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
}
