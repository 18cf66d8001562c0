package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

type ColumnRepository interface {
	Create(ctx context.Context, column *models.Column) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Column, error)
	// ListByBoard returns the board's columns sorted by sort_order ascending.
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]*models.Column, error)
	Update(ctx context.Context, column *models.Column) error
	// UpdateMany rewrites sort_order for a renumbered sibling set in one
	// transaction.
	UpdateMany(ctx context.Context, columns []*models.Column) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteOrphans removes columns whose board no longer exists and
	// reports how many rows went away.
	DeleteOrphans(ctx context.Context) (int64, error)
}
