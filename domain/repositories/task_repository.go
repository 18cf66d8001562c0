package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	// ListByColumn returns the column's tasks sorted by sort_order
	// ascending, with creator and assignee preloaded for display fields.
	ListByColumn(ctx context.Context, columnID uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	// UpdateMany rewrites column_id and sort_order for a renumbered
	// sibling set in one transaction.
	UpdateMany(ctx context.Context, tasks []*models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteOrphans removes tasks whose column no longer exists and
	// reports how many rows went away.
	DeleteOrphans(ctx context.Context) (int64, error)
}
