package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type TaskService interface {
	Create(ctx context.Context, userID, columnID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	ListByColumn(ctx context.Context, userID, columnID uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	// Move relocates a task to destColumnID at destIndex and returns the
	// moved task plus the destination column's tasks renumbered to
	// sequential order.
	Move(ctx context.Context, userID, id, destColumnID uuid.UUID, destIndex int) (*models.Task, []*models.Task, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
