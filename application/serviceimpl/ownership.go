package serviceimpl

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/errs"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/pkg/logger"
)

// EntityKind selects the ownership chain to walk.
type EntityKind string

const (
	KindBoard  EntityKind = "board"
	KindColumn EntityKind = "column"
	KindTask   EntityKind = "task"
)

// OwnershipResolver walks an entity up to its owning board: task → column →
// board, column → board, board → itself. Every link is checked for existence
// before the owner comparison, so a dangling reference surfaces as not-found
// rather than a nil dereference.
type OwnershipResolver struct {
	boardRepo  repositories.BoardRepository
	columnRepo repositories.ColumnRepository
	taskRepo   repositories.TaskRepository
}

func NewOwnershipResolver(
	boardRepo repositories.BoardRepository,
	columnRepo repositories.ColumnRepository,
	taskRepo repositories.TaskRepository,
) *OwnershipResolver {
	return &OwnershipResolver{
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		taskRepo:   taskRepo,
	}
}

// ResolveOwningBoard resolves any entity kind to its owning board.
func (r *OwnershipResolver) ResolveOwningBoard(ctx context.Context, kind EntityKind, id uuid.UUID) (*models.Board, error) {
	switch kind {
	case KindBoard:
		return r.boardRepo.GetByID(ctx, id)
	case KindColumn:
		return r.BoardForColumn(ctx, id)
	case KindTask:
		return r.BoardForTask(ctx, id)
	default:
		return nil, errs.ErrNotFound
	}
}

// BoardForColumn resolves a column's owning board.
func (r *OwnershipResolver) BoardForColumn(ctx context.Context, columnID uuid.UUID) (*models.Board, error) {
	column, err := r.columnRepo.GetByID(ctx, columnID)
	if err != nil {
		return nil, err
	}
	return r.boardRepo.GetByID(ctx, column.BoardID)
}

// BoardForTask resolves a task's owning board through its column.
func (r *OwnershipResolver) BoardForTask(ctx context.Context, taskID uuid.UUID) (*models.Board, error) {
	task, err := r.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return r.BoardForColumn(ctx, task.ColumnID)
}

// RequireOwner rejects a resolved board whose owner is not the requester.
func (r *OwnershipResolver) RequireOwner(board *models.Board, userID uuid.UUID) error {
	if board.OwnerID != userID {
		return errs.ErrNotAuthorized
	}
	return nil
}

// errNotOwner logs a failed ownership check and returns the sentinel.
func errNotOwner(ctx context.Context, kind string, id, userID uuid.UUID) error {
	logger.WarnContext(ctx, "Ownership check failed",
		"entity", kind,
		"entity_id", id,
		"user_id", userID,
	)
	return errs.ErrNotAuthorized
}
