package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/errs"
	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
	owners   *OwnershipResolver
	events   ports.EventPublisher
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	owners *OwnershipResolver,
	events ports.EventPublisher,
) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
		owners:   owners,
		events:   events,
	}
}

func (s *TaskServiceImpl) Create(ctx context.Context, userID, columnID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	board, err := s.owners.BoardForColumn(ctx, columnID)
	if err != nil {
		return nil, err
	}
	if err := s.owners.RequireOwner(board, userID); err != nil {
		return nil, errNotOwner(ctx, "column", columnID, userID)
	}

	// Fresh sibling read; new tasks always append to the bottom.
	siblings, err := s.taskRepo.ListByColumn(ctx, columnID)
	if err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ColumnID:    columnID,
		Priority:    priority,
		DueDate:     req.DueDate,
		CreatedBy:   userID,
		AssignedTo:  req.AssignedTo,
		Order:       nextOrder(taskOrders(siblings)),
		CreatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "column_id", columnID, "error", err)
		return nil, err
	}

	// Reload so creator and assignee display fields are populated.
	created, err := s.taskRepo.GetByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.events, &ports.BoardEvent{
		Type:     ports.EventTaskCreated,
		BoardID:  board.ID,
		EntityID: created.ID,
		Payload:  dto.TaskToTaskResponse(created),
	})

	logger.InfoContext(ctx, "Task created", "task_id", created.ID, "column_id", columnID, "order", created.Order)
	return created, nil
}

func (s *TaskServiceImpl) ListByColumn(ctx context.Context, userID, columnID uuid.UUID) ([]*models.Task, error) {
	board, err := s.owners.BoardForColumn(ctx, columnID)
	if err != nil {
		return nil, err
	}
	if err := s.owners.RequireOwner(board, userID); err != nil {
		return nil, errNotOwner(ctx, "column", columnID, userID)
	}

	return s.taskRepo.ListByColumn(ctx, columnID)
}

func (s *TaskServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	board, err := s.owners.BoardForColumn(ctx, task.ColumnID)
	if err != nil {
		return nil, err
	}
	if err := s.owners.RequireOwner(board, userID); err != nil {
		return nil, errNotOwner(ctx, "task", id, userID)
	}

	if req.ColumnID != nil {
		destID, parseErr := uuid.Parse(*req.ColumnID)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: columnId must be a valid id", errs.ErrValidation)
		}
		if destID != task.ColumnID {
			// Re-homing crosses chains: the destination column's board
			// must also belong to the requester.
			destBoard, err := s.owners.BoardForColumn(ctx, destID)
			if err != nil {
				return nil, err
			}
			if err := s.owners.RequireOwner(destBoard, userID); err != nil {
				return nil, errNotOwner(ctx, "column", destID, userID)
			}
			task.ColumnID = destID
		}
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Order != nil {
		task.Order = *req.Order
	}

	// Empty string is an explicit clear, not an omission.
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			due, parseErr := time.Parse(time.RFC3339, *req.DueDate)
			if parseErr != nil {
				return nil, fmt.Errorf("%w: dueDate must be RFC 3339", errs.ErrValidation)
			}
			task.DueDate = &due
		}
	}
	if req.AssignedTo != nil {
		if *req.AssignedTo == "" {
			task.AssignedTo = nil
			task.Assignee = nil
		} else {
			assigneeID, parseErr := uuid.Parse(*req.AssignedTo)
			if parseErr != nil {
				return nil, fmt.Errorf("%w: assignedTo must be a valid id", errs.ErrValidation)
			}
			if _, err := s.userRepo.GetByID(ctx, assigneeID); err != nil {
				return nil, err
			}
			task.AssignedTo = &assigneeID
		}
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}

	updated, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.events, &ports.BoardEvent{
		Type:     ports.EventTaskUpdated,
		BoardID:  board.ID,
		EntityID: updated.ID,
		Payload:  dto.TaskToTaskResponse(updated),
	})

	logger.InfoContext(ctx, "Task updated", "task_id", id)
	return updated, nil
}

// Move relocates a task into destColumnID at destIndex. Ownership is checked
// against the current column's board first, then against the destination's
// board when it differs. The destination sibling set is renumbered to
// sequential 0..n-1 in one transaction so the requested index holds exactly.
func (s *TaskServiceImpl) Move(ctx context.Context, userID, id, destColumnID uuid.UUID, destIndex int) (*models.Task, []*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	srcBoard, err := s.owners.BoardForColumn(ctx, task.ColumnID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.owners.RequireOwner(srcBoard, userID); err != nil {
		return nil, nil, errNotOwner(ctx, "task", id, userID)
	}

	boardID := srcBoard.ID
	if destColumnID != task.ColumnID {
		destBoard, err := s.owners.BoardForColumn(ctx, destColumnID)
		if err != nil {
			return nil, nil, err
		}
		if err := s.owners.RequireOwner(destBoard, userID); err != nil {
			return nil, nil, errNotOwner(ctx, "column", destColumnID, userID)
		}
		boardID = destBoard.ID
	}

	siblings, err := s.taskRepo.ListByColumn(ctx, destColumnID)
	if err != nil {
		return nil, nil, err
	}

	// Same-column moves: take the task out before reinserting.
	reordered := make([]*models.Task, 0, len(siblings)+1)
	for _, sib := range siblings {
		if sib.ID != task.ID {
			reordered = append(reordered, sib)
		}
	}

	task.ColumnID = destColumnID
	idx := clampIndex(destIndex, len(reordered))
	reordered = append(reordered[:idx], append([]*models.Task{task}, reordered[idx:]...)...)
	for i := range reordered {
		reordered[i].Order = i
	}

	if err := s.taskRepo.UpdateMany(ctx, reordered); err != nil {
		logger.ErrorContext(ctx, "Failed to move task", "task_id", id, "dest_column_id", destColumnID, "error", err)
		return nil, nil, err
	}

	publishEvent(ctx, s.events, &ports.BoardEvent{
		Type:     ports.EventTaskMoved,
		BoardID:  boardID,
		EntityID: task.ID,
		Payload: dto.MoveTaskResponse{
			Task:     *dto.TaskToTaskResponse(task),
			Siblings: dto.TasksToTaskResponses(reordered),
		},
	})

	logger.InfoContext(ctx, "Task moved",
		"task_id", id,
		"dest_column_id", destColumnID,
		"dest_index", idx,
	)
	return task, reordered, nil
}

func (s *TaskServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	board, err := s.owners.BoardForColumn(ctx, task.ColumnID)
	if err != nil {
		return err
	}
	if err := s.owners.RequireOwner(board, userID); err != nil {
		return errNotOwner(ctx, "task", id, userID)
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return err
	}

	publishEvent(ctx, s.events, &ports.BoardEvent{
		Type:     ports.EventTaskDeleted,
		BoardID:  board.ID,
		EntityID: id,
	})

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	return nil
}
