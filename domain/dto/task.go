package dto

import (
	"time"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

// === Requests ===

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
}

// UpdateTaskRequest is a partial patch. Nil pointers mean "leave unchanged".
// DueDate and AssignedTo are strings so an explicit empty string can clear
// the field, which a typed pointer cannot distinguish from omitted.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	ColumnID    *string `json:"columnId" validate:"omitempty,uuid"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate"`
	AssignedTo  *string `json:"assignedTo" validate:"omitempty"`
	Order       *int    `json:"order" validate:"omitempty,gte=0"`
}

type MoveTaskRequest struct {
	DestColumnID uuid.UUID `json:"destColumnId" validate:"required"`
	DestIndex    *int      `json:"destIndex" validate:"required,gte=0"`
}

// === Responses ===

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ColumnID    uuid.UUID  `json:"columnId"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedBy   UserRef    `json:"createdBy"`
	AssignedTo  *UserRef   `json:"assignedTo,omitempty"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// MoveTaskResponse carries the moved task and the destination column's
// renumbered sibling list.
type MoveTaskResponse struct {
	Task     TaskResponse   `json:"task"`
	Siblings []TaskResponse `json:"tasks"`
}

// === Mappers ===

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}

	resp := &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		ColumnID:    task.ColumnID,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		CreatedBy:   UserRef{ID: task.CreatedBy, Name: task.Creator.Name},
		Order:       task.Order,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.AssignedTo != nil {
		ref := UserRef{ID: *task.AssignedTo}
		if task.Assignee != nil {
			ref.Name = task.Assignee.Name
		}
		resp.AssignedTo = &ref
	}

	return resp
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}
