package ports

import (
	"context"

	"github.com/google/uuid"
)

// Event types published after successful mutations.
const (
	EventColumnCreated = "column.created"
	EventColumnUpdated = "column.updated"
	EventColumnMoved   = "column.moved"
	EventColumnDeleted = "column.deleted"
	EventTaskCreated   = "task.created"
	EventTaskUpdated   = "task.updated"
	EventTaskMoved     = "task.moved"
	EventTaskDeleted   = "task.deleted"
	EventBoardUpdated  = "board.updated"
	EventBoardDeleted  = "board.deleted"
)

// BoardEvent notifies connected clients that something under a board changed.
// Payload carries the affected entity's response DTO when one exists.
type BoardEvent struct {
	Type     string    `json:"type"`
	BoardID  uuid.UUID `json:"boardId"`
	EntityID uuid.UUID `json:"entityId"`
	Payload  any       `json:"payload,omitempty"`
}

// EventPublisher pushes board events to whatever fan-out backs the live
// board view. Publishing is best-effort; mutations never fail on it.
type EventPublisher interface {
	PublishBoardEvent(ctx context.Context, event *BoardEvent) error
}
