package dto

import (
	"time"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

// === Requests ===

type CreateColumnRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

type UpdateColumnRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=200"`
	Order *int    `json:"order" validate:"omitempty,gte=0"`
}

type MoveColumnRequest struct {
	DestIndex *int `json:"destIndex" validate:"required,gte=0"`
}

// === Responses ===

type ColumnResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	BoardID   uuid.UUID `json:"boardId"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MoveColumnResponse returns the board's full column list after the
// sequential renumber so clients can adopt it wholesale.
type MoveColumnResponse struct {
	Columns []ColumnResponse `json:"columns"`
}

// === Mappers ===

func ColumnToColumnResponse(column *models.Column) *ColumnResponse {
	if column == nil {
		return nil
	}
	return &ColumnResponse{
		ID:        column.ID,
		Title:     column.Title,
		BoardID:   column.BoardID,
		Order:     column.Order,
		CreatedAt: column.CreatedAt,
		UpdatedAt: column.UpdatedAt,
	}
}

func ColumnsToColumnResponses(columns []*models.Column) []ColumnResponse {
	responses := make([]ColumnResponse, len(columns))
	for i, column := range columns {
		responses[i] = *ColumnToColumnResponse(column)
	}
	return responses
}
