package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `gorm:"not null"`
	Description string
	ColumnID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Priority    string    `gorm:"size:10;default:'medium';check:priority IN ('low','medium','high')"`
	DueDate     *time.Time
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	Creator     User       `gorm:"foreignKey:CreatedBy"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid"`
	Assignee    *User      `gorm:"foreignKey:AssignedTo"`
	Order       int        `gorm:"column:sort_order;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}
