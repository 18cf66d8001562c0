package models

import (
	"time"

	"github.com/google/uuid"
)

// Column ordering uses sort_order because "order" is a reserved word in SQL.
// Values are max+1 at creation, gaps are expected and harmless.
type Column struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title     string    `gorm:"not null"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Order     int       `gorm:"column:sort_order;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Column) TableName() string {
	return "columns"
}
