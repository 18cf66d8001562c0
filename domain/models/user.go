package models

import (
	"time"

	"github.com/google/uuid"
)

// User rows are owned by the external auth service; this API reads them for
// ownership checks and assignee display, it never writes credentials.
type User struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
