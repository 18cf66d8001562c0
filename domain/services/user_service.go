package services

import (
	"context"

	"taskboard/domain/models"
)

type UserService interface {
	// List returns all users for assignee pickers. Intentionally thin,
	// user lifecycle belongs to the auth service.
	List(ctx context.Context) ([]*models.User, error)
}
