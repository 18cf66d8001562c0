package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type BoardService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateBoardRequest) (*models.Board, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*models.Board, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Board, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateBoardRequest) (*models.Board, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
