package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/domain/errs"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
)

type BoardRepositoryImpl struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) repositories.BoardRepository {
	return &BoardRepositoryImpl{db: db}
}

func (r *BoardRepositoryImpl) Create(ctx context.Context, board *models.Board) error {
	return r.db.WithContext(ctx).Omit("Owner").Create(board).Error
}

func (r *BoardRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	var board models.Board
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: board %s", errs.ErrNotFound, id)
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepositoryImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Board, error) {
	var boards []*models.Board
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&boards).Error
	return boards, err
}

func (r *BoardRepositoryImpl) Update(ctx context.Context, board *models.Board) error {
	return r.db.WithContext(ctx).Omit("Owner").Save(board).Error
}

func (r *BoardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Board{}).Error
}
