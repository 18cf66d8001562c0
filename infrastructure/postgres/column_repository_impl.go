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

type ColumnRepositoryImpl struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) repositories.ColumnRepository {
	return &ColumnRepositoryImpl{db: db}
}

func (r *ColumnRepositoryImpl) Create(ctx context.Context, column *models.Column) error {
	return r.db.WithContext(ctx).Create(column).Error
}

func (r *ColumnRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Column, error) {
	var column models.Column
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&column).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: column %s", errs.ErrNotFound, id)
		}
		return nil, err
	}
	return &column, nil
}

func (r *ColumnRepositoryImpl) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]*models.Column, error) {
	var columns []*models.Column
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("sort_order ASC, created_at ASC").
		Find(&columns).Error
	return columns, err
}

func (r *ColumnRepositoryImpl) Update(ctx context.Context, column *models.Column) error {
	return r.db.WithContext(ctx).Save(column).Error
}

func (r *ColumnRepositoryImpl) UpdateMany(ctx context.Context, columns []*models.Column) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, col := range columns {
			if err := tx.Model(&models.Column{}).Where("id = ?", col.ID).Updates(map[string]interface{}{
				"sort_order": col.Order,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ColumnRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Column{}).Error
}

func (r *ColumnRepositoryImpl) DeleteOrphans(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("board_id NOT IN (?)", r.db.Model(&models.Board{}).Select("id")).
		Delete(&models.Column{})
	return result.RowsAffected, result.Error
}
