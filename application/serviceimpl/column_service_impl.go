package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

type ColumnServiceImpl struct {
	columnRepo repositories.ColumnRepository
	boardRepo  repositories.BoardRepository
	owners     *OwnershipResolver
	events     ports.EventPublisher
}

func NewColumnService(
	columnRepo repositories.ColumnRepository,
	boardRepo repositories.BoardRepository,
	owners *OwnershipResolver,
	events ports.EventPublisher,
) services.ColumnService {
	return &ColumnServiceImpl{
		columnRepo: columnRepo,
		boardRepo:  boardRepo,
		owners:     owners,
		events:     events,
	}
}

func (s *ColumnServiceImpl) Create(ctx context.Context, userID, boardID uuid.UUID, req *dto.CreateColumnRequest) (*models.Column, error) {
	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := s.owners.RequireOwner(board, userID); err != nil {
		return nil, errNotOwner(ctx, "board", boardID, userID)
	}

	// Fresh sibling read; new columns always append to the end.
	siblings, err := s.columnRepo.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	column := &models.Column{
		ID:        uuid.New(),
		Title:     req.Title,
		BoardID:   boardID,
		Order:     nextOrder(columnOrders(siblings)),
		CreatedAt: time.Now(),
	}

	if err := s.columnRepo.Create(ctx, column); err != nil {
		logger.ErrorContext(ctx, "Failed to create column", "board_id", boardID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.events, &ports.BoardEvent{
		Type:     ports.EventColumnCreated,
		BoardID:  boardID,
		EntityID: column.ID,
		Payload:  dto.ColumnToColumnResponse(column),
	})

	logger.InfoContext(ctx, "Column created", "column_id", column.ID, "board_id", boardID, "order", column.Order)
	return column, nil
}

func (s *ColumnServiceImpl) ListByBoard(ctx context.Context, userID, boardID uuid.UUID) ([]*models.Column, error) {
	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := s.owners.RequireOwner(board, userID); err != nil {
		return nil, errNotOwner(ctx, "board", boardID, userID)
	}

	return s.columnRepo.ListByBoard(ctx, boardID)
}

func (s *ColumnServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateColumnRequest) (*models.Column, error) {
	column, err := s.columnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	board, err := s.boardRepo.GetByID(ctx, column.BoardID)
	if err != nil {
		return nil, err
	}
	if err := s.owners.RequireOwner(board, userID); err != nil {
		return nil, errNotOwner(ctx, "column", id, userID)
	}

	if req.Title != nil {
		column.Title = *req.Title
	}
	if req.Order != nil {
		column.Order = *req.Order
	}

	if err := s.columnRepo.Update(ctx, column); err != nil {
		logger.ErrorContext(ctx, "Failed to update column", "column_id", id, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.events, &ports.BoardEvent{
		Type:     ports.EventColumnUpdated,
		BoardID:  column.BoardID,
		EntityID: column.ID,
		Payload:  dto.ColumnToColumnResponse(column),
	})

	logger.InfoContext(ctx, "Column updated", "column_id", id)
	return column, nil
}

// Move repositions a column within its board. The whole sibling set is
// renumbered to sequential 0..n-1 so the requested index holds exactly,
// at the cost of rewriting every row.
func (s *ColumnServiceImpl) Move(ctx context.Context, userID, id uuid.UUID, destIndex int) ([]*models.Column, error) {
	column, err := s.columnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	board, err := s.boardRepo.GetByID(ctx, column.BoardID)
	if err != nil {
		return nil, err
	}
	if err := s.owners.RequireOwner(board, userID); err != nil {
		return nil, errNotOwner(ctx, "column", id, userID)
	}

	siblings, err := s.columnRepo.ListByBoard(ctx, column.BoardID)
	if err != nil {
		return nil, err
	}

	reordered := make([]*models.Column, 0, len(siblings))
	for _, sib := range siblings {
		if sib.ID != column.ID {
			reordered = append(reordered, sib)
		}
	}

	idx := clampIndex(destIndex, len(reordered))
	reordered = append(reordered[:idx], append([]*models.Column{column}, reordered[idx:]...)...)
	for i := range reordered {
		reordered[i].Order = i
	}

	if err := s.columnRepo.UpdateMany(ctx, reordered); err != nil {
		logger.ErrorContext(ctx, "Failed to reorder columns", "board_id", column.BoardID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.events, &ports.BoardEvent{
		Type:     ports.EventColumnMoved,
		BoardID:  column.BoardID,
		EntityID: column.ID,
		Payload:  dto.ColumnsToColumnResponses(reordered),
	})

	logger.InfoContext(ctx, "Column moved", "column_id", id, "dest_index", idx)
	return reordered, nil
}

// Delete removes only the column row. Its tasks are orphaned until the
// sweeper reclaims them.
func (s *ColumnServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	column, err := s.columnRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	board, err := s.boardRepo.GetByID(ctx, column.BoardID)
	if err != nil {
		return err
	}
	if err := s.owners.RequireOwner(board, userID); err != nil {
		return errNotOwner(ctx, "column", id, userID)
	}

	if err := s.columnRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete column", "column_id", id, "error", err)
		return err
	}

	publishEvent(ctx, s.events, &ports.BoardEvent{
		Type:     ports.EventColumnDeleted,
		BoardID:  column.BoardID,
		EntityID: id,
	})

	logger.InfoContext(ctx, "Column deleted", "column_id", id)
	return nil
}
