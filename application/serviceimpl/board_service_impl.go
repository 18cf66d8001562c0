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

type BoardServiceImpl struct {
	boardRepo repositories.BoardRepository
	cache     ports.BoardListCache
	events    ports.EventPublisher
}

// NewBoardService builds the board service. cache and events may be nil,
// the service degrades to plain repository access.
func NewBoardService(
	boardRepo repositories.BoardRepository,
	cache ports.BoardListCache,
	events ports.EventPublisher,
) services.BoardService {
	return &BoardServiceImpl{
		boardRepo: boardRepo,
		cache:     cache,
		events:    events,
	}
}

func (s *BoardServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateBoardRequest) (*models.Board, error) {
	board := &models.Board{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		logger.ErrorContext(ctx, "Failed to create board", "error", err)
		return nil, err
	}

	s.invalidate(ctx, ownerID)

	logger.InfoContext(ctx, "Board created", "board_id", board.ID, "owner_id", ownerID)
	return board, nil
}

func (s *BoardServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Board, error) {
	if s.cache != nil {
		if boards, ok := s.cache.GetBoardList(ctx, ownerID); ok {
			return boards, nil
		}
	}

	boards, err := s.boardRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list boards", "owner_id", ownerID, "error", err)
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetBoardList(ctx, ownerID, boards)
	}

	return boards, nil
}

func (s *BoardServiceImpl) Get(ctx context.Context, userID, id uuid.UUID) (*models.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if board.OwnerID != userID {
		return nil, errNotOwner(ctx, "board", id, userID)
	}

	return board, nil
}

func (s *BoardServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateBoardRequest) (*models.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if board.OwnerID != userID {
		return nil, errNotOwner(ctx, "board", id, userID)
	}

	if req.Title != nil {
		board.Title = *req.Title
	}
	if req.Description != nil {
		board.Description = *req.Description
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		logger.ErrorContext(ctx, "Failed to update board", "board_id", id, "error", err)
		return nil, err
	}

	s.invalidate(ctx, userID)
	publishEvent(ctx, s.events, &ports.BoardEvent{
		Type:     ports.EventBoardUpdated,
		BoardID:  board.ID,
		EntityID: board.ID,
		Payload:  dto.BoardToBoardResponse(board),
	})

	logger.InfoContext(ctx, "Board updated", "board_id", id)
	return board, nil
}

// Delete removes only the board row. Columns and tasks under it are left in
// place and become unreachable through board-scoped routes; the orphan
// sweeper reclaims them out of band.
func (s *BoardServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if board.OwnerID != userID {
		return errNotOwner(ctx, "board", id, userID)
	}

	if err := s.boardRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete board", "board_id", id, "error", err)
		return err
	}

	s.invalidate(ctx, userID)
	publishEvent(ctx, s.events, &ports.BoardEvent{
		Type:     ports.EventBoardDeleted,
		BoardID:  id,
		EntityID: id,
	})

	logger.InfoContext(ctx, "Board deleted", "board_id", id)
	return nil
}

func (s *BoardServiceImpl) invalidate(ctx context.Context, ownerID uuid.UUID) {
	if s.cache != nil {
		s.cache.InvalidateBoardList(ctx, ownerID)
	}
}
