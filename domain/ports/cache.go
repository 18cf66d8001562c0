package ports

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

// BoardListCache fronts the owner-scoped board listing. A miss returns
// ok=false; all methods are best-effort and must never fail a request.
type BoardListCache interface {
	GetBoardList(ctx context.Context, ownerID uuid.UUID) ([]*models.Board, bool)
	SetBoardList(ctx context.Context, ownerID uuid.UUID, boards []*models.Board)
	InvalidateBoardList(ctx context.Context, ownerID uuid.UUID)
}
