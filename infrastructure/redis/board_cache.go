package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/pkg/logger"
)

const boardListTTL = 60 * time.Second

// BoardCache caches the owner-scoped board listing. Short TTL plus explicit
// invalidation on board mutation; a stale read only delays a board title
// change by at most the TTL.
type BoardCache struct {
	client *Client
}

func NewBoardCache(client *Client) ports.BoardListCache {
	return &BoardCache{client: client}
}

func boardListKey(ownerID uuid.UUID) string {
	return "boards:" + ownerID.String()
}

func (c *BoardCache) GetBoardList(ctx context.Context, ownerID uuid.UUID) ([]*models.Board, bool) {
	raw, err := c.client.Get(ctx, boardListKey(ownerID))
	if err != nil {
		return nil, false
	}

	var boards []*models.Board
	if err := json.Unmarshal([]byte(raw), &boards); err != nil {
		logger.Warn("Corrupt board-list cache entry", "owner_id", ownerID, "error", err)
		_ = c.client.Del(ctx, boardListKey(ownerID))
		return nil, false
	}

	return boards, true
}

func (c *BoardCache) SetBoardList(ctx context.Context, ownerID uuid.UUID, boards []*models.Board) {
	data, err := json.Marshal(boards)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, boardListKey(ownerID), data, boardListTTL); err != nil {
		logger.Warn("Failed to cache board list", "owner_id", ownerID, "error", err)
	}
}

func (c *BoardCache) InvalidateBoardList(ctx context.Context, ownerID uuid.UUID) {
	if err := c.client.Del(ctx, boardListKey(ownerID)); err != nil {
		logger.Warn("Failed to invalidate board list", "owner_id", ownerID, "error", err)
	}
}
