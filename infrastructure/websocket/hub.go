package websocket

import (
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"taskboard/pkg/logger"
)

// Hub fans board events out to the websocket connections watching each
// board. One SPA tab holds one connection per open board view.
type Hub struct {
	mu     sync.RWMutex
	boards map[uuid.UUID]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		boards: make(map[uuid.UUID]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(boardID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.boards[boardID] == nil {
		h.boards[boardID] = make(map[*websocket.Conn]bool)
	}
	h.boards[boardID][conn] = true
}

func (h *Hub) Unregister(boardID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns := h.boards[boardID]; conns != nil {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.boards, boardID)
		}
	}
}

// Broadcast writes a raw event payload to every watcher of the board.
// Dead connections are dropped on write failure.
func (h *Hub) Broadcast(boardID uuid.UUID, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.boards[boardID] {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			logger.Debug("Dropping dead websocket connection", "board_id", boardID, "error", err)
			conn.Close()
			delete(h.boards[boardID], conn)
		}
	}

	if len(h.boards[boardID]) == 0 {
		delete(h.boards, boardID)
	}
}

func (h *Hub) WatcherCount(boardID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.boards[boardID])
}
