package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/errs"
	"taskboard/domain/models"
	"taskboard/pkg/utils"
)

// upgradeRequest shapes a request so it passes the websocket upgrade gate
// and exercises the auth chain behind it.
func upgradeRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Sec-WebSocket-Version", "13")
	req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
	return req
}

func TestBoardWatchEndpointAuth(t *testing.T) {
	boardID := uuid.New()
	ownerID := uuid.New()

	ownedBoard := &stubBoardService{
		getFn: func(_ context.Context, userID, id uuid.UUID) (*models.Board, error) {
			if id != boardID {
				return nil, errs.ErrNotFound
			}
			if userID != ownerID {
				return nil, errs.ErrNotAuthorized
			}
			return &models.Board{ID: boardID, OwnerID: ownerID}, nil
		},
	}

	signToken := func(t *testing.T, userID uuid.UUID) string {
		t.Helper()
		token, err := utils.SignToken(userID, "Watcher", "w@example.com", testSecret, time.Hour)
		require.NoError(t, err)
		return token
	}

	t.Run("anonymous watcher is rejected", func(t *testing.T) {
		app := newTestAppWithBoards(&stubTaskService{}, ownedBoard)

		resp, err := app.Test(upgradeRequest("/ws/boards/" + boardID.String()))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		app := newTestAppWithBoards(&stubTaskService{}, ownedBoard)

		resp, err := app.Test(upgradeRequest("/ws/boards/" + boardID.String() + "?token=not-a-jwt"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("non-owner cannot watch the board", func(t *testing.T) {
		app := newTestAppWithBoards(&stubTaskService{}, ownedBoard)

		req := upgradeRequest("/ws/boards/" + boardID.String())
		req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New()))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing board is not found", func(t *testing.T) {
		app := newTestAppWithBoards(&stubTaskService{}, ownedBoard)

		// Token accepted via query parameter; failure here proves the
		// identity was validated and the lookup ran.
		target := "/ws/boards/" + uuid.New().String() + "?token=" + signToken(t, ownerID)
		resp, err := app.Test(upgradeRequest(target))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed board id is a bad request", func(t *testing.T) {
		app := newTestAppWithBoards(&stubTaskService{}, ownedBoard)

		req := upgradeRequest("/ws/boards/not-a-uuid")
		req.Header.Set("Authorization", "Bearer "+signToken(t, ownerID))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("plain GET without upgrade headers never reaches the socket", func(t *testing.T) {
		app := newTestAppWithBoards(&stubTaskService{}, ownedBoard)

		req := httptest.NewRequest(http.MethodGet, "/ws/boards/"+boardID.String(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
	})
}
