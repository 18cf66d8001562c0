package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/dto"
	"taskboard/domain/errs"
	"taskboard/domain/models"
)

func TestBoardServiceList(t *testing.T) {
	t.Run("caches the listing and serves hits from it", func(t *testing.T) {
		f := newFixture()
		svc := f.boardService()

		first, err := svc.List(context.Background(), f.ownerID)
		require.NoError(t, err)
		require.Len(t, first, 1)

		// Mutate storage behind the cache; a hit must not see it.
		extraID := uuid.New()
		f.boards.boards[extraID] = &models.Board{ID: extraID, Title: "sneaky", OwnerID: f.ownerID}

		second, err := svc.List(context.Background(), f.ownerID)
		require.NoError(t, err)
		assert.Len(t, second, 1)
	})

	t.Run("create invalidates the cached listing", func(t *testing.T) {
		f := newFixture()
		svc := f.boardService()

		_, err := svc.List(context.Background(), f.ownerID)
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), f.ownerID, &dto.CreateBoardRequest{Title: "New"})
		require.NoError(t, err)
		assert.Equal(t, 1, f.cache.invalidated)

		boards, err := svc.List(context.Background(), f.ownerID)
		require.NoError(t, err)
		assert.Len(t, boards, 2)
	})

	t.Run("works without a cache", func(t *testing.T) {
		f := newFixture()
		svc := NewBoardService(f.boards, nil, f.events)

		boards, err := svc.List(context.Background(), f.ownerID)
		require.NoError(t, err)
		assert.Len(t, boards, 1)
	})
}

func TestBoardServiceGet(t *testing.T) {
	t.Run("owner reads their board", func(t *testing.T) {
		f := newFixture()
		svc := f.boardService()

		board, err := svc.Get(context.Background(), f.ownerID, f.boardID)

		require.NoError(t, err)
		assert.Equal(t, "Sprint", board.Title)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		f := newFixture()
		svc := f.boardService()

		_, err := svc.Get(context.Background(), f.otherID, f.boardID)

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("missing board is not found, regardless of requester", func(t *testing.T) {
		f := newFixture()
		svc := f.boardService()

		_, err := svc.Get(context.Background(), f.otherID, uuid.New())

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestBoardServiceUpdate(t *testing.T) {
	t.Run("patches only provided fields", func(t *testing.T) {
		f := newFixture()
		f.boards.boards[f.boardID].Description = "keep"
		svc := f.boardService()

		board, err := svc.Update(context.Background(), f.ownerID, f.boardID, &dto.UpdateBoardRequest{
			Title: strPtr("Renamed"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", board.Title)
		assert.Equal(t, "keep", board.Description)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		f := newFixture()
		svc := f.boardService()

		_, err := svc.Update(context.Background(), f.otherID, f.boardID, &dto.UpdateBoardRequest{Title: strPtr("x")})

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}

func TestBoardServiceDelete(t *testing.T) {
	t.Run("removes only the board row", func(t *testing.T) {
		f := newFixture()
		stranded := f.seedTask(f.colTodo, "stranded", 0)
		svc := f.boardService()

		require.NoError(t, svc.Delete(context.Background(), f.ownerID, f.boardID))

		_, err := f.boards.GetByID(context.Background(), f.boardID)
		assert.ErrorIs(t, err, errs.ErrNotFound)

		// Columns and tasks are left for the orphan sweeper.
		_, err = f.columns.GetByID(context.Background(), f.colTodo)
		assert.NoError(t, err)
		_, err = f.tasks.GetByID(context.Background(), stranded.ID)
		assert.NoError(t, err)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		f := newFixture()
		svc := f.boardService()

		err := svc.Delete(context.Background(), f.otherID, f.boardID)

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}
