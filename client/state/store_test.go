package state

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/dto"
)

// fakeAPI serves canned data and lets tests script the move endpoints.
type fakeAPI struct {
	board   dto.BoardResponse
	columns []dto.ColumnResponse
	tasks   map[uuid.UUID][]dto.TaskResponse

	moveTaskFn    func(id, destColumnID uuid.UUID, destIndex int) (*dto.MoveTaskResponse, error)
	moveColumnFn  func(id uuid.UUID, destIndex int) (*dto.MoveColumnResponse, error)
	createTaskFn  func(columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	deleteTaskFn  func(id uuid.UUID) error
	deleteBoardFn func(id uuid.UUID) error
}

func (f *fakeAPI) ListBoards(context.Context) ([]dto.BoardResponse, error) {
	return []dto.BoardResponse{f.board}, nil
}

func (f *fakeAPI) GetBoard(_ context.Context, id uuid.UUID) (*dto.BoardResponse, error) {
	board := f.board
	return &board, nil
}

func (f *fakeAPI) CreateBoard(context.Context, *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeAPI) UpdateBoard(context.Context, uuid.UUID, *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeAPI) DeleteBoard(_ context.Context, id uuid.UUID) error {
	if f.deleteBoardFn != nil {
		return f.deleteBoardFn(id)
	}
	return errors.New("not scripted")
}

func (f *fakeAPI) ListColumns(_ context.Context, _ uuid.UUID) ([]dto.ColumnResponse, error) {
	return append([]dto.ColumnResponse(nil), f.columns...), nil
}

func (f *fakeAPI) CreateColumn(context.Context, uuid.UUID, *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeAPI) UpdateColumn(context.Context, uuid.UUID, *dto.UpdateColumnRequest) (*dto.ColumnResponse, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeAPI) MoveColumn(_ context.Context, id uuid.UUID, destIndex int) (*dto.MoveColumnResponse, error) {
	if f.moveColumnFn != nil {
		return f.moveColumnFn(id, destIndex)
	}
	return nil, errors.New("not scripted")
}

func (f *fakeAPI) DeleteColumn(context.Context, uuid.UUID) error {
	return errors.New("not scripted")
}

func (f *fakeAPI) ListTasks(_ context.Context, columnID uuid.UUID) ([]dto.TaskResponse, error) {
	return append([]dto.TaskResponse(nil), f.tasks[columnID]...), nil
}

func (f *fakeAPI) CreateTask(_ context.Context, columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if f.createTaskFn != nil {
		return f.createTaskFn(columnID, req)
	}
	return nil, errors.New("not scripted")
}

func (f *fakeAPI) UpdateTask(context.Context, uuid.UUID, *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeAPI) MoveTask(_ context.Context, id, destColumnID uuid.UUID, destIndex int) (*dto.MoveTaskResponse, error) {
	if f.moveTaskFn != nil {
		return f.moveTaskFn(id, destColumnID, destIndex)
	}
	return nil, errors.New("not scripted")
}

func (f *fakeAPI) DeleteTask(_ context.Context, id uuid.UUID) error {
	if f.deleteTaskFn != nil {
		return f.deleteTaskFn(id)
	}
	return errors.New("not scripted")
}

// newLoadedStore hydrates a store with one board, two columns, and three
// tasks in the first column.
func newLoadedStore(t *testing.T) (*Store, *fakeAPI, []uuid.UUID) {
	t.Helper()

	boardID := uuid.New()
	colA := uuid.New()
	colB := uuid.New()
	taskIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	api := &fakeAPI{
		board: dto.BoardResponse{ID: boardID, Title: "Sprint"},
		columns: []dto.ColumnResponse{
			{ID: colA, Title: "To Do", BoardID: boardID, Order: 0},
			{ID: colB, Title: "Done", BoardID: boardID, Order: 1},
		},
		tasks: map[uuid.UUID][]dto.TaskResponse{
			colA: {
				{ID: taskIDs[0], Title: "a", ColumnID: colA, Order: 0},
				{ID: taskIDs[1], Title: "b", ColumnID: colA, Order: 1},
				{ID: taskIDs[2], Title: "c", ColumnID: colA, Order: 2},
			},
			colB: {},
		},
	}

	store := NewStore(api)
	require.NoError(t, store.LoadBoard(context.Background(), boardID))
	return store, api, []uuid.UUID{colA, colB, taskIDs[0], taskIDs[1], taskIDs[2]}
}

func taskTitles(list []dto.TaskResponse) []string {
	titles := make([]string, len(list))
	for i, task := range list {
		titles[i] = task.Title
	}
	return titles
}

func TestStoreLoadBoard(t *testing.T) {
	store, _, ids := newLoadedStore(t)
	colA, colB := ids[0], ids[1]

	st := store.State()
	require.NotNil(t, st.Board)
	assert.Equal(t, "Sprint", st.Board.Title)
	assert.Len(t, st.Columns, 2)
	assert.Equal(t, []string{"a", "b", "c"}, taskTitles(st.Tasks[colA]))
	assert.Empty(t, st.Tasks[colB])
}

func TestStoreMoveTaskOptimistic(t *testing.T) {
	store, api, ids := newLoadedStore(t)
	colA, colB, taskB := ids[0], ids[1], ids[3]

	// Observe the store mid-flight, before the server answers.
	var midFlight State
	api.moveTaskFn = func(id, destColumnID uuid.UUID, destIndex int) (*dto.MoveTaskResponse, error) {
		midFlight = store.State()
		return &dto.MoveTaskResponse{
			Task: dto.TaskResponse{ID: taskB, Title: "b", ColumnID: colB, Order: 0},
			Siblings: []dto.TaskResponse{
				{ID: taskB, Title: "b", ColumnID: colB, Order: 0},
			},
		}, nil
	}

	resp, err := store.MoveTask(context.Background(), taskB, colB, 0)
	require.NoError(t, err)

	// The optimistic layout was visible before the response landed.
	assert.Equal(t, []string{"b"}, taskTitles(midFlight.Tasks[colB]))
	assert.Equal(t, []string{"a", "c"}, taskTitles(midFlight.Tasks[colA]))

	// And the final state adopted the server's list.
	st := store.State()
	assert.Equal(t, []string{"b"}, taskTitles(st.Tasks[colB]))
	assert.Equal(t, []string{"a", "c"}, taskTitles(st.Tasks[colA]))
	assert.Equal(t, 0, resp.Task.Order)
}

func TestStoreMoveTaskRollback(t *testing.T) {
	store, api, ids := newLoadedStore(t)
	colA, colB, taskB := ids[0], ids[1], ids[3]

	api.moveTaskFn = func(uuid.UUID, uuid.UUID, int) (*dto.MoveTaskResponse, error) {
		return nil, errors.New("boom")
	}

	_, err := store.MoveTask(context.Background(), taskB, colB, 0)
	require.Error(t, err)

	// Rejected move restores the pre-move layout.
	st := store.State()
	assert.Equal(t, []string{"a", "b", "c"}, taskTitles(st.Tasks[colA]))
	assert.Empty(t, st.Tasks[colB])
}

func TestStoreMoveTaskLastResponseWins(t *testing.T) {
	store, api, ids := newLoadedStore(t)
	colA, colB, taskB := ids[0], ids[1], ids[3]

	// While the first move is in flight, a second move on the same task
	// completes. The first move then fails; its rollback must not clobber
	// the newer move's result.
	first := true
	api.moveTaskFn = func(id, destColumnID uuid.UUID, destIndex int) (*dto.MoveTaskResponse, error) {
		if !first {
			return &dto.MoveTaskResponse{
				Task: dto.TaskResponse{ID: taskB, Title: "b", ColumnID: colA, Order: 0},
				Siblings: []dto.TaskResponse{
					{ID: taskB, Title: "b", ColumnID: colA, Order: 0},
					{ID: ids[2], Title: "a", ColumnID: colA, Order: 1},
					{ID: ids[4], Title: "c", ColumnID: colA, Order: 2},
				},
			}, nil
		}
		first = false

		// Nested newer move: back to the front of column A.
		_, err := store.MoveTask(context.Background(), taskB, colA, 0)
		if err != nil {
			return nil, err
		}

		return nil, errors.New("stale move rejected")
	}

	_, err := store.MoveTask(context.Background(), taskB, colB, 0)
	require.Error(t, err)

	// The newer move's server response owns the state.
	st := store.State()
	assert.Equal(t, []string{"b", "a", "c"}, taskTitles(st.Tasks[colA]))
	assert.Empty(t, st.Tasks[colB])
}

func TestStoreMoveColumn(t *testing.T) {
	store, api, ids := newLoadedStore(t)
	colA, colB := ids[0], ids[1]

	t.Run("adopts the renumbered list on success", func(t *testing.T) {
		api.moveColumnFn = func(id uuid.UUID, destIndex int) (*dto.MoveColumnResponse, error) {
			return &dto.MoveColumnResponse{
				Columns: []dto.ColumnResponse{
					{ID: colB, Title: "Done", Order: 0},
					{ID: colA, Title: "To Do", Order: 1},
				},
			}, nil
		}

		_, err := store.MoveColumn(context.Background(), colB, 0)
		require.NoError(t, err)

		st := store.State()
		assert.Equal(t, colB, st.Columns[0].ID)
		assert.Equal(t, colA, st.Columns[1].ID)
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		api.moveColumnFn = func(uuid.UUID, int) (*dto.MoveColumnResponse, error) {
			return nil, errors.New("boom")
		}

		before := store.State()
		_, err := store.MoveColumn(context.Background(), colA, 0)
		require.Error(t, err)

		st := store.State()
		assert.Equal(t, before.Columns, st.Columns)
	})
}

func TestStoreCreateAndDeleteTask(t *testing.T) {
	store, api, ids := newLoadedStore(t)
	colB := ids[1]

	created := dto.TaskResponse{ID: uuid.New(), Title: "new", ColumnID: colB, Order: 0}
	api.createTaskFn = func(columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
		task := created
		return &task, nil
	}
	api.deleteTaskFn = func(id uuid.UUID) error { return nil }

	_, err := store.CreateTask(context.Background(), colB, &dto.CreateTaskRequest{Title: "new"})
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, taskTitles(store.State().Tasks[colB]))

	require.NoError(t, store.DeleteTask(context.Background(), created.ID))
	assert.Empty(t, store.State().Tasks[colB])
}

func TestStoreDeleteBoardDropsLoadedView(t *testing.T) {
	store, api, ids := newLoadedStore(t)
	colA := ids[0]

	require.NoError(t, store.LoadBoards(context.Background()))
	require.Len(t, store.State().Boards, 1)

	api.deleteBoardFn = func(id uuid.UUID) error { return nil }
	boardID := store.State().Board.ID
	require.NoError(t, store.DeleteBoard(context.Background(), boardID))

	st := store.State()
	assert.Empty(t, st.Boards)
	assert.Nil(t, st.Board)
	assert.Empty(t, st.Columns)
	assert.Empty(t, st.Tasks[colA])
}

func TestStoreMutationBeforeLoad(t *testing.T) {
	store := NewStore(&fakeAPI{})

	_, err := store.CreateColumn(context.Background(), &dto.CreateColumnRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrNoBoard)
}
