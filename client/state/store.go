// Package state keeps a client-side copy of one board and applies
// mutations through the API with predictable ordering. Moves are applied
// optimistically and rolled back from a snapshot when the server rejects
// them. When several moves race on the same entity, the last response to
// arrive for the newest move wins; stale responses are discarded.
package state

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"taskboard/domain/dto"
)

// API is the slice of the REST client the store depends on.
// *api.Client satisfies it.
type API interface {
	ListBoards(ctx context.Context) ([]dto.BoardResponse, error)
	GetBoard(ctx context.Context, id uuid.UUID) (*dto.BoardResponse, error)
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	UpdateBoard(ctx context.Context, id uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, id uuid.UUID) error

	ListColumns(ctx context.Context, boardID uuid.UUID) ([]dto.ColumnResponse, error)
	CreateColumn(ctx context.Context, boardID uuid.UUID, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error)
	UpdateColumn(ctx context.Context, id uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error)
	MoveColumn(ctx context.Context, id uuid.UUID, destIndex int) (*dto.MoveColumnResponse, error)
	DeleteColumn(ctx context.Context, id uuid.UUID) error

	ListTasks(ctx context.Context, columnID uuid.UUID) ([]dto.TaskResponse, error)
	CreateTask(ctx context.Context, columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	MoveTask(ctx context.Context, id, destColumnID uuid.UUID, destIndex int) (*dto.MoveTaskResponse, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// State is the store's snapshot: the owner's board list plus the currently
// loaded board with its columns and tasks. Tasks are keyed by column, both
// ordered slices carry their server-assigned positions.
type State struct {
	Boards  []dto.BoardResponse
	Board   *dto.BoardResponse
	Columns []dto.ColumnResponse
	Tasks   map[uuid.UUID][]dto.TaskResponse
}

type Store struct {
	mu    sync.Mutex
	api   API
	state State

	// moveSeq tracks the newest in-flight move per entity so a slow
	// response for an older move cannot overwrite a newer one.
	moveSeq map[uuid.UUID]uint64
	nextSeq uint64
}

func NewStore(api API) *Store {
	return &Store{
		api:     api,
		state:   State{Tasks: map[uuid.UUID][]dto.TaskResponse{}},
		moveSeq: map[uuid.UUID]uint64{},
	}
}

// State returns a deep copy; callers can render it without racing the store.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// LoadBoards hydrates the owner's board list.
func (s *Store) LoadBoards(ctx context.Context) error {
	boards, err := s.api.ListBoards(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Boards = boards
	return nil
}

// LoadBoard hydrates the store with the board, its columns, and every
// column's tasks.
func (s *Store) LoadBoard(ctx context.Context, boardID uuid.UUID) error {
	board, err := s.api.GetBoard(ctx, boardID)
	if err != nil {
		return err
	}

	columns, err := s.api.ListColumns(ctx, boardID)
	if err != nil {
		return err
	}

	tasks := make(map[uuid.UUID][]dto.TaskResponse, len(columns))
	for _, col := range columns {
		list, err := s.api.ListTasks(ctx, col.ID)
		if err != nil {
			return err
		}
		tasks[col.ID] = list
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Board = board
	s.state.Columns = columns
	s.state.Tasks = tasks
	return nil
}

// === Write-through CRUD ===

func (s *Store) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	board, err := s.api.CreateBoard(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Boards = append([]dto.BoardResponse{*board}, s.state.Boards...)
	return board, nil
}

func (s *Store) UpdateBoard(ctx context.Context, id uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	board, err := s.api.UpdateBoard(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Boards {
		if s.state.Boards[i].ID == id {
			s.state.Boards[i] = *board
			break
		}
	}
	if s.state.Board != nil && s.state.Board.ID == id {
		s.state.Board = board
	}
	return board, nil
}

func (s *Store) DeleteBoard(ctx context.Context, id uuid.UUID) error {
	if err := s.api.DeleteBoard(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Boards {
		if s.state.Boards[i].ID == id {
			s.state.Boards = append(s.state.Boards[:i], s.state.Boards[i+1:]...)
			break
		}
	}
	// Drop the loaded view if it was the deleted board.
	if s.state.Board != nil && s.state.Board.ID == id {
		s.state.Board = nil
		s.state.Columns = nil
		s.state.Tasks = map[uuid.UUID][]dto.TaskResponse{}
	}
	return nil
}

func (s *Store) CreateColumn(ctx context.Context, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	s.mu.Lock()
	if s.state.Board == nil {
		s.mu.Unlock()
		return nil, ErrNoBoard
	}
	boardID := s.state.Board.ID
	s.mu.Unlock()

	col, err := s.api.CreateColumn(ctx, boardID, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Columns = append(s.state.Columns, *col)
	s.state.Tasks[col.ID] = nil
	return col, nil
}

func (s *Store) UpdateColumn(ctx context.Context, id uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error) {
	col, err := s.api.UpdateColumn(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Columns {
		if s.state.Columns[i].ID == id {
			s.state.Columns[i] = *col
			break
		}
	}
	return col, nil
}

func (s *Store) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	if err := s.api.DeleteColumn(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Columns {
		if s.state.Columns[i].ID == id {
			s.state.Columns = append(s.state.Columns[:i], s.state.Columns[i+1:]...)
			break
		}
	}
	delete(s.state.Tasks, id)
	return nil
}

func (s *Store) CreateTask(ctx context.Context, columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.api.CreateTask(ctx, columnID, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tasks[columnID] = append(s.state.Tasks[columnID], *task)
	return task, nil
}

func (s *Store) UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.api.UpdateTask(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The update may have re-homed the task to another column.
	s.removeTaskLocked(id)
	s.insertTaskLocked(*task)
	return task, nil
}

func (s *Store) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.api.DeleteTask(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeTaskLocked(id)
	return nil
}

// === Optimistic moves ===

// MoveTask applies the move locally first so the UI repaints immediately,
// then confirms it with the server. On rejection the pre-move snapshot is
// restored, unless a newer move on the same task already replaced it.
func (s *Store) MoveTask(ctx context.Context, id, destColumnID uuid.UUID, destIndex int) (*dto.MoveTaskResponse, error) {
	s.mu.Lock()
	snapshot := cloneTasks(s.state.Tasks)

	task, ok := s.findTaskLocked(id)
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotInStore
	}

	s.removeTaskLocked(id)
	moved := task
	moved.ColumnID = destColumnID
	s.insertTaskAtLocked(moved, destIndex)
	s.renumberTasksLocked(destColumnID)
	s.renumberTasksLocked(task.ColumnID)

	s.nextSeq++
	seq := s.nextSeq
	s.moveSeq[id] = seq
	s.mu.Unlock()

	resp, err := s.api.MoveTask(ctx, id, destColumnID, destIndex)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.moveSeq[id] != seq {
		// A newer move superseded this one; its outcome owns the state.
		return resp, err
	}

	if err != nil {
		s.state.Tasks = snapshot
		return nil, err
	}

	// Adopt the server's renumbered destination list wholesale.
	s.state.Tasks[destColumnID] = append([]dto.TaskResponse(nil), resp.Siblings...)
	return resp, nil
}

// MoveColumn mirrors MoveTask for column reordering within the board.
func (s *Store) MoveColumn(ctx context.Context, id uuid.UUID, destIndex int) (*dto.MoveColumnResponse, error) {
	s.mu.Lock()
	snapshot := append([]dto.ColumnResponse(nil), s.state.Columns...)

	idx := -1
	for i := range s.state.Columns {
		if s.state.Columns[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrNotInStore
	}

	col := s.state.Columns[idx]
	rest := append([]dto.ColumnResponse(nil), s.state.Columns[:idx]...)
	rest = append(rest, s.state.Columns[idx+1:]...)
	if destIndex > len(rest) {
		destIndex = len(rest)
	}
	cols := append([]dto.ColumnResponse(nil), rest[:destIndex]...)
	cols = append(cols, col)
	cols = append(cols, rest[destIndex:]...)
	for i := range cols {
		cols[i].Order = i
	}
	s.state.Columns = cols

	s.nextSeq++
	seq := s.nextSeq
	s.moveSeq[id] = seq
	s.mu.Unlock()

	resp, err := s.api.MoveColumn(ctx, id, destIndex)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.moveSeq[id] != seq {
		return resp, err
	}

	if err != nil {
		s.state.Columns = snapshot
		return nil, err
	}

	s.state.Columns = append([]dto.ColumnResponse(nil), resp.Columns...)
	return resp, nil
}

// === Locked helpers ===

func (s *Store) findTaskLocked(id uuid.UUID) (dto.TaskResponse, bool) {
	for _, list := range s.state.Tasks {
		for _, task := range list {
			if task.ID == id {
				return task, true
			}
		}
	}
	return dto.TaskResponse{}, false
}

func (s *Store) removeTaskLocked(id uuid.UUID) {
	for colID, list := range s.state.Tasks {
		for i := range list {
			if list[i].ID == id {
				s.state.Tasks[colID] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// insertTaskLocked appends to the task's column keeping order-sorted
// position.
func (s *Store) insertTaskLocked(task dto.TaskResponse) {
	list := s.state.Tasks[task.ColumnID]
	pos := len(list)
	for i := range list {
		if list[i].Order > task.Order {
			pos = i
			break
		}
	}
	s.insertTaskAtLocked(task, pos)
}

func (s *Store) insertTaskAtLocked(task dto.TaskResponse, index int) {
	list := s.state.Tasks[task.ColumnID]
	if index > len(list) {
		index = len(list)
	}
	if index < 0 {
		index = 0
	}
	list = append(list, dto.TaskResponse{})
	copy(list[index+1:], list[index:])
	list[index] = task
	s.state.Tasks[task.ColumnID] = list
}

func (s *Store) renumberTasksLocked(columnID uuid.UUID) {
	list := s.state.Tasks[columnID]
	for i := range list {
		list[i].Order = i
	}
}

// === Cloning ===

func cloneState(st State) State {
	out := State{
		Boards:  append([]dto.BoardResponse(nil), st.Boards...),
		Columns: append([]dto.ColumnResponse(nil), st.Columns...),
		Tasks:   cloneTasks(st.Tasks),
	}
	if st.Board != nil {
		board := *st.Board
		out.Board = &board
	}
	return out
}

func cloneTasks(tasks map[uuid.UUID][]dto.TaskResponse) map[uuid.UUID][]dto.TaskResponse {
	out := make(map[uuid.UUID][]dto.TaskResponse, len(tasks))
	for colID, list := range tasks {
		out[colID] = append([]dto.TaskResponse(nil), list...)
	}
	return out
}
