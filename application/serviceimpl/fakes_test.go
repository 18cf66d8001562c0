package serviceimpl

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"taskboard/domain/errs"
	"taskboard/domain/models"
	"taskboard/domain/ports"
)

// In-memory repositories backing the service tests. They mirror the
// postgres implementations' contracts: sort_order ascending listings,
// ErrNotFound wrapping for missing rows.

type fakeBoardRepo struct {
	mu     sync.Mutex
	boards map[uuid.UUID]*models.Board
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{boards: map[uuid.UUID]*models.Board{}}
}

func (r *fakeBoardRepo) Create(_ context.Context, board *models.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *board
	r.boards[board.ID] = &clone
	return nil
}

func (r *fakeBoardRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	board, ok := r.boards[id]
	if !ok {
		return nil, fmt.Errorf("%w: board %s", errs.ErrNotFound, id)
	}
	clone := *board
	return &clone, nil
}

func (r *fakeBoardRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*models.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Board
	for _, board := range r.boards {
		if board.OwnerID == ownerID {
			clone := *board
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeBoardRepo) Update(_ context.Context, board *models.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.boards[board.ID]; !ok {
		return fmt.Errorf("%w: board %s", errs.ErrNotFound, board.ID)
	}
	clone := *board
	r.boards[board.ID] = &clone
	return nil
}

func (r *fakeBoardRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.boards[id]; !ok {
		return fmt.Errorf("%w: board %s", errs.ErrNotFound, id)
	}
	delete(r.boards, id)
	return nil
}

type fakeColumnRepo struct {
	mu      sync.Mutex
	columns map[uuid.UUID]*models.Column
	boards  *fakeBoardRepo
}

func newFakeColumnRepo(boards *fakeBoardRepo) *fakeColumnRepo {
	return &fakeColumnRepo{columns: map[uuid.UUID]*models.Column{}, boards: boards}
}

func (r *fakeColumnRepo) Create(_ context.Context, column *models.Column) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *column
	r.columns[column.ID] = &clone
	return nil
}

func (r *fakeColumnRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Column, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	column, ok := r.columns[id]
	if !ok {
		return nil, fmt.Errorf("%w: column %s", errs.ErrNotFound, id)
	}
	clone := *column
	return &clone, nil
}

func (r *fakeColumnRepo) ListByBoard(_ context.Context, boardID uuid.UUID) ([]*models.Column, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Column
	for _, column := range r.columns {
		if column.BoardID == boardID {
			clone := *column
			out = append(out, &clone)
		}
	}
	sortColumns(out)
	return out, nil
}

func (r *fakeColumnRepo) Update(_ context.Context, column *models.Column) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.columns[column.ID]; !ok {
		return fmt.Errorf("%w: column %s", errs.ErrNotFound, column.ID)
	}
	clone := *column
	r.columns[column.ID] = &clone
	return nil
}

func (r *fakeColumnRepo) UpdateMany(_ context.Context, columns []*models.Column) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, column := range columns {
		stored, ok := r.columns[column.ID]
		if !ok {
			return fmt.Errorf("%w: column %s", errs.ErrNotFound, column.ID)
		}
		stored.Order = column.Order
	}
	return nil
}

func (r *fakeColumnRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.columns[id]; !ok {
		return fmt.Errorf("%w: column %s", errs.ErrNotFound, id)
	}
	delete(r.columns, id)
	return nil
}

func (r *fakeColumnRepo) DeleteOrphans(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, column := range r.columns {
		if _, err := r.boards.GetByID(ctx, column.BoardID); err != nil {
			delete(r.columns, id)
			removed++
		}
	}
	return removed, nil
}

type fakeTaskRepo struct {
	mu      sync.Mutex
	tasks   map[uuid.UUID]*models.Task
	columns *fakeColumnRepo
}

func newFakeTaskRepo(columns *fakeColumnRepo) *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[uuid.UUID]*models.Task{}, columns: columns}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w: task %s", errs.ErrNotFound, id)
	}
	clone := *task
	return &clone, nil
}

func (r *fakeTaskRepo) ListByColumn(_ context.Context, columnID uuid.UUID) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Task
	for _, task := range r.tasks {
		if task.ColumnID == columnID {
			clone := *task
			out = append(out, &clone)
		}
	}
	sortTasks(out)
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[task.ID]; !ok {
		return fmt.Errorf("%w: task %s", errs.ErrNotFound, task.ID)
	}
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *fakeTaskRepo) UpdateMany(_ context.Context, tasks []*models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, task := range tasks {
		stored, ok := r.tasks[task.ID]
		if !ok {
			return fmt.Errorf("%w: task %s", errs.ErrNotFound, task.ID)
		}
		stored.ColumnID = task.ColumnID
		stored.Order = task.Order
	}
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return fmt.Errorf("%w: task %s", errs.ErrNotFound, id)
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) DeleteOrphans(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, task := range r.tasks {
		if _, err := r.columns.GetByID(ctx, task.ColumnID); err != nil {
			delete(r.tasks, id)
			removed++
		}
	}
	return removed, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", errs.ErrNotFound, id)
	}
	return user, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[uuid.UUID][]*models.Board
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[uuid.UUID][]*models.Board{}}
}

func (c *fakeCache) GetBoardList(_ context.Context, ownerID uuid.UUID) ([]*models.Board, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	boards, ok := c.entries[ownerID]
	return boards, ok
}

func (c *fakeCache) SetBoardList(_ context.Context, ownerID uuid.UUID, boards []*models.Board) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[ownerID] = boards
}

func (c *fakeCache) InvalidateBoardList(_ context.Context, ownerID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, ownerID)
	c.invalidated++
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*ports.BoardEvent
}

func (p *fakePublisher) PublishBoardEvent(_ context.Context, event *ports.BoardEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) published() []*ports.BoardEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*ports.BoardEvent(nil), p.events...)
}

func sortColumns(columns []*models.Column) {
	sort.Slice(columns, func(i, j int) bool {
		if columns[i].Order != columns[j].Order {
			return columns[i].Order < columns[j].Order
		}
		return columns[i].CreatedAt.Before(columns[j].CreatedAt)
	})
}

func sortTasks(tasks []*models.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Order != tasks[j].Order {
			return tasks[i].Order < tasks[j].Order
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}

// fixture wires the fake repositories into real services around one owner,
// one board, and two columns.
type fixture struct {
	boards  *fakeBoardRepo
	columns *fakeColumnRepo
	tasks   *fakeTaskRepo
	users   *fakeUserRepo
	cache   *fakeCache
	events  *fakePublisher
	owners  *OwnershipResolver

	ownerID uuid.UUID
	otherID uuid.UUID
	boardID uuid.UUID
	colTodo uuid.UUID
	colDone uuid.UUID
}

func newFixture() *fixture {
	f := &fixture{
		boards:  newFakeBoardRepo(),
		users:   newFakeUserRepo(),
		cache:   newFakeCache(),
		events:  &fakePublisher{},
		ownerID: uuid.New(),
		otherID: uuid.New(),
		boardID: uuid.New(),
		colTodo: uuid.New(),
		colDone: uuid.New(),
	}
	f.columns = newFakeColumnRepo(f.boards)
	f.tasks = newFakeTaskRepo(f.columns)
	f.owners = NewOwnershipResolver(f.boards, f.columns, f.tasks)

	f.users.users[f.ownerID] = &models.User{ID: f.ownerID, Name: "Owner", Email: "owner@example.com"}
	f.users.users[f.otherID] = &models.User{ID: f.otherID, Name: "Other", Email: "other@example.com"}

	f.boards.boards[f.boardID] = &models.Board{ID: f.boardID, Title: "Sprint", OwnerID: f.ownerID}
	f.columns.columns[f.colTodo] = &models.Column{ID: f.colTodo, Title: "To Do", BoardID: f.boardID, Order: 0}
	f.columns.columns[f.colDone] = &models.Column{ID: f.colDone, Title: "Done", BoardID: f.boardID, Order: 1}

	return f
}

func (f *fixture) boardService() *BoardServiceImpl {
	return NewBoardService(f.boards, f.cache, f.events).(*BoardServiceImpl)
}

func (f *fixture) columnService() *ColumnServiceImpl {
	return NewColumnService(f.columns, f.boards, f.owners, f.events).(*ColumnServiceImpl)
}

func (f *fixture) taskService() *TaskServiceImpl {
	return NewTaskService(f.tasks, f.users, f.owners, f.events).(*TaskServiceImpl)
}

// seedTask stores a task directly, bypassing the service.
func (f *fixture) seedTask(columnID uuid.UUID, title string, order int) *models.Task {
	task := &models.Task{
		ID:        uuid.New(),
		Title:     title,
		ColumnID:  columnID,
		Priority:  models.PriorityMedium,
		CreatedBy: f.ownerID,
		Order:     order,
	}
	f.tasks.tasks[task.ID] = task
	return task
}
