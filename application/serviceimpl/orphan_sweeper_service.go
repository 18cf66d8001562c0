package serviceimpl

import (
	"context"

	"taskboard/domain/repositories"
	"taskboard/pkg/logger"
)

// OrphanSweeper reclaims columns and tasks left behind by parent deletes.
// Board and column deletion intentionally does not cascade in the request
// path, so orphans accumulate until this job removes them. Columns go first
// so their tasks are orphaned in the same pass's task sweep or the next one.
type OrphanSweeper struct {
	columnRepo repositories.ColumnRepository
	taskRepo   repositories.TaskRepository
}

func NewOrphanSweeper(
	columnRepo repositories.ColumnRepository,
	taskRepo repositories.TaskRepository,
) *OrphanSweeper {
	return &OrphanSweeper{
		columnRepo: columnRepo,
		taskRepo:   taskRepo,
	}
}

func (s *OrphanSweeper) Sweep(ctx context.Context) {
	columns, err := s.columnRepo.DeleteOrphans(ctx)
	if err != nil {
		logger.Error("Orphan column sweep failed", "error", err)
	}

	tasks, err := s.taskRepo.DeleteOrphans(ctx)
	if err != nil {
		logger.Error("Orphan task sweep failed", "error", err)
	}

	if columns > 0 || tasks > 0 {
		logger.Info("Orphans reclaimed", "columns", columns, "tasks", tasks)
	}
}
