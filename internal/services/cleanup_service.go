package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"github.com/mizutani-dev/teamtrack-api/internal/repository"
)

// CleanupService removes tasks past their grace period. It is invoked
// out-of-band by an external scheduler, once per invocation.
type CleanupService struct {
	taskRepo repository.TaskRepository
	logger   *zap.Logger
}

// NewCleanupService creates a new CleanupService.
func NewCleanupService(taskRepo repository.TaskRepository, logger *zap.Logger) *CleanupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CleanupService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Purge hard-deletes every task that has been Done for at least a full day,
// or whose deadline passed at least a full day ago. Comparisons are at date
// granularity. Deleting an already-deleted task is a no-op, so concurrent or
// repeated runs are safe.
func (s *CleanupService) Purge(now time.Time) (int, error) {
	tasks, err := s.taskRepo.ListAll()
	if err != nil {
		return 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	today := dateOf(now)
	deleted := 0

	for _, task := range tasks {
		if !expired(task, today) {
			continue
		}

		if err := s.taskRepo.Delete(task.ID); err != nil {
			return deleted, fmt.Errorf("failed to delete task %d: %w", task.ID, err)
		}

		s.logger.Info("purged task",
			zap.Uint64("task_id", task.ID),
			zap.String("name", task.Name),
			zap.String("status", string(task.Status)),
		)
		deleted++
	}

	return deleted, nil
}

func expired(task models.Task, today time.Time) bool {
	if task.Status == models.TaskStatusDone && daysBetween(dateOf(task.UpdatedAt), today) >= 1 {
		return true
	}
	if task.Deadline != nil && daysBetween(dateOf(*task.Deadline), today) >= 1 {
		return true
	}
	return false
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
