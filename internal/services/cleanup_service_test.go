package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"github.com/mizutani-dev/teamtrack-api/internal/repository"
)

type cleanupTestEnv struct {
	db      *gorm.DB
	service *CleanupService
}

func setupCleanupTestEnv(t *testing.T) cleanupTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Worker{},
		&models.Project{},
		&models.ProjectAssignee{},
		&models.Task{},
		&models.TaskComment{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return cleanupTestEnv{
		db:      db,
		service: NewCleanupService(repository.NewTaskRepository(db), nil),
	}
}

// createTask inserts a task and pins its modified timestamp, bypassing the
// auto-update GORM would otherwise apply.
func (env cleanupTestEnv) createTask(t *testing.T, name string, status models.TaskStatus, deadline *time.Time, modified time.Time) *models.Task {
	t.Helper()

	task := &models.Task{
		Name:      name,
		Priority:  models.TaskPriorityMedium,
		Status:    status,
		Deadline:  deadline,
		CreatorID: 1,
		ProjectID: 1,
	}
	require.NoError(t, env.db.Create(task).Error)
	require.NoError(t, env.db.Model(task).UpdateColumn("updated_at", modified).Error)
	return task
}

func TestCleanupService_Purge(t *testing.T) {
	env := setupCleanupTestEnv(t)
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	twoDaysAgo := now.Add(-48 * time.Hour)

	doneStale := env.createTask(t, "done yesterday", models.TaskStatusDone, nil, yesterday)
	doneFresh := env.createTask(t, "done just now", models.TaskStatusDone, nil, now)
	todoNoDeadline := env.createTask(t, "open-ended", models.TaskStatusTodo, nil, now)
	deadlineToday := env.createTask(t, "due today", models.TaskStatusTodo, &now, now)
	deadlinePast := env.createTask(t, "overdue", models.TaskStatusTodo, &twoDaysAgo, now)

	deleted, err := env.service.Purge(now)
	require.NoError(t, err)
	require.Equal(t, 2, deleted)

	var remaining []models.Task
	require.NoError(t, env.db.Find(&remaining).Error)

	ids := make(map[uint64]bool, len(remaining))
	for _, task := range remaining {
		ids[task.ID] = true
	}

	require.False(t, ids[doneStale.ID], "Done task modified a day ago should be purged")
	require.False(t, ids[deadlinePast.ID], "task two days past deadline should be purged")
	require.True(t, ids[doneFresh.ID], "Done task modified today should be retained")
	require.True(t, ids[todoNoDeadline.ID], "open task without deadline should be retained")
	require.True(t, ids[deadlineToday.ID], "task due today should be retained")
}

func TestCleanupService_Purge_DeletesCommentsWithTask(t *testing.T) {
	env := setupCleanupTestEnv(t)
	now := time.Now()

	task := env.createTask(t, "commented", models.TaskStatusDone, nil, now.Add(-48*time.Hour))
	require.NoError(t, env.db.Create(&models.TaskComment{
		Message:  "done at last",
		SenderID: 1,
		TaskID:   task.ID,
	}).Error)

	deleted, err := env.service.Purge(now)
	require.NoError(t, err)
	require.Equal(t, 1, deleted)

	var count int64
	env.db.Model(&models.TaskComment{}).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestCleanupService_Purge_SecondRunIsNoop(t *testing.T) {
	env := setupCleanupTestEnv(t)
	now := time.Now()

	env.createTask(t, "stale", models.TaskStatusDone, nil, now.Add(-72*time.Hour))
	env.createTask(t, "kept", models.TaskStatusTodo, nil, now)

	deleted, err := env.service.Purge(now)
	require.NoError(t, err)
	require.Equal(t, 1, deleted)

	deleted, err = env.service.Purge(now)
	require.NoError(t, err)
	require.Equal(t, 0, deleted)
}
