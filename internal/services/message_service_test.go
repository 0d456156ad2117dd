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

type messageTestEnv struct {
	db             *gorm.DB
	service        *MessageService
	projectService *ProjectService
	taskService    *TaskService
}

func setupMessageTestEnv(t *testing.T) messageTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Worker{},
		&models.Project{},
		&models.ProjectAssignee{},
		&models.Task{},
		&models.TaskComment{},
		&models.ChatMessage{},
	)
	require.NoError(t, err)

	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	projectService := NewProjectService(projectRepo)
	taskService := NewTaskService(taskRepo, projectRepo, projectService, nil)
	messageService := NewMessageService(repository.NewMessageRepository(db), taskRepo, projectRepo, projectService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return messageTestEnv{
		db:             db,
		service:        messageService,
		projectService: projectService,
		taskService:    taskService,
	}
}

func (env messageTestEnv) createWorker(t *testing.T, username string) *models.Worker {
	t.Helper()
	worker := &models.Worker{
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, env.db.Create(worker).Error)
	return worker
}

func (env messageTestEnv) setup(t *testing.T) (creator *models.Worker, project *models.Project, task *models.Task) {
	t.Helper()

	creator = env.createWorker(t, "alice")

	p, err := env.projectService.CreateProject(CreateProjectInput{
		Title:     "Apollo",
		CreatorID: creator.ID,
	})
	require.NoError(t, err)

	tk, err := env.taskService.CreateTask(CreateTaskInput{
		Name:      "Discussed task",
		ProjectID: p.ID,
		CreatorID: creator.ID,
	})
	require.NoError(t, err)

	return creator, p, tk
}

func TestMessageService_AddComment_RequiresMembership(t *testing.T) {
	env := setupMessageTestEnv(t)
	_, _, task := env.setup(t)
	mallory := env.createWorker(t, "mallory")

	_, err := env.service.AddComment(task.ID, mallory.ID, "drive-by comment")
	require.ErrorIs(t, err, ErrNotProjectMember)
}

func TestMessageService_AddComment_RejectsEmptyMessage(t *testing.T) {
	env := setupMessageTestEnv(t)
	creator, _, task := env.setup(t)

	_, err := env.service.AddComment(task.ID, creator.ID, "   ")
	require.ErrorIs(t, err, ErrEmptyMessage)
}

func TestMessageService_ListComments_NewestFirst(t *testing.T) {
	env := setupMessageTestEnv(t)
	creator, _, task := env.setup(t)

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"first", "second", "third"} {
		comment := &models.TaskComment{
			Message:  text,
			SenderID: creator.ID,
			TaskID:   task.ID,
		}
		require.NoError(t, env.db.Create(comment).Error)
		require.NoError(t, env.db.Model(comment).
			UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	comments, err := env.service.ListComments(task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "third", comments[0].Message)
	require.Equal(t, "first", comments[2].Message)
}

func TestMessageService_Chat_ChronologicalOrder(t *testing.T) {
	env := setupMessageTestEnv(t)
	creator, project, _ := env.setup(t)

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"morning", "noon", "evening"} {
		message := &models.ChatMessage{
			Message:   text,
			SenderID:  creator.ID,
			ProjectID: project.ID,
		}
		require.NoError(t, env.db.Create(message).Error)
		require.NoError(t, env.db.Model(message).
			UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	messages, err := env.service.ListChat(project.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	require.Equal(t, "morning", messages[0].Message)
	require.Equal(t, "evening", messages[2].Message)
}

func TestMessageService_AddChatMessage_AssigneeMaySend(t *testing.T) {
	env := setupMessageTestEnv(t)
	_, project, _ := env.setup(t)

	bob := env.createWorker(t, "bob")
	withCode, err := env.projectService.GenerateInvitationCode(project.ID)
	require.NoError(t, err)
	_, _, err = env.projectService.JoinByInvitationCode(bob.ID, *withCode.InvitationCode)
	require.NoError(t, err)

	message, err := env.service.AddChatMessage(project.ID, bob.ID, "hello from bob")
	require.NoError(t, err)
	require.Equal(t, bob.ID, message.SenderID)

	mallory := env.createWorker(t, "mallory")
	_, err = env.service.AddChatMessage(project.ID, mallory.ID, "let me in")
	require.ErrorIs(t, err, ErrNotProjectMember)
}
