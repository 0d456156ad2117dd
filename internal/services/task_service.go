package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mizutani-dev/teamtrack-api/internal/constants"
	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"github.com/mizutani-dev/teamtrack-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound            = errors.New("task not found")
	ErrNotTaskCreator          = errors.New("only the task creator can perform this action")
	ErrTaskNameRequired        = errors.New("task name is required")
	ErrTaskNameEmpty           = errors.New("task name cannot be empty")
	ErrInvalidTaskPriority     = errors.New("invalid task priority")
	ErrInvalidTaskStatus       = errors.New("invalid task status")
	ErrSuggestionNotConfigured = errors.New("task suggestion service is not configured")
	ErrNoTasksSuggested        = errors.New("no tasks could be suggested from the given text")
)

// TaskService handles task lifecycle business logic.
type TaskService struct {
	taskRepo       repository.TaskRepository
	projectRepo    repository.ProjectRepository
	projectService *ProjectService
	suggestions    *SuggestionService
}

// NewTaskService creates a new TaskService. suggestions may be nil when no
// API key is configured.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, projectService *ProjectService, suggestions *SuggestionService) *TaskService {
	return &TaskService{
		taskRepo:       taskRepo,
		projectRepo:    projectRepo,
		projectService: projectService,
		suggestions:    suggestions,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Name        string
	Description string
	Deadline    *time.Time
	Priority    models.TaskPriority
	Status      models.TaskStatus
	TaskTypeID  *uint64
	ProjectID   uint64
	CreatorID   uint64
}

// UpdateTaskInput represents input for updating a task.
type UpdateTaskInput struct {
	Name          *string
	Description   *string
	Deadline      *time.Time
	ClearDeadline bool
	Priority      *models.TaskPriority
	Status        *models.TaskStatus
	TaskTypeID    *uint64
	ClearTaskType bool
}

// ListTasks returns a project's tasks, optionally filtered by name substring.
func (s *TaskService) ListTasks(projectID uint64, filter repository.TaskFilter) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.ListByProject(projectID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// GetTask returns a task with related data.
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Creator", "TaskType", "Comments", "Comments.Sender")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// CreateTask creates a new task for a project member, applying the default
// priority and status when unspecified.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTaskNameRequired
	}

	if err := s.ensureProjectMember(input.ProjectID, input.CreatorID); err != nil {
		return nil, err
	}

	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	} else if !validPriority(input.Priority) {
		return nil, ErrInvalidTaskPriority
	}

	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	} else if !validStatus(input.Status) {
		return nil, ErrInvalidTaskStatus
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		Deadline:    input.Deadline,
		Priority:    input.Priority,
		Status:      input.Status,
		TaskTypeID:  input.TaskTypeID,
		ProjectID:   input.ProjectID,
		CreatorID:   input.CreatorID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Creator", "TaskType")
}

// UpdateTask applies field changes to a task. Only the creator may edit,
// regardless of broader project membership.
func (s *TaskService) UpdateTask(taskID, actorID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.CreatorID != actorID {
		return nil, ErrNotTaskCreator
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrTaskNameEmpty
		}
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.ClearDeadline {
		task.Deadline = nil
	} else if input.Deadline != nil {
		task.Deadline = input.Deadline
	}
	if input.Priority != nil {
		if !validPriority(*input.Priority) {
			return nil, ErrInvalidTaskPriority
		}
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		// Any status may be set directly; transitions are unrestricted.
		if !validStatus(*input.Status) {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = *input.Status
	}
	if input.ClearTaskType {
		task.TaskTypeID = nil
		task.TaskType = nil
	} else if input.TaskTypeID != nil {
		task.TaskTypeID = input.TaskTypeID
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Creator", "TaskType")
}

// DeleteTask deletes a task if the actor is its creator.
func (s *TaskService) DeleteTask(taskID, actorID uint64) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if task.CreatorID != actorID {
		return ErrNotTaskCreator
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// SuggestTasksInput represents input for task draft suggestion.
type SuggestTasksInput struct {
	Text      string
	ProjectID uint64
	WorkerID  uint64
}

// SuggestTasks produces task drafts from free text for a project member. The
// drafts are not persisted; the caller reviews and creates them explicitly.
func (s *TaskService) SuggestTasks(ctx context.Context, input SuggestTasksInput) ([]TaskDraft, error) {
	if s.suggestions == nil {
		return nil, ErrSuggestionNotConfigured
	}

	if err := s.ensureProjectMember(input.ProjectID, input.WorkerID); err != nil {
		return nil, err
	}

	drafts, err := s.suggestions.DraftTasksFromText(ctx, input.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest tasks: %w", err)
	}

	if len(drafts) > constants.MaxSuggestedTasks {
		drafts = drafts[:constants.MaxSuggestedTasks]
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	valid := make([]TaskDraft, 0, len(drafts))
	for _, draft := range drafts {
		if strings.TrimSpace(draft.Name) == "" {
			continue
		}
		if draft.Deadline != nil && draft.Deadline.Before(cutoff) {
			draft.Deadline = nil
		}
		valid = append(valid, draft)
	}

	if len(valid) == 0 {
		return nil, ErrNoTasksSuggested
	}

	return valid, nil
}

// ensureProjectMember verifies the worker is a member of the project.
func (s *TaskService) ensureProjectMember(projectID, workerID uint64) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	member, err := s.projectService.IsMember(project, workerID)
	if err != nil {
		return err
	}
	if !member {
		return ErrNotProjectMember
	}
	return nil
}

func validPriority(p models.TaskPriority) bool {
	switch p {
	case models.TaskPriorityHigh, models.TaskPriorityMedium, models.TaskPriorityLow:
		return true
	}
	return false
}

func validStatus(s models.TaskStatus) bool {
	switch s {
	case models.TaskStatusTodo, models.TaskStatusDoing, models.TaskStatusDone:
		return true
	}
	return false
}
