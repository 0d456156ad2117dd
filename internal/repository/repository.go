package repository

import (
	"github.com/mizutani-dev/teamtrack-api/internal/models"
)

// WorkerRepository defines the interface for worker data access
type WorkerRepository interface {
	// Create creates a new worker
	Create(worker *models.Worker) error

	// FindByID finds a worker by ID
	FindByID(id uint64) (*models.Worker, error)

	// FindByUsername finds a worker by username
	FindByUsername(username string) (*models.Worker, error)

	// Update persists profile changes
	Update(worker *models.Worker) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// CreateWithCreator creates a project and the creator's assignee row
	// within a single transaction.
	CreateWithCreator(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// FindByInvitationCode finds a project by its active invitation code
	FindByInvitationCode(code string) (*models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete deletes a project and everything owned by it
	Delete(id uint64) error

	// AddAssignee adds a worker to the project's assignee set
	AddAssignee(assignee *models.ProjectAssignee) error

	// FindAssignee finds a specific assignee row
	FindAssignee(projectID, workerID uint64) (*models.ProjectAssignee, error)

	// ListAssignees lists the assignees of a project
	ListAssignees(projectID uint64) ([]models.ProjectAssignee, error)

	// ListForWorker returns the de-duplicated union of projects the worker
	// created and projects the worker is assigned to, ordered by title.
	ListForWorker(workerID uint64, titleFilter string) ([]models.Project, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	// Name filters by case-insensitive substring match on the task name.
	Name     string
	Page     int
	PageSize int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// ListByProject retrieves a project's tasks with filtering and pagination
	ListByProject(projectID uint64, filter TaskFilter) ([]models.Task, int64, error)

	// ListAll retrieves every task; used by the cleanup pass.
	ListAll() ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task and its comments
	Delete(id uint64) error
}

// MessageRepository defines the interface for comment and chat data access
type MessageRepository interface {
	// CreateComment appends a comment to a task
	CreateComment(comment *models.TaskComment) error

	// ListCommentsByTask returns a task's comments, newest first
	ListCommentsByTask(taskID uint64) ([]models.TaskComment, error)

	// CreateChatMessage appends a message to a project's chat
	CreateChatMessage(message *models.ChatMessage) error

	// ListChatByProject returns a project's chat in chronological order
	ListChatByProject(projectID uint64) ([]models.ChatMessage, error)
}

// LookupRepository defines the interface for the named lookup entities
type LookupRepository interface {
	// ListPositions lists all positions
	ListPositions() ([]models.Position, error)

	// ListTaskTypes lists all task types
	ListTaskTypes() ([]models.TaskType, error)

	// DeleteTaskType removes a task type, clearing task references
	DeleteTaskType(id uint64) error
}
