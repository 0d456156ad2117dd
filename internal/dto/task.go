package dto

import (
	"time"

	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"github.com/mizutani-dev/teamtrack-api/internal/utils"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Deadline    *time.Time          `json:"deadline"`
	Priority    models.TaskPriority `json:"priority"`
	Status      models.TaskStatus   `json:"status"`
	TaskType    string              `json:"task_type,omitempty"`
	TaskTypeID  *uint64             `json:"task_type_id,omitempty"`
	CreatorID   uint64              `json:"creator_id"`
	ProjectID   uint64              `json:"project_id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Creator     *WorkerDTO          `json:"creator,omitempty"`
	Comments    []TaskCommentDTO    `json:"comments,omitempty"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Deadline:    task.Deadline,
		Priority:    task.Priority,
		Status:      task.Status,
		TaskTypeID:  task.TaskTypeID,
		CreatorID:   task.CreatorID,
		ProjectID:   task.ProjectID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.TaskType != nil {
		dto.TaskType = task.TaskType.Name
	}

	if task.Creator.ID != 0 {
		creator := ToWorkerDTO(task.Creator)
		dto.Creator = &creator
	}

	if len(task.Comments) > 0 {
		dto.Comments = make([]TaskCommentDTO, len(task.Comments))
		for i, comment := range task.Comments {
			dto.Comments[i] = ToTaskCommentDTO(comment)
		}
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
