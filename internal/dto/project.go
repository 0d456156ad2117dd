package dto

import (
	"time"

	"github.com/mizutani-dev/teamtrack-api/internal/models"
)

// ProjectDTO represents a project in API responses. The invitation code is
// only included for the creator.
type ProjectDTO struct {
	ID             uint64    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CreatorID      uint64    `json:"creator_id"`
	InvitationCode string    `json:"invitation_code,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProjectAssigneeDTO represents an assignee in project detail responses
type ProjectAssigneeDTO struct {
	Worker   WorkerDTO `json:"worker"`
	JoinedAt time.Time `json:"joined_at"`
}

// ProjectDetailDTO represents detailed project information
type ProjectDetailDTO struct {
	ProjectDTO
	Creator   *WorkerDTO           `json:"creator,omitempty"`
	Assignees []ProjectAssigneeDTO `json:"assignees"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project, includeInvitationCode bool) ProjectDTO {
	dto := ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		CreatorID:   project.CreatorID,
		CreatedAt:   project.CreatedAt,
	}
	if includeInvitationCode && project.InvitationCode != nil {
		dto.InvitationCode = *project.InvitationCode
	}
	return dto
}

// ToProjectDetailDTO converts a project and its assignees to a detail DTO
func ToProjectDetailDTO(project models.Project, assignees []models.ProjectAssignee, includeInvitationCode bool) ProjectDetailDTO {
	detail := ProjectDetailDTO{
		ProjectDTO: ToProjectDTO(project, includeInvitationCode),
		Assignees:  make([]ProjectAssigneeDTO, len(assignees)),
	}

	if project.Creator.ID != 0 {
		creator := ToWorkerDTO(project.Creator)
		detail.Creator = &creator
	}

	for i, assignee := range assignees {
		detail.Assignees[i] = ProjectAssigneeDTO{
			Worker:   ToWorkerDTO(assignee.Worker),
			JoinedAt: assignee.JoinedAt,
		}
	}

	return detail
}
