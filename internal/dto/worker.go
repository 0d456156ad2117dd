package dto

import (
	"github.com/mizutani-dev/teamtrack-api/internal/models"
)

// WorkerDTO represents a worker in API responses
type WorkerDTO struct {
	ID         uint64  `json:"id"`
	Username   string  `json:"username"`
	FirstName  string  `json:"first_name,omitempty"`
	LastName   string  `json:"last_name,omitempty"`
	Position   string  `json:"position,omitempty"`
	PositionID *uint64 `json:"position_id,omitempty"`
	AvatarPath string  `json:"avatar_path,omitempty"`
}

// ToWorkerDTO converts a Worker model to WorkerDTO
func ToWorkerDTO(worker models.Worker) WorkerDTO {
	dto := WorkerDTO{
		ID:         worker.ID,
		Username:   worker.Username,
		FirstName:  worker.FirstName,
		LastName:   worker.LastName,
		PositionID: worker.PositionID,
		AvatarPath: worker.AvatarPath,
	}
	if worker.Position != nil {
		dto.Position = worker.Position.Name
	}
	return dto
}
