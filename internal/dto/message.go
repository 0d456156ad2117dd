package dto

import (
	"time"

	"github.com/mizutani-dev/teamtrack-api/internal/models"
)

// TaskCommentDTO represents a task comment in API responses
type TaskCommentDTO struct {
	ID        uint64     `json:"id"`
	Message   string     `json:"message"`
	SenderID  uint64     `json:"sender_id"`
	Sender    *WorkerDTO `json:"sender,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ChatMessageDTO represents a chat message in API responses
type ChatMessageDTO struct {
	ID        uint64     `json:"id"`
	Message   string     `json:"message"`
	SenderID  uint64     `json:"sender_id"`
	Sender    *WorkerDTO `json:"sender,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToTaskCommentDTO converts a TaskComment model to TaskCommentDTO
func ToTaskCommentDTO(comment models.TaskComment) TaskCommentDTO {
	dto := TaskCommentDTO{
		ID:        comment.ID,
		Message:   comment.Message,
		SenderID:  comment.SenderID,
		CreatedAt: comment.CreatedAt,
	}
	if comment.Sender.ID != 0 {
		sender := ToWorkerDTO(comment.Sender)
		dto.Sender = &sender
	}
	return dto
}

// ToChatMessageDTO converts a ChatMessage model to ChatMessageDTO
func ToChatMessageDTO(message models.ChatMessage) ChatMessageDTO {
	dto := ChatMessageDTO{
		ID:        message.ID,
		Message:   message.Message,
		SenderID:  message.SenderID,
		CreatedAt: message.CreatedAt,
	}
	if message.Sender.ID != 0 {
		sender := ToWorkerDTO(message.Sender)
		dto.Sender = &sender
	}
	return dto
}
