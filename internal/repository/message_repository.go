package repository

import (
	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"gorm.io/gorm"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// CreateComment appends a comment to a task
func (r *GormMessageRepository) CreateComment(comment *models.TaskComment) error {
	return r.db.Create(comment).Error
}

// ListCommentsByTask returns a task's comments, newest first
func (r *GormMessageRepository) ListCommentsByTask(taskID uint64) ([]models.TaskComment, error) {
	var comments []models.TaskComment
	if err := r.db.Preload("Sender").
		Where("task_id = ?", taskID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateChatMessage appends a message to a project's chat
func (r *GormMessageRepository) CreateChatMessage(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

// ListChatByProject returns a project's chat in chronological order
func (r *GormMessageRepository) ListChatByProject(projectID uint64) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := r.db.Preload("Sender").
		Where("project_id = ?", projectID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
