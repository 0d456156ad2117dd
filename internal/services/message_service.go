package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"github.com/mizutani-dev/teamtrack-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEmptyMessage = errors.New("message cannot be empty")
)

// MessageService handles task comments and project chat. Both are
// append-only; no edit or delete is exposed.
type MessageService struct {
	messageRepo    repository.MessageRepository
	taskRepo       repository.TaskRepository
	projectRepo    repository.ProjectRepository
	projectService *ProjectService
}

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, projectService *ProjectService) *MessageService {
	return &MessageService{
		messageRepo:    messageRepo,
		taskRepo:       taskRepo,
		projectRepo:    projectRepo,
		projectService: projectService,
	}
}

// AddComment appends a comment to a task. The sender must be a member of the
// owning project, not merely the task's creator.
func (s *MessageService) AddComment(taskID, senderID uint64, message string) (*models.TaskComment, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.ensureMember(task.ProjectID, senderID); err != nil {
		return nil, err
	}

	comment := &models.TaskComment{
		Message:  message,
		SenderID: senderID,
		TaskID:   taskID,
	}

	if err := s.messageRepo.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ListComments returns a task's comments, newest first.
func (s *MessageService) ListComments(taskID uint64) ([]models.TaskComment, error) {
	comments, err := s.messageRepo.ListCommentsByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// AddChatMessage appends a message to a project's chat. The sender must be
// the project's creator or one of its assignees.
func (s *MessageService) AddChatMessage(projectID, senderID uint64, message string) (*models.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	if err := s.ensureMember(projectID, senderID); err != nil {
		return nil, err
	}

	chatMessage := &models.ChatMessage{
		Message:   message,
		SenderID:  senderID,
		ProjectID: projectID,
	}

	if err := s.messageRepo.CreateChatMessage(chatMessage); err != nil {
		return nil, fmt.Errorf("failed to create chat message: %w", err)
	}

	return chatMessage, nil
}

// ListChat returns a project's chat messages in chronological order.
func (s *MessageService) ListChat(projectID uint64) ([]models.ChatMessage, error) {
	messages, err := s.messageRepo.ListChatByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

func (s *MessageService) ensureMember(projectID, workerID uint64) error {
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
