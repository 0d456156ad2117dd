package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mizutani-dev/teamtrack-api/internal/dto"
	apierrors "github.com/mizutani-dev/teamtrack-api/internal/errors"
	"github.com/mizutani-dev/teamtrack-api/internal/middleware"
	"github.com/mizutani-dev/teamtrack-api/internal/services"
)

// MessageHandler coordinates task comment and project chat HTTP handlers.
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// ListComments returns a task's comments, newest first.
func (h *MessageHandler) ListComments(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not resolved")
		return
	}

	comments, err := h.messageService.ListComments(task.ID)
	if err != nil {
		respondMessageError(c, err)
		return
	}

	commentDTOs := make([]dto.TaskCommentDTO, len(comments))
	for i, comment := range comments {
		commentDTOs[i] = dto.ToTaskCommentDTO(comment)
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": commentDTOs,
	})
}

// AddComment appends a comment to a task.
func (h *MessageHandler) AddComment(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not resolved")
		return
	}

	workerID, exists := middleware.GetWorkerID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CommentRequest struct {
		Message string `json:"message" binding:"required"`
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Message is required")
		return
	}

	comment, err := h.messageService.AddComment(task.ID, workerID, req.Message)
	if err != nil {
		respondMessageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskCommentDTO(*comment))
}

// ListChat returns a project's chat messages in chronological order.
func (h *MessageHandler) ListChat(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not resolved")
		return
	}

	messages, err := h.messageService.ListChat(project.ID)
	if err != nil {
		respondMessageError(c, err)
		return
	}

	messageDTOs := make([]dto.ChatMessageDTO, len(messages))
	for i, message := range messages {
		messageDTOs[i] = dto.ToChatMessageDTO(message)
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messageDTOs,
	})
}

// SendChatMessage appends a message to a project's chat.
func (h *MessageHandler) SendChatMessage(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not resolved")
		return
	}

	workerID, exists := middleware.GetWorkerID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ChatRequest struct {
		Message string `json:"message" binding:"required"`
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Message is required")
		return
	}

	message, err := h.messageService.AddChatMessage(project.ID, workerID, req.Message)
	if err != nil {
		respondMessageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToChatMessageDTO(*message))
}

func respondMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyMessage):
		apierrors.ValidationFailed(c, err.Error())
	case errors.Is(err, services.ErrNotProjectMember):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
