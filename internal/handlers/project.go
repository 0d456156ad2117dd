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

// ProjectHandler coordinates project HTTP handlers, including the invitation
// flow.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a new project; the requester becomes its creator and
// first assignee.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	workerID, exists := middleware.GetWorkerID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateProjectRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		CreatorID:   workerID,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project, true))
}

// ListProjects returns the projects the requester created or is assigned to,
// de-duplicated and ordered by title. An optional title query filters by
// substring.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	workerID, exists := middleware.GetWorkerID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projects, err := h.projectService.ListProjectsForWorker(workerID, c.Query("title"))
	if err != nil {
		respondProjectError(c, err)
		return
	}

	projectDTOs := make([]dto.ProjectDTO, len(projects))
	for i, project := range projects {
		projectDTOs[i] = dto.ToProjectDTO(project, project.CreatorID == workerID)
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projectDTOs,
	})
}

// GetProject returns project details including the assignee set. The project
// was resolved and membership checked by RequireProjectAccess.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	resolved, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not resolved")
		return
	}

	workerID, _ := middleware.GetWorkerID(c)

	project, assignees, err := h.projectService.GetProjectWithAssignees(resolved.ID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDetailDTO(*project, assignees, project.CreatorID == workerID))
}

// UpdateProject updates project fields. Creator-only, enforced by
// RequireProjectCreator.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not resolved")
		return
	}

	type UpdateProjectRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Invalid request body")
		return
	}

	updated, err := h.projectService.UpdateProject(project.ID, services.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*updated, true))
}

// DeleteProject deletes a project and everything owned by it. Creator-only.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not resolved")
		return
	}

	if err := h.projectService.DeleteProject(project.ID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}

// GenerateInvitationCode assigns the project a fresh invitation code,
// invalidating any previous one. Creator-only.
func (h *ProjectHandler) GenerateInvitationCode(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not resolved")
		return
	}

	updated, err := h.projectService.GenerateInvitationCode(project.ID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invitation_code": *updated.InvitationCode,
	})
}

// JoinProject redeems an invitation code for the requester. Joining a project
// the requester already belongs to is a benign no-op.
func (h *ProjectHandler) JoinProject(c *gin.Context) {
	workerID, exists := middleware.GetWorkerID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type JoinRequest struct {
		InvitationCode string `json:"invitation_code" binding:"required"`
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Invalid request body")
		return
	}

	project, alreadyMember, err := h.projectService.JoinByInvitationCode(workerID, req.InvitationCode)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	message := "Successfully joined project"
	if alreadyMember {
		message = "You are already a member of this project"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"project": dto.ToProjectDTO(*project, false),
	})
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidProjectTitle),
		errors.Is(err, services.ErrMalformedInvitationCode):
		apierrors.ValidationFailed(c, err.Error())
	case errors.Is(err, services.ErrNotProjectMember):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrInvalidInvitationCode):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
