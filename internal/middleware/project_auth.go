package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mizutani-dev/teamtrack-api/internal/database"
	apierrors "github.com/mizutani-dev/teamtrack-api/internal/errors"
	"github.com/mizutani-dev/teamtrack-api/internal/models"
)

// Context keys for entities resolved by the route guards.
const (
	ContextKeyProject = "project"
	ContextKeyTask    = "task"
)

// RequireProjectAccess resolves the project from the URL and checks the
// membership predicate: the requester must be the creator or an assignee.
// A missing project is 404; an existing project the requester may not see
// is 403, so "exists but denied" stays distinct from "does not exist".
func RequireProjectAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectIDStr := c.Param("id")
		projectID, err := strconv.ParseUint(projectIDStr, 10, 64)
		if err != nil {
			apierrors.ValidationFailed(c, "Invalid project ID")
			c.Abort()
			return
		}

		workerID, exists := GetWorkerID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var project models.Project
		if err := database.GetDB().First(&project, projectID).Error; err != nil {
			apierrors.NotFound(c, "Project not found")
			c.Abort()
			return
		}

		// The creator is implicitly a member even without an assignee row.
		if project.CreatorID != workerID {
			var assignee models.ProjectAssignee
			err := database.GetDB().
				Where("project_id = ? AND worker_id = ?", projectID, workerID).
				First(&assignee).Error
			if err != nil {
				apierrors.Forbidden(c, "You are not a member of this project")
				c.Abort()
				return
			}
		}

		c.Set(ContextKeyProject, project)
		c.Next()
	}
}

// RequireProjectCreator restricts the route to the project's creator. It runs
// after RequireProjectAccess, which resolved the project.
func RequireProjectCreator() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectInterface, exists := c.Get(ContextKeyProject)
		if !exists {
			apierrors.InternalError(c, "Project not resolved")
			c.Abort()
			return
		}

		project, ok := projectInterface.(models.Project)
		if !ok {
			apierrors.InternalError(c, "Invalid project data")
			c.Abort()
			return
		}

		workerID, _ := GetWorkerID(c)
		if project.CreatorID != workerID {
			apierrors.Forbidden(c, "Only the project creator can perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetProject retrieves the resolved project from context.
func GetProject(c *gin.Context) (models.Project, bool) {
	projectInterface, exists := c.Get(ContextKeyProject)
	if !exists {
		return models.Project{}, false
	}
	project, ok := projectInterface.(models.Project)
	return project, ok
}
