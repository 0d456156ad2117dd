package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mizutani-dev/teamtrack-api/internal/database"
	apierrors "github.com/mizutani-dev/teamtrack-api/internal/errors"
	"github.com/mizutani-dev/teamtrack-api/internal/models"
)

// RequireTaskInProject resolves the task from the URL and verifies it belongs
// to the project resolved by RequireProjectAccess. Membership was already
// checked at the project level; task edit rights are narrower and enforced by
// the task service.
func RequireTaskInProject() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskIDStr := c.Param("task_id")
		taskID, err := strconv.ParseUint(taskIDStr, 10, 64)
		if err != nil {
			apierrors.ValidationFailed(c, "Invalid task ID")
			c.Abort()
			return
		}

		project, ok := GetProject(c)
		if !ok {
			apierrors.InternalError(c, "Project not resolved")
			c.Abort()
			return
		}

		var task models.Task
		if err := database.GetDB().
			Preload("Creator").
			Preload("TaskType").
			First(&task, taskID).Error; err != nil {
			apierrors.NotFound(c, "Task not found")
			c.Abort()
			return
		}

		if task.ProjectID != project.ID {
			apierrors.NotFound(c, "Task not found")
			c.Abort()
			return
		}

		c.Set(ContextKeyTask, task)
		c.Next()
	}
}

// GetTask retrieves the resolved task from context.
func GetTask(c *gin.Context) (models.Task, bool) {
	taskInterface, exists := c.Get(ContextKeyTask)
	if !exists {
		return models.Task{}, false
	}
	task, ok := taskInterface.(models.Task)
	return task, ok
}
