package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/mizutani-dev/teamtrack-api/internal/errors"
	"github.com/mizutani-dev/teamtrack-api/internal/repository"
)

// LookupHandler serves the named lookup entities used to populate forms.
type LookupHandler struct {
	lookupRepo repository.LookupRepository
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(lookupRepo repository.LookupRepository) *LookupHandler {
	return &LookupHandler{
		lookupRepo: lookupRepo,
	}
}

// ListPositions returns all positions.
func (h *LookupHandler) ListPositions(c *gin.Context) {
	positions, err := h.lookupRepo.ListPositions()
	if err != nil {
		apierrors.InternalError(c, "Failed to list positions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"positions": positions,
	})
}

// ListTaskTypes returns all task types.
func (h *LookupHandler) ListTaskTypes(c *gin.Context) {
	taskTypes, err := h.lookupRepo.ListTaskTypes()
	if err != nil {
		apierrors.InternalError(c, "Failed to list task types")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task_types": taskTypes,
	})
}

// DeleteTaskType removes a task type. Tasks that referenced it keep existing
// with the reference cleared.
func (h *LookupHandler) DeleteTaskType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.ValidationFailed(c, "Invalid task type ID")
		return
	}

	if err := h.lookupRepo.DeleteTaskType(id); err != nil {
		apierrors.InternalError(c, "Failed to delete task type")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task type deleted successfully",
	})
}
