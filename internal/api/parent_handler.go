package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warsonwoods/jobs-backend/internal/core"
)

// ParentHandler handles the worker-facing parent directory.
type ParentHandler struct {
	userService core.UserService
}

// NewParentHandler creates a new ParentHandler.
func NewParentHandler(userService core.UserService) *ParentHandler {
	return &ParentHandler{userService: userService}
}

// ListParents handles GET /parents, newest members first.
func (h *ParentHandler) ListParents(c *gin.Context) {
	parents, err := h.userService.ListParents(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, parents)
}

// GetParent handles GET /parents/:parentId.
func (h *ParentHandler) GetParent(c *gin.Context) {
	parent, err := h.userService.GetByID(c.Request.Context(), c.Param("parentId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, parent)
}
