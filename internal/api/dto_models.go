package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warsonwoods/jobs-backend/internal/core"
	"github.com/warsonwoods/jobs-backend/internal/db"
)

// ErrorResponse represents a standardized error message format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse represents a standardized success message format.
type SuccessResponse struct {
	Message string `json:"message"`
}

// writeServiceError maps service and repository sentinel errors to HTTP
// status codes. Unknown errors become a generic 500; the detail is logged
// server-side only.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidJob), errors.Is(err, core.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrJobNotFound), errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrProfileExists), errors.Is(err, core.ErrReviewExists),
		errors.Is(err, db.ErrJobAwarded), errors.Is(err, db.ErrJobArchived),
		errors.Is(err, db.ErrNotApplicant), errors.Is(err, core.ErrJobNotAwarded),
		errors.Is(err, core.ErrJobNotStarted):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrUnsupportedImage):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("API: unexpected service error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
