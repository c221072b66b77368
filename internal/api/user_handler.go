package api

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warsonwoods/jobs-backend/internal/core"
	"github.com/warsonwoods/jobs-backend/internal/middleware"
	"github.com/warsonwoods/jobs-backend/internal/models"
)

// Profile photos above this size are rejected before sanitization.
const maxPhotoSizeBytes = 5 << 20

// UserHandler handles HTTP requests for profiles, photos and device tokens.
type UserHandler struct {
	userService         core.UserService
	photoService        core.PhotoService
	notificationService core.NotificationService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService core.UserService, photoService core.PhotoService, notificationService core.NotificationService) *UserHandler {
	return &UserHandler{
		userService:         userService,
		photoService:        photoService,
		notificationService: notificationService,
	}
}

// CreateProfile handles POST /users. The document ID is the caller's
// Firebase UID, so a second call for the same account is a conflict.
func (h *UserHandler) CreateProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	userEmail := c.GetString(middleware.ContextUserEmail)

	var req models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.userService.CreateProfile(c.Request.Context(), userID, userEmail, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetMyProfile handles GET /users/me.
func (h *UserHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMyProfile handles PUT /users/me.
func (h *UserHandler) UpdateMyProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadPhoto handles POST /users/me/photo. Expects a multipart form with a
// "photo" file part. Only PNG and JPEG content is accepted.
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A 'photo' file part is required", Details: err.Error()})
		return
	}
	if fileHeader.Size > maxPhotoSizeBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Photo exceeds the 5MB size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("UserHandler: failed to open uploaded photo for user '%s': %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("UserHandler: failed to read uploaded photo for user '%s': %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}

	photoURL, err := h.photoService.UploadProfilePhoto(c.Request.Context(), userID, data)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"photoURL": photoURL})
}

// RegisterDevice handles POST /users/me/devices, storing an FCM token for
// push delivery to the caller.
func (h *UserHandler) RegisterDevice(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.notificationService.RegisterDevice(c.Request.Context(), userID, req.Token); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Device registered"})
}
