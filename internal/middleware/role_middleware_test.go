package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/warsonwoods/jobs-backend/internal/core"
	"github.com/warsonwoods/jobs-backend/internal/models"
)

// fakeUserService resolves profiles from a fixed map.
type fakeUserService struct {
	users map[string]*models.User
}

func (s *fakeUserService) GetByID(_ context.Context, userID string) (*models.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserService) CreateProfile(context.Context, string, string, models.CreateProfileRequest) (*models.User, error) {
	return nil, nil
}

func (s *fakeUserService) UpdateProfile(context.Context, string, models.UpdateProfileRequest) (*models.User, error) {
	return nil, nil
}

func (s *fakeUserService) ListWorkers(context.Context) ([]*models.User, error) { return nil, nil }

func (s *fakeUserService) ListParents(context.Context) ([]*models.User, error) { return nil, nil }

func roleTestRouter(userService core.UserService, callerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if callerID != "" {
			c.Set(ContextUserID, callerID)
		}
	})
	router.GET("/parent-only", RequireRole(userService, models.RoleParent), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireRole(t *testing.T) {
	userService := &fakeUserService{users: map[string]*models.User{
		"parent-1": {ID: "parent-1", Type: models.RoleParent},
		"worker-1": {ID: "worker-1", Type: models.RoleWorker},
	}}

	tests := []struct {
		name       string
		callerID   string
		wantStatus int
	}{
		{"matching role", "parent-1", http.StatusOK},
		{"wrong role", "worker-1", http.StatusForbidden},
		{"no profile", "stranger", http.StatusForbidden},
		{"unauthenticated", "", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := roleTestRouter(userService, tc.callerID)
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/parent-only", nil)

			router.ServeHTTP(recorder, request)
			assert.Equal(t, tc.wantStatus, recorder.Code)
		})
	}
}
