package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neulketing/instaup-backend/internal/config"
	"github.com/neulketing/instaup-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Env: "test", UploadDir: t.TempDir()}
	jwtManager := jwt.NewManager("test-secret", time.Hour, time.Hour)

	router := gin.New()
	Setup(router, Handlers{}, jwtManager, nil, cfg)
	return router
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/api/admin/health"} {
		t.Run("인증 없이 "+path+" 조회", func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Status    string          `json:"status"`
				Timestamp string          `json:"timestamp"`
				Features  map[string]bool `json:"features"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			assert.Equal(t, "healthy", body.Status)
			assert.NotEmpty(t, body.Timestamp)
			for _, feature := range []string{
				"platformManagement",
				"categoryManagement",
				"serviceSlotManagement",
				"iconUpload",
				"bulkOperations",
			} {
				assert.True(t, body.Features[feature], feature)
			}
			assert.False(t, body.Features["cache"])
		})
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/platforms", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
