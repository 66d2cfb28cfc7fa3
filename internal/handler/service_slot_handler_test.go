package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

// recordingCache 무효화된 엔티티 키를 기록하는 cache.Service 구현
type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) Get(ctx context.Context, key string, dest interface{}) error {
	return errors.New("cache miss")
}

func (c *recordingCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (c *recordingCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (c *recordingCache) GetList(ctx context.Context, entity, query string) ([]byte, error) {
	return nil, errors.New("cache miss")
}

func (c *recordingCache) SetList(ctx context.Context, entity, query string, data interface{}) error {
	return nil
}

func (c *recordingCache) InvalidateEntity(ctx context.Context, entity string) error {
	c.invalidated = append(c.invalidated, entity)
	return nil
}

func (c *recordingCache) IsAvailable() bool              { return true }
func (c *recordingCache) Ping(ctx context.Context) error { return nil }

// stubSlotService 항상 고정 응답을 돌려주는 ServiceSlotService 구현
type stubSlotService struct {
	resp *domain.ServiceSlotResponse
}

func (s *stubSlotService) List(domain.ServiceSlotFilter) (*domain.ServiceSlotListResult, error) {
	return &domain.ServiceSlotListResult{}, nil
}

func (s *stubSlotService) Get(string) (*domain.ServiceSlotResponse, error) { return s.resp, nil }

func (s *stubSlotService) Create(*domain.CreateServiceSlotRequest) (*domain.ServiceSlotResponse, error) {
	return s.resp, nil
}

func (s *stubSlotService) Update(string, *domain.UpdateServiceSlotRequest) (*domain.ServiceSlotResponse, error) {
	return s.resp, nil
}

func (s *stubSlotService) Delete(string) error { return nil }

func (s *stubSlotService) ToggleStatus(string, bool) (*domain.ServiceSlotResponse, error) {
	return s.resp, nil
}

func (s *stubSlotService) Duplicate(string) (*domain.ServiceSlotResponse, error) {
	return s.resp, nil
}

func newSlotRouter(cacheSvc *recordingCache) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewServiceSlotHandler(&stubSlotService{resp: &domain.ServiceSlotResponse{ID: "s1"}}, cacheSvc)
	router := gin.New()
	router.PUT("/service-slots/:id", h.Update)
	router.POST("/service-slots/:id/duplicate", h.Duplicate)
	return router
}

func TestServiceSlotHandler_CacheInvalidation(t *testing.T) {
	t.Run("복제는 부모 목록 캐시까지 무효화한다", func(t *testing.T) {
		cacheSvc := &recordingCache{}
		router := newSlotRouter(cacheSvc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/service-slots/s1/duplicate", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.ElementsMatch(t,
			[]string{cacheEntityServiceSlots, cacheEntityCategories, cacheEntityPlatforms},
			cacheSvc.invalidated)
	})

	t.Run("수정도 부모 목록 캐시까지 무효화한다", func(t *testing.T) {
		cacheSvc := &recordingCache{}
		router := newSlotRouter(cacheSvc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/service-slots/s1",
			strings.NewReader(`{"platformId":"p2","categoryId":"c2"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.ElementsMatch(t,
			[]string{cacheEntityServiceSlots, cacheEntityCategories, cacheEntityPlatforms},
			cacheSvc.invalidated)
	})
}
