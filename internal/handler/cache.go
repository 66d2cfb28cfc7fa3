package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/pkg/cache"
	"github.com/neulketing/instaup-backend/pkg/logger"
)

// Cache entity keys for list responses
const (
	cacheEntityPlatforms    = "platforms"
	cacheEntityCategories   = "categories"
	cacheEntityServiceSlots = "serviceSlots"
	cacheEntityIcons        = "icons"
)

// serveCachedList writes the cached envelope if one exists for the query string.
// 적중 여부는 X-Cache 헤더로 내려간다.
func serveCachedList(c *gin.Context, cacheSvc cache.Service, entity string) bool {
	if cacheSvc == nil || !cacheSvc.IsAvailable() {
		return false
	}

	raw, err := cacheSvc.GetList(c.Request.Context(), entity, c.Request.URL.RawQuery)
	if err != nil {
		c.Header("X-Cache", "MISS")
		return false
	}

	c.Header("X-Cache", "HIT")
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
	return true
}

// storeCachedList saves the success envelope for later hits
func storeCachedList(c *gin.Context, cacheSvc cache.Service, entity string, data interface{}) {
	if cacheSvc == nil || !cacheSvc.IsAvailable() {
		return
	}

	envelope := common.Response{Success: true, Data: data}
	if err := cacheSvc.SetList(c.Request.Context(), entity, c.Request.URL.RawQuery, envelope); err != nil {
		logger.GetLogger().Warn().Err(err).Str("entity", entity).Msg("목록 캐시 저장 실패")
	}
}

// invalidateCache drops every cached list page for the given entities
func invalidateCache(c *gin.Context, cacheSvc cache.Service, entities ...string) {
	if cacheSvc == nil || !cacheSvc.IsAvailable() {
		return
	}

	for _, entity := range entities {
		if err := cacheSvc.InvalidateEntity(c.Request.Context(), entity); err != nil {
			logger.GetLogger().Warn().Err(err).Str("entity", entity).Msg("목록 캐시 무효화 실패")
		}
	}
}
