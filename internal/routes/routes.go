package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/neulketing/instaup-backend/internal/config"
	"github.com/neulketing/instaup-backend/internal/handler"
	"github.com/neulketing/instaup-backend/internal/middleware"
	"github.com/neulketing/instaup-backend/pkg/cache"
	"github.com/neulketing/instaup-backend/pkg/jwt"
)

// Handlers bundles every catalog handler for route registration
type Handlers struct {
	Platform    *handler.PlatformHandler
	Category    *handler.CategoryHandler
	ServiceSlot *handler.ServiceSlotHandler
	Icon        *handler.IconHandler
	Bulk        *handler.BulkHandler
}

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	h Handlers,
	jwtManager *jwt.Manager,
	cacheSvc cache.Service,
	cfg *config.Config,
) {
	// Health check (인증 불필요)
	healthCheck := func(c *gin.Context) {
		redisUp := cacheSvc != nil && cacheSvc.IsAvailable() &&
			cacheSvc.Ping(c.Request.Context()) == nil

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"env":       cfg.Env,
			"features": gin.H{
				"platformManagement":    true,
				"categoryManagement":    true,
				"serviceSlotManagement": true,
				"iconUpload":            true,
				"bulkOperations":        true,
				"cache":                 redisUp,
			},
		})
	}
	router.GET("/health", healthCheck)
	router.GET("/api/admin/health", healthCheck)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 업로드된 아이콘 정적 서빙
	router.Static("/uploads", cfg.UploadDir)

	// Admin API (JWT + 관리자 레벨)
	api := router.Group("/api/admin",
		middleware.JWTAuth(jwtManager),
		middleware.RequireAdmin(),
	)

	platforms := api.Group("/platforms")
	{
		platforms.GET("", h.Platform.List)
		platforms.GET("/:id", h.Platform.Get)
		platforms.POST("", h.Platform.Create)
		platforms.PUT("/:id", h.Platform.Update)
		platforms.DELETE("/:id", h.Platform.Delete)
		platforms.PATCH("/:id/toggle", h.Platform.ToggleStatus)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
		categories.PATCH("/:id/toggle", h.Category.ToggleStatus)
	}

	serviceSlots := api.Group("/service-slots")
	{
		serviceSlots.GET("", h.ServiceSlot.List)
		serviceSlots.GET("/:id", h.ServiceSlot.Get)
		serviceSlots.POST("", h.ServiceSlot.Create)
		serviceSlots.PUT("/:id", h.ServiceSlot.Update)
		serviceSlots.DELETE("/:id", h.ServiceSlot.Delete)
		serviceSlots.PATCH("/:id/toggle", h.ServiceSlot.ToggleStatus)
		serviceSlots.POST("/:id/duplicate", h.ServiceSlot.Duplicate)
	}

	icons := api.Group("/icons")
	{
		icons.GET("", h.Icon.List)
		icons.GET("/:id", h.Icon.Get)
		icons.DELETE("/:id", h.Icon.Delete)
	}
	api.POST("/upload/icon", h.Icon.Upload)

	api.PATCH("/bulk/status", h.Bulk.UpdateStatus)
}
