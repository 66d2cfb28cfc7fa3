package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/neulketing/instaup-backend/internal/config"
	"github.com/neulketing/instaup-backend/internal/handler"
	"github.com/neulketing/instaup-backend/internal/middleware"
	"github.com/neulketing/instaup-backend/internal/migration"
	"github.com/neulketing/instaup-backend/internal/repository"
	"github.com/neulketing/instaup-backend/internal/routes"
	"github.com/neulketing/instaup-backend/internal/service"
	pkgcache "github.com/neulketing/instaup-backend/pkg/cache"
	"github.com/neulketing/instaup-backend/pkg/jwt"
	pkglogger "github.com/neulketing/instaup-backend/pkg/logger"
	pkgredis "github.com/neulketing/instaup-backend/pkg/redis"
)

// @title           InstaUp Admin API
// @version         1.0
// @description     소셜 미디어 마케팅 카탈로그 관리자 API
//
// @host            localhost:8080
// @BasePath        /api/admin
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

func main() {
	dotenvFiles := config.LoadDotEnv()

	cfg := config.Load()
	pkglogger.InitStructured(cfg.Env)
	log := pkglogger.GetLogger()
	log.Info().Str("env", cfg.Env).Strs("env_files", dotenvFiles).Msg("starting instaup-backend")

	// MySQL 연결
	db, err := initDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("데이터베이스 연결에 실패했습니다")
	}
	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("마이그레이션에 실패했습니다")
	}
	if sqlDB, err := db.DB(); err == nil {
		middleware.SetDBConnectionsActive(float64(sqlDB.Stats().OpenConnections))
	}

	// Redis 연결 (실패해도 캐시 없이 기동)
	var cacheService pkgcache.Service
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		log.Warn().Err(err).Msg("Redis 연결 실패, 캐시 없이 기동합니다")
	} else {
		cacheService = pkgcache.NewService(redisClient)
		log.Info().Msg("cache service initialized")
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn, cfg.JWT.RefreshIn)

	// Repository / Service / Handler 조립
	platformRepo := repository.NewPlatformRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	slotRepo := repository.NewServiceSlotRepository(db)
	iconRepo := repository.NewIconAssetRepository(db)

	platformSvc := service.NewPlatformService(platformRepo)
	categorySvc := service.NewCategoryService(categoryRepo, platformRepo)
	slotSvc := service.NewServiceSlotService(slotRepo, platformRepo, categoryRepo)
	iconSvc := service.NewIconAssetService(iconRepo, cfg.UploadDir, cfg.APIBaseURL)
	bulkSvc := service.NewBulkService(platformSvc, categorySvc, slotSvc)

	h := routes.Handlers{
		Platform:    handler.NewPlatformHandler(platformSvc, cacheService),
		Category:    handler.NewCategoryHandler(categorySvc, cacheService),
		ServiceSlot: handler.NewServiceSlotHandler(slotSvc, cacheService),
		Icon:        handler.NewIconHandler(iconSvc, cacheService),
		Bulk:        handler.NewBulkHandler(bulkSvc, cacheService),
	}

	// Gin 설정
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.AllowOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Cache", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.Setup(router, h, jwtManager, cacheService, cfg)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("서버가 비정상 종료되었습니다")
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}
	if cfg.IsDevelopment() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
