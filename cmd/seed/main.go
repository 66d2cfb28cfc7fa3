package main

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/neulketing/instaup-backend/internal/config"
	"github.com/neulketing/instaup-backend/internal/migration"
	pkglogger "github.com/neulketing/instaup-backend/pkg/logger"
)

// 초기 카탈로그 데이터를 넣는 시딩 커맨드.
// 슬러그 기준 upsert라 반복 실행해도 안전하다.
func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	pkglogger.InitStructured(cfg.Env)
	log := pkglogger.GetLogger()

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("데이터베이스 연결에 실패했습니다")
	}

	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("마이그레이션에 실패했습니다")
	}
	if err := migration.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("시딩에 실패했습니다")
	}

	log.Info().Msg("seeding completed")
}
