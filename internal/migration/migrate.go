package migration

import (
	"github.com/neulketing/instaup-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for the catalog tables.
// 테이블 없으면 생성, 있으면 skip.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.IconAsset{},
		&domain.Platform{},
		&domain.Category{},
		&domain.ServiceSlot{},
		&domain.Product{},
		&domain.Order{},
	)
}
