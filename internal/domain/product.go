package domain

import "time"

// Product is a legacy storefront listing kept for dependency accounting.
// 삭제 가드의 참조 카운트 대상으로만 조회된다.
// Table: products
type Product struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name        string    `gorm:"column:name;size:100;not null" json:"name"`
	PlatformID  *string   `gorm:"column:platform_id;size:36;index" json:"platformId,omitempty"`
	CategoryID  *string   `gorm:"column:category_id;size:36;index" json:"categoryId,omitempty"`
	IconAssetID *string   `gorm:"column:icon_asset_id;size:36;index" json:"iconAssetId,omitempty"`
	Price       float64   `gorm:"column:price" json:"price"`
	IsActive    bool      `gorm:"column:is_active" json:"isActive"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for Product model
func (Product) TableName() string {
	return "products"
}
