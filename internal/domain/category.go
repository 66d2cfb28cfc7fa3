package domain

import (
	"time"

	"github.com/neulketing/instaup-backend/internal/common"
)

// Category groups service slots within a platform.
// slug는 플랫폼 범위 내에서만 유일하다 ({platform_id, slug} 복합 유니크).
// Table: categories
type Category struct {
	ID          string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name        string     `gorm:"column:name;size:100;not null" json:"name"`
	Slug        string     `gorm:"column:slug;size:120;not null;uniqueIndex:uniq_platform_slug" json:"slug"`
	PlatformID  string     `gorm:"column:platform_id;size:36;not null;uniqueIndex:uniq_platform_slug;index" json:"platformId"`
	Platform    *Platform  `gorm:"foreignKey:PlatformID" json:"platform,omitempty"`
	Icon        string     `gorm:"column:icon;size:32" json:"icon,omitempty"`
	IconAssetID *string    `gorm:"column:icon_asset_id;size:36;index" json:"iconAssetId,omitempty"`
	IconAsset   *IconAsset `gorm:"foreignKey:IconAssetID" json:"iconAsset,omitempty"`
	Description string     `gorm:"column:description;size:255" json:"description,omitempty"`
	IsActive    bool       `gorm:"column:is_active;index" json:"isActive"`
	IsVisible   bool       `gorm:"column:is_visible" json:"isVisible"`
	SortOrder   int        `gorm:"column:sort_order;index" json:"sortOrder"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for Category model
func (Category) TableName() string {
	return "categories"
}

// CategoryCounts dependent-row counts for a category
type CategoryCounts struct {
	ServiceSlots int64 `json:"serviceSlots"`
	Products     int64 `json:"products"`
}

// Total sums every dependent type
func (c CategoryCounts) Total() int64 {
	return c.ServiceSlots + c.Products
}

// CategoryResponse is the API response format for a category
type CategoryResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	PlatformID  string             `json:"platformId"`
	Platform    *PlatformResponse  `json:"platform,omitempty"`
	Icon        string             `json:"icon,omitempty"`
	IconAssetID *string            `json:"iconAssetId,omitempty"`
	IconAsset   *IconAssetResponse `json:"iconAsset,omitempty"`
	Description string             `json:"description,omitempty"`
	IsActive    bool               `json:"isActive"`
	IsVisible   bool               `json:"isVisible"`
	SortOrder   int                `json:"sortOrder"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Count       CategoryCounts     `json:"count"`
}

// ToResponse converts Category to CategoryResponse with dependent counts
func (ct *Category) ToResponse(counts CategoryCounts) CategoryResponse {
	resp := CategoryResponse{
		ID:          ct.ID,
		Name:        ct.Name,
		Slug:        ct.Slug,
		PlatformID:  ct.PlatformID,
		Icon:        ct.Icon,
		IconAssetID: ct.IconAssetID,
		Description: ct.Description,
		IsActive:    ct.IsActive,
		IsVisible:   ct.IsVisible,
		SortOrder:   ct.SortOrder,
		CreatedAt:   ct.CreatedAt,
		UpdatedAt:   ct.UpdatedAt,
		Count:       counts,
	}
	if ct.Platform != nil {
		r := ct.Platform.ToResponse(PlatformCounts{})
		resp.Platform = &r
	}
	if ct.IconAsset != nil {
		r := ct.IconAsset.ToResponse(IconAssetCounts{})
		resp.IconAsset = &r
	}
	return resp
}

// CategoryFilter list filter parameters
type CategoryFilter struct {
	PlatformID string
	Search     string
	IsActive   *bool
	Page       int
	Limit      int
}

// CategoryListResult paginated category list
type CategoryListResult struct {
	Categories []CategoryResponse `json:"categories"`
	Pagination common.Pagination  `json:"pagination"`
}

// CreateCategoryRequest is the request body for creating a category
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	PlatformID  string  `json:"platformId" binding:"required"`
	Icon        string  `json:"icon"`
	IconAssetID *string `json:"iconAssetId"`
	Description string  `json:"description"`
	IsActive    *bool   `json:"isActive"`
	IsVisible   *bool   `json:"isVisible"`
	SortOrder   *int    `json:"sortOrder"`
}

// UpdateCategoryRequest is the request body for a partial category update
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	PlatformID  *string `json:"platformId"`
	Icon        *string `json:"icon"`
	IconAssetID *string `json:"iconAssetId"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	IsVisible   *bool   `json:"isVisible"`
	SortOrder   *int    `json:"sortOrder"`
}
