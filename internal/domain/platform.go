package domain

import (
	"time"

	"github.com/neulketing/instaup-backend/internal/common"
)

// Platform represents a top-level marketing channel (e.g. Instagram)
// Table: platforms
type Platform struct {
	ID          string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name        string     `gorm:"column:name;size:100;not null" json:"name"`
	Slug        string     `gorm:"column:slug;size:120;uniqueIndex;not null" json:"slug"`
	Icon        string     `gorm:"column:icon;size:32" json:"icon,omitempty"`
	IconAssetID *string    `gorm:"column:icon_asset_id;size:36;index" json:"iconAssetId,omitempty"`
	IconAsset   *IconAsset `gorm:"foreignKey:IconAssetID" json:"iconAsset,omitempty"`
	Color       string     `gorm:"column:color;size:16" json:"color"`
	Description string     `gorm:"column:description;size:255" json:"description,omitempty"`
	IsActive    bool       `gorm:"column:is_active;index" json:"isActive"`
	IsVisible   bool       `gorm:"column:is_visible" json:"isVisible"`
	SortOrder   int        `gorm:"column:sort_order;index" json:"sortOrder"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for Platform model
func (Platform) TableName() string {
	return "platforms"
}

// PlatformCounts dependent-row counts used by list enrichment and the delete guard
type PlatformCounts struct {
	Categories   int64 `json:"categories"`
	ServiceSlots int64 `json:"serviceSlots"`
	Products     int64 `json:"products"`
}

// Total sums every dependent type
func (c PlatformCounts) Total() int64 {
	return c.Categories + c.ServiceSlots + c.Products
}

// PlatformResponse is the API response format for a platform
type PlatformResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Icon        string             `json:"icon,omitempty"`
	IconAssetID *string            `json:"iconAssetId,omitempty"`
	IconAsset   *IconAssetResponse `json:"iconAsset,omitempty"`
	Color       string             `json:"color"`
	Description string             `json:"description,omitempty"`
	IsActive    bool               `json:"isActive"`
	IsVisible   bool               `json:"isVisible"`
	SortOrder   int                `json:"sortOrder"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Count       PlatformCounts     `json:"count"`
}

// ToResponse converts Platform to PlatformResponse with dependent counts
func (p *Platform) ToResponse(counts PlatformCounts) PlatformResponse {
	resp := PlatformResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Icon:        p.Icon,
		IconAssetID: p.IconAssetID,
		Color:       p.Color,
		Description: p.Description,
		IsActive:    p.IsActive,
		IsVisible:   p.IsVisible,
		SortOrder:   p.SortOrder,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Count:       counts,
	}
	if p.IconAsset != nil {
		r := p.IconAsset.ToResponse(IconAssetCounts{})
		resp.IconAsset = &r
	}
	return resp
}

// PlatformFilter list filter parameters
type PlatformFilter struct {
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

// PlatformListResult paginated platform list
type PlatformListResult struct {
	Platforms  []PlatformResponse `json:"platforms"`
	Pagination common.Pagination  `json:"pagination"`
}

// CreatePlatformRequest is the request body for creating a platform
type CreatePlatformRequest struct {
	Name        string  `json:"name" binding:"required"`
	Icon        string  `json:"icon"`
	IconAssetID *string `json:"iconAssetId"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
	IsActive    *bool   `json:"isActive"`
	IsVisible   *bool   `json:"isVisible"`
	SortOrder   *int    `json:"sortOrder"`
}

// UpdatePlatformRequest is the request body for a partial platform update.
// 포인터 필드는 "키가 온 경우에만 덮어쓴다"는 스파스 업데이트 규칙을 표현한다.
type UpdatePlatformRequest struct {
	Name        *string `json:"name"`
	Icon        *string `json:"icon"`
	IconAssetID *string `json:"iconAssetId"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	IsVisible   *bool   `json:"isVisible"`
	SortOrder   *int    `json:"sortOrder"`
}

// ToggleStatusRequest body for the toggle endpoints
type ToggleStatusRequest struct {
	IsActive bool `json:"isActive"`
}
