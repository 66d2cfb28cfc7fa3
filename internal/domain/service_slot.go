package domain

import (
	"time"

	"github.com/neulketing/instaup-backend/internal/common"
)

// Service slot quality grades
const (
	QualityStandard = "standard"
	QualityPremium  = "premium"
)

// ServiceSlot is a sellable marketing service SKU.
// slug는 {platform_id, category_id} 범위 내에서만 유일하다.
// Table: service_slots
type ServiceSlot struct {
	ID            string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name          string     `gorm:"column:name;size:100;not null" json:"name"`
	Slug          string     `gorm:"column:slug;size:120;not null;uniqueIndex:uniq_platform_category_slug" json:"slug"`
	Description   string     `gorm:"column:description;size:255" json:"description,omitempty"`
	PlatformID    string     `gorm:"column:platform_id;size:36;not null;uniqueIndex:uniq_platform_category_slug;index" json:"platformId"`
	Platform      *Platform  `gorm:"foreignKey:PlatformID" json:"platform,omitempty"`
	CategoryID    string     `gorm:"column:category_id;size:36;not null;uniqueIndex:uniq_platform_category_slug;index" json:"categoryId"`
	Category      *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Icon          string     `gorm:"column:icon;size:32" json:"icon,omitempty"`
	IconAssetID   *string    `gorm:"column:icon_asset_id;size:36;index" json:"iconAssetId,omitempty"`
	IconAsset     *IconAsset `gorm:"foreignKey:IconAssetID" json:"iconAsset,omitempty"`
	Price         float64    `gorm:"column:price;not null" json:"price"`
	MinQuantity   int        `gorm:"column:min_quantity" json:"minQuantity"`
	MaxQuantity   int        `gorm:"column:max_quantity" json:"maxQuantity"`
	Unit          string     `gorm:"column:unit;size:32" json:"unit"`
	DeliveryTime  string     `gorm:"column:delivery_time;size:64" json:"deliveryTime"`
	Quality       string     `gorm:"column:quality;size:16" json:"quality"`
	IsActive      bool       `gorm:"column:is_active;index" json:"isActive"`
	IsVisible     bool       `gorm:"column:is_visible" json:"isVisible"`
	IsPopular     bool       `gorm:"column:is_popular" json:"isPopular"`
	IsRecommended bool       `gorm:"column:is_recommended" json:"isRecommended"`
	SortOrder     int        `gorm:"column:sort_order;index" json:"sortOrder"`
	Features      []string   `gorm:"column:features;serializer:json" json:"features"`
	WarningNote   string     `gorm:"column:warning_note;size:255" json:"warningNote,omitempty"`
	TotalOrders   int64      `gorm:"column:total_orders" json:"totalOrders"`
	TotalRevenue  float64    `gorm:"column:total_revenue" json:"totalRevenue"`
	CreatedAt     time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for ServiceSlot model
func (ServiceSlot) TableName() string {
	return "service_slots"
}

// ServiceSlotCounts dependent-row counts for a service slot
type ServiceSlotCounts struct {
	Orders int64 `json:"orders"`
}

// Total sums every dependent type
func (c ServiceSlotCounts) Total() int64 {
	return c.Orders
}

// ServiceSlotResponse is the API response format for a service slot
type ServiceSlotResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Slug          string             `json:"slug"`
	Description   string             `json:"description,omitempty"`
	PlatformID    string             `json:"platformId"`
	Platform      *PlatformResponse  `json:"platform,omitempty"`
	CategoryID    string             `json:"categoryId"`
	Category      *CategoryResponse  `json:"category,omitempty"`
	Icon          string             `json:"icon,omitempty"`
	IconAssetID   *string            `json:"iconAssetId,omitempty"`
	IconAsset     *IconAssetResponse `json:"iconAsset,omitempty"`
	Price         float64            `json:"price"`
	MinQuantity   int                `json:"minQuantity"`
	MaxQuantity   int                `json:"maxQuantity"`
	Unit          string             `json:"unit"`
	DeliveryTime  string             `json:"deliveryTime"`
	Quality       string             `json:"quality"`
	IsActive      bool               `json:"isActive"`
	IsVisible     bool               `json:"isVisible"`
	IsPopular     bool               `json:"isPopular"`
	IsRecommended bool               `json:"isRecommended"`
	SortOrder     int                `json:"sortOrder"`
	Features      []string           `json:"features"`
	WarningNote   string             `json:"warningNote,omitempty"`
	TotalOrders   int64              `json:"totalOrders"`
	TotalRevenue  float64            `json:"totalRevenue"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Count         ServiceSlotCounts  `json:"count"`
}

// ToResponse converts ServiceSlot to ServiceSlotResponse with dependent counts
func (s *ServiceSlot) ToResponse(counts ServiceSlotCounts) ServiceSlotResponse {
	features := s.Features
	if features == nil {
		features = []string{}
	}
	resp := ServiceSlotResponse{
		ID:            s.ID,
		Name:          s.Name,
		Slug:          s.Slug,
		Description:   s.Description,
		PlatformID:    s.PlatformID,
		CategoryID:    s.CategoryID,
		Icon:          s.Icon,
		IconAssetID:   s.IconAssetID,
		Price:         s.Price,
		MinQuantity:   s.MinQuantity,
		MaxQuantity:   s.MaxQuantity,
		Unit:          s.Unit,
		DeliveryTime:  s.DeliveryTime,
		Quality:       s.Quality,
		IsActive:      s.IsActive,
		IsVisible:     s.IsVisible,
		IsPopular:     s.IsPopular,
		IsRecommended: s.IsRecommended,
		SortOrder:     s.SortOrder,
		Features:      features,
		WarningNote:   s.WarningNote,
		TotalOrders:   s.TotalOrders,
		TotalRevenue:  s.TotalRevenue,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		Count:         counts,
	}
	if s.Platform != nil {
		r := s.Platform.ToResponse(PlatformCounts{})
		resp.Platform = &r
	}
	if s.Category != nil {
		r := s.Category.ToResponse(CategoryCounts{})
		resp.Category = &r
	}
	if s.IconAsset != nil {
		r := s.IconAsset.ToResponse(IconAssetCounts{})
		resp.IconAsset = &r
	}
	return resp
}

// ServiceSlotFilter list filter parameters
type ServiceSlotFilter struct {
	PlatformID string
	CategoryID string
	Search     string
	IsActive   *bool
	Page       int
	Limit      int
}

// ServiceSlotListResult paginated service slot list
type ServiceSlotListResult struct {
	ServiceSlots []ServiceSlotResponse `json:"serviceSlots"`
	Pagination   common.Pagination     `json:"pagination"`
}

// CreateServiceSlotRequest is the request body for creating a service slot
type CreateServiceSlotRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	PlatformID    string   `json:"platformId" binding:"required"`
	CategoryID    string   `json:"categoryId" binding:"required"`
	Icon          string   `json:"icon"`
	IconAssetID   *string  `json:"iconAssetId"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	MinQuantity   *int     `json:"minQuantity"`
	MaxQuantity   *int     `json:"maxQuantity"`
	Unit          string   `json:"unit"`
	DeliveryTime  string   `json:"deliveryTime"`
	Quality       string   `json:"quality"`
	IsActive      *bool    `json:"isActive"`
	IsVisible     *bool    `json:"isVisible"`
	IsPopular     *bool    `json:"isPopular"`
	IsRecommended *bool    `json:"isRecommended"`
	SortOrder     *int     `json:"sortOrder"`
	Features      []string `json:"features"`
	WarningNote   string   `json:"warningNote"`
	TotalOrders   *int64   `json:"totalOrders"`
	TotalRevenue  *float64 `json:"totalRevenue"`
}

// UpdateServiceSlotRequest is the request body for a partial service slot update
type UpdateServiceSlotRequest struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	PlatformID    *string   `json:"platformId"`
	CategoryID    *string   `json:"categoryId"`
	Icon          *string   `json:"icon"`
	IconAssetID   *string   `json:"iconAssetId"`
	Price         *float64  `json:"price"`
	MinQuantity   *int      `json:"minQuantity"`
	MaxQuantity   *int      `json:"maxQuantity"`
	Unit          *string   `json:"unit"`
	DeliveryTime  *string   `json:"deliveryTime"`
	Quality       *string   `json:"quality"`
	IsActive      *bool     `json:"isActive"`
	IsVisible     *bool     `json:"isVisible"`
	IsPopular     *bool     `json:"isPopular"`
	IsRecommended *bool     `json:"isRecommended"`
	SortOrder     *int      `json:"sortOrder"`
	Features      *[]string `json:"features"`
	WarningNote   *string   `json:"warningNote"`
}
