package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/neulketing/instaup-backend/internal/common"
)

// Upload limits for icon images
const (
	MaxIconFileSize  = 2 * 1024 * 1024
	MaxIconFileCount = 1
)

// AllowedIconMimeTypes 아이콘 업로드에 허용되는 MIME 타입
var AllowedIconMimeTypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// IconAsset is an uploaded icon image referenced by platforms, categories and slots.
// Filename keeps the name the admin uploaded; StoredName is the generated
// on-disk name. Table: icon_assets
type IconAsset struct {
	ID         string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Filename   string    `gorm:"column:filename;size:255;not null" json:"filename"`
	StoredName string    `gorm:"column:stored_name;size:255;not null;uniqueIndex" json:"storedName"`
	MimeType   string    `gorm:"column:mime_type;size:64" json:"mimeType"`
	Size       int64     `gorm:"column:size" json:"size"`
	URL        string    `gorm:"column:url;size:512" json:"url"`
	Path       string    `gorm:"column:path;size:512" json:"-"`
	Width      *int      `gorm:"column:width" json:"width,omitempty"`
	Height     *int      `gorm:"column:height" json:"height,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for IconAsset model
func (IconAsset) TableName() string {
	return "icon_assets"
}

// IconAssetCounts rows referencing an icon asset, per referencing type
type IconAssetCounts struct {
	Platforms    int64 `json:"platforms"`
	Categories   int64 `json:"categories"`
	ServiceSlots int64 `json:"serviceSlots"`
	Products     int64 `json:"products"`
}

// Total sums every referencing type
func (c IconAssetCounts) Total() int64 {
	return c.Platforms + c.Categories + c.ServiceSlots + c.Products
}

// IconAssetResponse is the API response format for an icon asset
type IconAssetResponse struct {
	ID         string          `json:"id"`
	Filename   string          `json:"filename"`
	StoredName string          `json:"storedName"`
	MimeType   string          `json:"mimeType"`
	Size       int64           `json:"size"`
	URL        string          `json:"url"`
	Width      *int            `json:"width,omitempty"`
	Height     *int            `json:"height,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	Count      IconAssetCounts `json:"count"`
}

// ToResponse converts IconAsset to IconAssetResponse with reference counts
func (a *IconAsset) ToResponse(counts IconAssetCounts) IconAssetResponse {
	return IconAssetResponse{
		ID:         a.ID,
		Filename:   a.Filename,
		StoredName: a.StoredName,
		MimeType:   a.MimeType,
		Size:       a.Size,
		URL:        a.URL,
		Width:      a.Width,
		Height:     a.Height,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		Count:      counts,
	}
}

// IconAssetFilter list filter parameters
type IconAssetFilter struct {
	Search string
	Page   int
	Limit  int
}

// IconAssetListResult paginated icon asset list
type IconAssetListResult struct {
	Icons      []IconAssetResponse `json:"icons"`
	Pagination common.Pagination   `json:"pagination"`
}

// StoredIconFilename builds the on-disk name for an uploaded icon.
// 형식: {epoch-millis}-{random}-{정리된 원본 이름}{확장자}
// 원본 이름의 영숫자 외 문자는 '_'로 치환해 경로 조작을 차단한다.
func StoredIconFilename(originalName string, epochMillis int64, random string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s-%s%s", epochMillis, random, sanitizeFilenameBase(base), ext)
}

func sanitizeFilenameBase(base string) string {
	var b strings.Builder
	b.Grow(len(base))
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// IconURL builds the public URL for a stored icon file
func IconURL(baseURL, filename string) string {
	return fmt.Sprintf("%s/uploads/icons/%s", strings.TrimRight(baseURL, "/"), filename)
}
