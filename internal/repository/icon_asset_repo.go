package repository

import (
	"github.com/neulketing/instaup-backend/internal/domain"
	"gorm.io/gorm"
)

// IconAssetRepository defines the interface for icon asset data access
type IconAssetRepository interface {
	List(filter domain.IconAssetFilter) ([]*domain.IconAsset, int64, error)
	FindByID(id string) (*domain.IconAsset, error)
	Create(asset *domain.IconAsset) error
	Delete(id string) error
	CountReferences(id string) (domain.IconAssetCounts, error)
	CountReferencesBatch(ids []string) (map[string]domain.IconAssetCounts, error)
}

// iconAssetRepository implements IconAssetRepository with GORM
type iconAssetRepository struct {
	db *gorm.DB
}

// NewIconAssetRepository creates a new IconAssetRepository
func NewIconAssetRepository(db *gorm.DB) IconAssetRepository {
	return &iconAssetRepository{db: db}
}

func (r *iconAssetRepository) applyFilter(filter domain.IconAssetFilter) *gorm.DB {
	query := r.db.Model(&domain.IconAsset{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("filename LIKE ? OR stored_name LIKE ?", like, like)
	}

	return query
}

// List retrieves icon assets matching the filter with the total match count
func (r *iconAssetRepository) List(filter domain.IconAssetFilter) ([]*domain.IconAsset, int64, error) {
	var total int64
	if err := r.applyFilter(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assets []*domain.IconAsset
	err := r.applyFilter(filter).
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&assets).Error
	if err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

// FindByID finds an icon asset by ID
func (r *iconAssetRepository) FindByID(id string) (*domain.IconAsset, error) {
	var asset domain.IconAsset

	err := r.db.
		Where("id = ?", id).
		First(&asset).Error
	if err != nil {
		return nil, err
	}

	return &asset, nil
}

// Create creates a new icon asset
func (r *iconAssetRepository) Create(asset *domain.IconAsset) error {
	return r.db.Create(asset).Error
}

// Delete deletes an icon asset by ID
func (r *iconAssetRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.IconAsset{}).Error
}

// CountReferences counts rows referencing the icon asset, per table
func (r *iconAssetRepository) CountReferences(id string) (domain.IconAssetCounts, error) {
	var counts domain.IconAssetCounts

	if err := r.db.Model(&domain.Platform{}).
		Where("icon_asset_id = ?", id).
		Count(&counts.Platforms).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&domain.Category{}).
		Where("icon_asset_id = ?", id).
		Count(&counts.Categories).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&domain.ServiceSlot{}).
		Where("icon_asset_id = ?", id).
		Count(&counts.ServiceSlots).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&domain.Product{}).
		Where("icon_asset_id = ?", id).
		Count(&counts.Products).Error; err != nil {
		return counts, err
	}

	return counts, nil
}

// CountReferencesBatch counts references for many icon assets in four grouped queries
func (r *iconAssetRepository) CountReferencesBatch(ids []string) (map[string]domain.IconAssetCounts, error) {
	result := make(map[string]domain.IconAssetCounts, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	scan := func(model interface{}, assign func(c *domain.IconAssetCounts, n int64)) error {
		var rows []countRow
		if err := r.db.Model(model).
			Select("icon_asset_id AS id, COUNT(*) AS n").
			Where("icon_asset_id IN ?", ids).
			Group("icon_asset_id").
			Scan(&rows).Error; err != nil {
			return err
		}
		for _, row := range rows {
			c := result[row.ID]
			assign(&c, row.N)
			result[row.ID] = c
		}
		return nil
	}

	if err := scan(&domain.Platform{}, func(c *domain.IconAssetCounts, n int64) { c.Platforms = n }); err != nil {
		return nil, err
	}
	if err := scan(&domain.Category{}, func(c *domain.IconAssetCounts, n int64) { c.Categories = n }); err != nil {
		return nil, err
	}
	if err := scan(&domain.ServiceSlot{}, func(c *domain.IconAssetCounts, n int64) { c.ServiceSlots = n }); err != nil {
		return nil, err
	}
	if err := scan(&domain.Product{}, func(c *domain.IconAssetCounts, n int64) { c.Products = n }); err != nil {
		return nil, err
	}

	return result, nil
}
