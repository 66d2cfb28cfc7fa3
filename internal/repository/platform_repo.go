package repository

import (
	"github.com/neulketing/instaup-backend/internal/domain"
	"gorm.io/gorm"
)

// PlatformRepository defines the interface for platform data access
type PlatformRepository interface {
	List(filter domain.PlatformFilter) ([]*domain.Platform, int64, error)
	FindByID(id string) (*domain.Platform, error)
	ExistsBySlug(slug, excludeID string) (bool, error)
	Create(platform *domain.Platform) error
	Update(platform *domain.Platform) error
	Delete(id string) error
	CountDependents(id string) (domain.PlatformCounts, error)
	CountDependentsBatch(ids []string) (map[string]domain.PlatformCounts, error)
}

// platformRepository implements PlatformRepository with GORM
type platformRepository struct {
	db *gorm.DB
}

// NewPlatformRepository creates a new PlatformRepository
func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) applyFilter(filter domain.PlatformFilter) *gorm.DB {
	query := r.db.Model(&domain.Platform{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	return query
}

// List retrieves platforms matching the filter with the total match count
func (r *platformRepository) List(filter domain.PlatformFilter) ([]*domain.Platform, int64, error) {
	var total int64
	if err := r.applyFilter(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var platforms []*domain.Platform
	err := r.applyFilter(filter).
		Preload("IconAsset").
		Order("sort_order ASC, created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&platforms).Error
	if err != nil {
		return nil, 0, err
	}

	return platforms, total, nil
}

// FindByID finds a platform by ID
func (r *platformRepository) FindByID(id string) (*domain.Platform, error) {
	var platform domain.Platform

	err := r.db.
		Preload("IconAsset").
		Where("id = ?", id).
		First(&platform).Error
	if err != nil {
		return nil, err
	}

	return &platform, nil
}

// ExistsBySlug reports whether another platform already uses the slug
func (r *platformRepository) ExistsBySlug(slug, excludeID string) (bool, error) {
	query := r.db.Model(&domain.Platform{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create creates a new platform
func (r *platformRepository) Create(platform *domain.Platform) error {
	return r.db.Create(platform).Error
}

// Update updates a platform
func (r *platformRepository) Update(platform *domain.Platform) error {
	return r.db.Save(platform).Error
}

// Delete deletes a platform by ID
func (r *platformRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Platform{}).Error
}

// CountDependents counts rows in dependent tables referencing the platform
func (r *platformRepository) CountDependents(id string) (domain.PlatformCounts, error) {
	var counts domain.PlatformCounts

	if err := r.db.Model(&domain.Category{}).
		Where("platform_id = ?", id).
		Count(&counts.Categories).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&domain.ServiceSlot{}).
		Where("platform_id = ?", id).
		Count(&counts.ServiceSlots).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&domain.Product{}).
		Where("platform_id = ?", id).
		Count(&counts.Products).Error; err != nil {
		return counts, err
	}

	return counts, nil
}

type countRow struct {
	ID string
	N  int64
}

// CountDependentsBatch counts dependents for many platforms in three grouped queries
func (r *platformRepository) CountDependentsBatch(ids []string) (map[string]domain.PlatformCounts, error) {
	result := make(map[string]domain.PlatformCounts, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []countRow

	if err := r.db.Model(&domain.Category{}).
		Select("platform_id AS id, COUNT(*) AS n").
		Where("platform_id IN ?", ids).
		Group("platform_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		c := result[row.ID]
		c.Categories = row.N
		result[row.ID] = c
	}

	rows = rows[:0]
	if err := r.db.Model(&domain.ServiceSlot{}).
		Select("platform_id AS id, COUNT(*) AS n").
		Where("platform_id IN ?", ids).
		Group("platform_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		c := result[row.ID]
		c.ServiceSlots = row.N
		result[row.ID] = c
	}

	rows = rows[:0]
	if err := r.db.Model(&domain.Product{}).
		Select("platform_id AS id, COUNT(*) AS n").
		Where("platform_id IN ?", ids).
		Group("platform_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		c := result[row.ID]
		c.Products = row.N
		result[row.ID] = c
	}

	return result, nil
}
