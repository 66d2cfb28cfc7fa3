package repository

import (
	"github.com/neulketing/instaup-backend/internal/domain"
	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	List(filter domain.CategoryFilter) ([]*domain.Category, int64, error)
	FindByID(id string) (*domain.Category, error)
	ExistsBySlug(platformID, slug, excludeID string) (bool, error)
	Create(category *domain.Category) error
	Update(category *domain.Category) error
	Delete(id string) error
	CountDependents(id string) (domain.CategoryCounts, error)
	CountDependentsBatch(ids []string) (map[string]domain.CategoryCounts, error)
}

// categoryRepository implements CategoryRepository with GORM
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) applyFilter(filter domain.CategoryFilter) *gorm.DB {
	query := r.db.Model(&domain.Category{})

	if filter.PlatformID != "" {
		query = query.Where("platform_id = ?", filter.PlatformID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	return query
}

// List retrieves categories matching the filter with the total match count
func (r *categoryRepository) List(filter domain.CategoryFilter) ([]*domain.Category, int64, error) {
	var total int64
	if err := r.applyFilter(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []*domain.Category
	err := r.applyFilter(filter).
		Preload("Platform").
		Preload("IconAsset").
		Order("sort_order ASC, created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

// FindByID finds a category by ID
func (r *categoryRepository) FindByID(id string) (*domain.Category, error) {
	var category domain.Category

	err := r.db.
		Preload("Platform").
		Preload("IconAsset").
		Where("id = ?", id).
		First(&category).Error
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// ExistsBySlug reports whether another category in the same platform uses the slug
func (r *categoryRepository) ExistsBySlug(platformID, slug, excludeID string) (bool, error) {
	query := r.db.Model(&domain.Category{}).
		Where("platform_id = ?", platformID).
		Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create creates a new category
func (r *categoryRepository) Create(category *domain.Category) error {
	return r.db.Create(category).Error
}

// Update updates a category
func (r *categoryRepository) Update(category *domain.Category) error {
	return r.db.Save(category).Error
}

// Delete deletes a category by ID
func (r *categoryRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Category{}).Error
}

// CountDependents counts rows in dependent tables referencing the category
func (r *categoryRepository) CountDependents(id string) (domain.CategoryCounts, error) {
	var counts domain.CategoryCounts

	if err := r.db.Model(&domain.ServiceSlot{}).
		Where("category_id = ?", id).
		Count(&counts.ServiceSlots).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&domain.Product{}).
		Where("category_id = ?", id).
		Count(&counts.Products).Error; err != nil {
		return counts, err
	}

	return counts, nil
}

// CountDependentsBatch counts dependents for many categories in two grouped queries
func (r *categoryRepository) CountDependentsBatch(ids []string) (map[string]domain.CategoryCounts, error) {
	result := make(map[string]domain.CategoryCounts, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []countRow

	if err := r.db.Model(&domain.ServiceSlot{}).
		Select("category_id AS id, COUNT(*) AS n").
		Where("category_id IN ?", ids).
		Group("category_id").
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
		Select("category_id AS id, COUNT(*) AS n").
		Where("category_id IN ?", ids).
		Group("category_id").
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
