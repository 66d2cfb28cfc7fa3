package repository

import (
	"github.com/neulketing/instaup-backend/internal/domain"
	"gorm.io/gorm"
)

// ServiceSlotRepository defines the interface for service slot data access
type ServiceSlotRepository interface {
	List(filter domain.ServiceSlotFilter) ([]*domain.ServiceSlot, int64, error)
	FindByID(id string) (*domain.ServiceSlot, error)
	ExistsBySlug(platformID, categoryID, slug, excludeID string) (bool, error)
	Create(slot *domain.ServiceSlot) error
	Update(slot *domain.ServiceSlot) error
	Delete(id string) error
	CountDependents(id string) (domain.ServiceSlotCounts, error)
	CountDependentsBatch(ids []string) (map[string]domain.ServiceSlotCounts, error)
}

// serviceSlotRepository implements ServiceSlotRepository with GORM
type serviceSlotRepository struct {
	db *gorm.DB
}

// NewServiceSlotRepository creates a new ServiceSlotRepository
func NewServiceSlotRepository(db *gorm.DB) ServiceSlotRepository {
	return &serviceSlotRepository{db: db}
}

func (r *serviceSlotRepository) applyFilter(filter domain.ServiceSlotFilter) *gorm.DB {
	query := r.db.Model(&domain.ServiceSlot{})

	if filter.PlatformID != "" {
		query = query.Where("platform_id = ?", filter.PlatformID)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
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

// List retrieves service slots matching the filter with the total match count
func (r *serviceSlotRepository) List(filter domain.ServiceSlotFilter) ([]*domain.ServiceSlot, int64, error) {
	var total int64
	if err := r.applyFilter(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var slots []*domain.ServiceSlot
	err := r.applyFilter(filter).
		Preload("Platform").
		Preload("Category").
		Preload("IconAsset").
		Order("sort_order ASC, created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&slots).Error
	if err != nil {
		return nil, 0, err
	}

	return slots, total, nil
}

// FindByID finds a service slot by ID
func (r *serviceSlotRepository) FindByID(id string) (*domain.ServiceSlot, error) {
	var slot domain.ServiceSlot

	err := r.db.
		Preload("Platform").
		Preload("Category").
		Preload("IconAsset").
		Where("id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

// ExistsBySlug reports whether another slot in the same platform and category uses the slug
func (r *serviceSlotRepository) ExistsBySlug(platformID, categoryID, slug, excludeID string) (bool, error) {
	query := r.db.Model(&domain.ServiceSlot{}).
		Where("platform_id = ?", platformID).
		Where("category_id = ?", categoryID).
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

// Create creates a new service slot
func (r *serviceSlotRepository) Create(slot *domain.ServiceSlot) error {
	return r.db.Create(slot).Error
}

// Update updates a service slot
func (r *serviceSlotRepository) Update(slot *domain.ServiceSlot) error {
	return r.db.Save(slot).Error
}

// Delete deletes a service slot by ID
func (r *serviceSlotRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.ServiceSlot{}).Error
}

// CountDependents counts orders referencing the service slot
func (r *serviceSlotRepository) CountDependents(id string) (domain.ServiceSlotCounts, error) {
	var counts domain.ServiceSlotCounts

	if err := r.db.Model(&domain.Order{}).
		Where("service_slot_id = ?", id).
		Count(&counts.Orders).Error; err != nil {
		return counts, err
	}

	return counts, nil
}

// CountDependentsBatch counts orders for many service slots in one grouped query
func (r *serviceSlotRepository) CountDependentsBatch(ids []string) (map[string]domain.ServiceSlotCounts, error) {
	result := make(map[string]domain.ServiceSlotCounts, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []countRow
	if err := r.db.Model(&domain.Order{}).
		Select("service_slot_id AS id, COUNT(*) AS n").
		Where("service_slot_id IN ?", ids).
		Group("service_slot_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ID] = domain.ServiceSlotCounts{Orders: row.N}
	}

	return result, nil
}
