package service

import (
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockPlatformRepository is a mock implementation of PlatformRepository
type MockPlatformRepository struct {
	mock.Mock
}

func (m *MockPlatformRepository) List(filter domain.PlatformFilter) ([]*domain.Platform, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Platform), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlatformRepository) FindByID(id string) (*domain.Platform, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Platform), args.Error(1)
}

func (m *MockPlatformRepository) ExistsBySlug(slug, excludeID string) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlatformRepository) Create(platform *domain.Platform) error {
	args := m.Called(platform)
	return args.Error(0)
}

func (m *MockPlatformRepository) Update(platform *domain.Platform) error {
	args := m.Called(platform)
	return args.Error(0)
}

func (m *MockPlatformRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPlatformRepository) CountDependents(id string) (domain.PlatformCounts, error) {
	args := m.Called(id)
	return args.Get(0).(domain.PlatformCounts), args.Error(1)
}

func (m *MockPlatformRepository) CountDependentsBatch(ids []string) (map[string]domain.PlatformCounts, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.PlatformCounts), args.Error(1)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(filter domain.CategoryFilter) ([]*domain.Category, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) FindByID(id string) (*domain.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsBySlug(platformID, slug, excludeID string) (bool, error) {
	args := m.Called(platformID, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *domain.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *domain.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountDependents(id string) (domain.CategoryCounts, error) {
	args := m.Called(id)
	return args.Get(0).(domain.CategoryCounts), args.Error(1)
}

func (m *MockCategoryRepository) CountDependentsBatch(ids []string) (map[string]domain.CategoryCounts, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.CategoryCounts), args.Error(1)
}

// MockServiceSlotRepository is a mock implementation of ServiceSlotRepository
type MockServiceSlotRepository struct {
	mock.Mock
}

func (m *MockServiceSlotRepository) List(filter domain.ServiceSlotFilter) ([]*domain.ServiceSlot, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.ServiceSlot), args.Get(1).(int64), args.Error(2)
}

func (m *MockServiceSlotRepository) FindByID(id string) (*domain.ServiceSlot, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceSlot), args.Error(1)
}

func (m *MockServiceSlotRepository) ExistsBySlug(platformID, categoryID, slug, excludeID string) (bool, error) {
	args := m.Called(platformID, categoryID, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceSlotRepository) Create(slot *domain.ServiceSlot) error {
	args := m.Called(slot)
	return args.Error(0)
}

func (m *MockServiceSlotRepository) Update(slot *domain.ServiceSlot) error {
	args := m.Called(slot)
	return args.Error(0)
}

func (m *MockServiceSlotRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockServiceSlotRepository) CountDependents(id string) (domain.ServiceSlotCounts, error) {
	args := m.Called(id)
	return args.Get(0).(domain.ServiceSlotCounts), args.Error(1)
}

func (m *MockServiceSlotRepository) CountDependentsBatch(ids []string) (map[string]domain.ServiceSlotCounts, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ServiceSlotCounts), args.Error(1)
}

// MockIconAssetRepository is a mock implementation of IconAssetRepository
type MockIconAssetRepository struct {
	mock.Mock
}

func (m *MockIconAssetRepository) List(filter domain.IconAssetFilter) ([]*domain.IconAsset, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.IconAsset), args.Get(1).(int64), args.Error(2)
}

func (m *MockIconAssetRepository) FindByID(id string) (*domain.IconAsset, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IconAsset), args.Error(1)
}

func (m *MockIconAssetRepository) Create(asset *domain.IconAsset) error {
	args := m.Called(asset)
	return args.Error(0)
}

func (m *MockIconAssetRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockIconAssetRepository) CountReferences(id string) (domain.IconAssetCounts, error) {
	args := m.Called(id)
	return args.Get(0).(domain.IconAssetCounts), args.Error(1)
}

func (m *MockIconAssetRepository) CountReferencesBatch(ids []string) (map[string]domain.IconAssetCounts, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.IconAssetCounts), args.Error(1)
}
