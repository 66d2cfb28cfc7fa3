package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/neulketing/instaup-backend/internal/repository"
	"gorm.io/gorm"
)

// CategoryService defines the business logic for categories
type CategoryService interface {
	List(filter domain.CategoryFilter) (*domain.CategoryListResult, error)
	Get(id string) (*domain.CategoryResponse, error)
	Create(req *domain.CreateCategoryRequest) (*domain.CategoryResponse, error)
	Update(id string, req *domain.UpdateCategoryRequest) (*domain.CategoryResponse, error)
	Delete(id string) error
	ToggleStatus(id string, isActive bool) (*domain.CategoryResponse, error)
}

type categoryService struct {
	repo         repository.CategoryRepository
	platformRepo repository.PlatformRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(repo repository.CategoryRepository, platformRepo repository.PlatformRepository) CategoryService {
	return &categoryService{repo: repo, platformRepo: platformRepo}
}

// List retrieves categories with dependent counts and pagination
func (s *categoryService) List(filter domain.CategoryFilter) (*domain.CategoryListResult, error) {
	filter.Page, filter.Limit = normalizePaging(filter.Page, filter.Limit)

	categories, total, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(categories))
	for i, ct := range categories {
		ids[i] = ct.ID
	}
	counts, err := s.repo.CountDependentsBatch(ids)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.CategoryResponse, len(categories))
	for i, ct := range categories {
		responses[i] = ct.ToResponse(counts[ct.ID])
	}

	return &domain.CategoryListResult{
		Categories: responses,
		Pagination: common.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Get retrieves a category by ID
func (s *categoryService) Get(id string) (*domain.CategoryResponse, error) {
	category, err := s.findCategory(id)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return nil, err
	}

	resp := category.ToResponse(counts)
	return &resp, nil
}

// Create creates a new category under an existing platform.
// 슬러그는 플랫폼 범위 안에서만 유일하면 된다.
func (s *categoryService) Create(req *domain.CreateCategoryRequest) (*domain.CategoryResponse, error) {
	if _, err := s.platformRepo.FindByID(req.PlatformID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFound("플랫폼을 찾을 수 없습니다.")
		}
		return nil, err
	}

	slug := domain.Slugify(req.Name)
	if slug == "" {
		return nil, common.NewValidation("카테고리 이름에서 유효한 슬러그를 만들 수 없습니다.")
	}

	exists, err := s.repo.ExistsBySlug(req.PlatformID, slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewConflict("이미 존재하는 카테고리 이름입니다.")
	}

	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        slug,
		PlatformID:  req.PlatformID,
		Icon:        req.Icon,
		IconAssetID: req.IconAssetID,
		Description: req.Description,
		IsActive:    true,
		IsVisible:   true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.IsVisible != nil {
		category.IsVisible = *req.IsVisible
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := s.repo.Create(category); err != nil {
		return nil, err
	}

	resp := category.ToResponse(domain.CategoryCounts{})
	return &resp, nil
}

// Update applies a partial update. 이름 또는 플랫폼이 바뀌면
// 바뀐 범위에서 슬러그 중복을 재검사한다.
func (s *categoryService) Update(id string, req *domain.UpdateCategoryRequest) (*domain.CategoryResponse, error) {
	category, err := s.findCategory(id)
	if err != nil {
		return nil, err
	}

	platformID := category.PlatformID
	if req.PlatformID != nil && *req.PlatformID != category.PlatformID {
		if _, err := s.platformRepo.FindByID(*req.PlatformID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.NewNotFound("플랫폼을 찾을 수 없습니다.")
			}
			return nil, err
		}
		platformID = *req.PlatformID
	}

	slug := category.Slug
	if req.Name != nil && *req.Name != category.Name {
		slug = domain.Slugify(*req.Name)
		if slug == "" {
			return nil, common.NewValidation("카테고리 이름에서 유효한 슬러그를 만들 수 없습니다.")
		}
	}

	if slug != category.Slug || platformID != category.PlatformID {
		exists, err := s.repo.ExistsBySlug(platformID, slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.NewConflict("이미 존재하는 카테고리 이름입니다.")
		}
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	category.Slug = slug
	category.PlatformID = platformID
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.IconAssetID != nil {
		category.IconAssetID = req.IconAssetID
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.IsVisible != nil {
		category.IsVisible = *req.IsVisible
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return nil, err
	}

	resp := category.ToResponse(counts)
	return &resp, nil
}

// Delete removes a category unless dependent rows still reference it
func (s *categoryService) Delete(id string) error {
	if _, err := s.findCategory(id); err != nil {
		return err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return err
	}
	if total := counts.Total(); total > 0 {
		return common.NewDependencyConflict(
			fmt.Sprintf("카테고리를 삭제할 수 없습니다. %d개의 연관된 항목이 있습니다.", total), total)
	}

	return s.repo.Delete(id)
}

// ToggleStatus sets the is_active flag
func (s *categoryService) ToggleStatus(id string, isActive bool) (*domain.CategoryResponse, error) {
	category, err := s.findCategory(id)
	if err != nil {
		return nil, err
	}

	category.IsActive = isActive
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return nil, err
	}

	resp := category.ToResponse(counts)
	return &resp, nil
}

func (s *categoryService) findCategory(id string) (*domain.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFound("카테고리를 찾을 수 없습니다.")
		}
		return nil, err
	}
	return category, nil
}
