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

// Platform field defaults applied on create
const (
	defaultPlatformColor = "#000000"
)

// PlatformService defines the business logic for platforms
type PlatformService interface {
	List(filter domain.PlatformFilter) (*domain.PlatformListResult, error)
	Get(id string) (*domain.PlatformResponse, error)
	Create(req *domain.CreatePlatformRequest) (*domain.PlatformResponse, error)
	Update(id string, req *domain.UpdatePlatformRequest) (*domain.PlatformResponse, error)
	Delete(id string) error
	ToggleStatus(id string, isActive bool) (*domain.PlatformResponse, error)
}

type platformService struct {
	repo repository.PlatformRepository
}

// NewPlatformService creates a new PlatformService
func NewPlatformService(repo repository.PlatformRepository) PlatformService {
	return &platformService{repo: repo}
}

// List retrieves platforms with dependent counts and pagination
func (s *platformService) List(filter domain.PlatformFilter) (*domain.PlatformListResult, error) {
	filter.Page, filter.Limit = normalizePaging(filter.Page, filter.Limit)

	platforms, total, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(platforms))
	for i, p := range platforms {
		ids[i] = p.ID
	}
	counts, err := s.repo.CountDependentsBatch(ids)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.PlatformResponse, len(platforms))
	for i, p := range platforms {
		responses[i] = p.ToResponse(counts[p.ID])
	}

	return &domain.PlatformListResult{
		Platforms:  responses,
		Pagination: common.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Get retrieves a platform by ID
func (s *platformService) Get(id string) (*domain.PlatformResponse, error) {
	platform, err := s.findPlatform(id)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return nil, err
	}

	resp := platform.ToResponse(counts)
	return &resp, nil
}

// Create creates a new platform with a slug derived from its name
func (s *platformService) Create(req *domain.CreatePlatformRequest) (*domain.PlatformResponse, error) {
	slug := domain.Slugify(req.Name)
	if slug == "" {
		return nil, common.NewValidation("플랫폼 이름에서 유효한 슬러그를 만들 수 없습니다.")
	}

	exists, err := s.repo.ExistsBySlug(slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewConflict("이미 존재하는 플랫폼 이름입니다.")
	}

	platform := &domain.Platform{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        slug,
		Icon:        req.Icon,
		IconAssetID: req.IconAssetID,
		Color:       defaultPlatformColor,
		Description: req.Description,
		IsActive:    true,
		IsVisible:   true,
	}
	if req.Color != "" {
		platform.Color = req.Color
	}
	if req.IsActive != nil {
		platform.IsActive = *req.IsActive
	}
	if req.IsVisible != nil {
		platform.IsVisible = *req.IsVisible
	}
	if req.SortOrder != nil {
		platform.SortOrder = *req.SortOrder
	}

	if err := s.repo.Create(platform); err != nil {
		return nil, err
	}

	resp := platform.ToResponse(domain.PlatformCounts{})
	return &resp, nil
}

// Update applies a partial update. 이름이 바뀌면 슬러그를 다시 만들고 중복을 재검사한다.
func (s *platformService) Update(id string, req *domain.UpdatePlatformRequest) (*domain.PlatformResponse, error) {
	platform, err := s.findPlatform(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != platform.Name {
		slug := domain.Slugify(*req.Name)
		if slug == "" {
			return nil, common.NewValidation("플랫폼 이름에서 유효한 슬러그를 만들 수 없습니다.")
		}

		exists, err := s.repo.ExistsBySlug(slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.NewConflict("이미 존재하는 플랫폼 이름입니다.")
		}

		platform.Name = *req.Name
		platform.Slug = slug
	}
	if req.Icon != nil {
		platform.Icon = *req.Icon
	}
	if req.IconAssetID != nil {
		platform.IconAssetID = req.IconAssetID
	}
	if req.Color != nil {
		platform.Color = *req.Color
	}
	if req.Description != nil {
		platform.Description = *req.Description
	}
	if req.IsActive != nil {
		platform.IsActive = *req.IsActive
	}
	if req.IsVisible != nil {
		platform.IsVisible = *req.IsVisible
	}
	if req.SortOrder != nil {
		platform.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(platform); err != nil {
		return nil, err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return nil, err
	}

	resp := platform.ToResponse(counts)
	return &resp, nil
}

// Delete removes a platform unless dependent rows still reference it
func (s *platformService) Delete(id string) error {
	if _, err := s.findPlatform(id); err != nil {
		return err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return err
	}
	if total := counts.Total(); total > 0 {
		return common.NewDependencyConflict(
			fmt.Sprintf("플랫폼을 삭제할 수 없습니다. %d개의 연관된 항목이 있습니다.", total), total)
	}

	return s.repo.Delete(id)
}

// ToggleStatus sets the is_active flag
func (s *platformService) ToggleStatus(id string, isActive bool) (*domain.PlatformResponse, error) {
	platform, err := s.findPlatform(id)
	if err != nil {
		return nil, err
	}

	platform.IsActive = isActive
	if err := s.repo.Update(platform); err != nil {
		return nil, err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return nil, err
	}

	resp := platform.ToResponse(counts)
	return &resp, nil
}

func (s *platformService) findPlatform(id string) (*domain.Platform, error) {
	platform, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFound("플랫폼을 찾을 수 없습니다.")
		}
		return nil, err
	}
	return platform, nil
}
