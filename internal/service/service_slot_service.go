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

// Service slot field defaults applied on create
const (
	defaultSlotUnit         = "개"
	defaultSlotDeliveryTime = "1-24시간"
	defaultSlotMinQuantity  = 1
	defaultSlotMaxQuantity  = 10000
)

// ServiceSlotService defines the business logic for service slots
type ServiceSlotService interface {
	List(filter domain.ServiceSlotFilter) (*domain.ServiceSlotListResult, error)
	Get(id string) (*domain.ServiceSlotResponse, error)
	Create(req *domain.CreateServiceSlotRequest) (*domain.ServiceSlotResponse, error)
	Update(id string, req *domain.UpdateServiceSlotRequest) (*domain.ServiceSlotResponse, error)
	Delete(id string) error
	ToggleStatus(id string, isActive bool) (*domain.ServiceSlotResponse, error)
	Duplicate(id string) (*domain.ServiceSlotResponse, error)
}

type serviceSlotService struct {
	repo         repository.ServiceSlotRepository
	platformRepo repository.PlatformRepository
	categoryRepo repository.CategoryRepository
}

// NewServiceSlotService creates a new ServiceSlotService
func NewServiceSlotService(
	repo repository.ServiceSlotRepository,
	platformRepo repository.PlatformRepository,
	categoryRepo repository.CategoryRepository,
) ServiceSlotService {
	return &serviceSlotService{repo: repo, platformRepo: platformRepo, categoryRepo: categoryRepo}
}

// List retrieves service slots with order counts and pagination
func (s *serviceSlotService) List(filter domain.ServiceSlotFilter) (*domain.ServiceSlotListResult, error) {
	filter.Page, filter.Limit = normalizePaging(filter.Page, filter.Limit)

	slots, total, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(slots))
	for i, slot := range slots {
		ids[i] = slot.ID
	}
	counts, err := s.repo.CountDependentsBatch(ids)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.ServiceSlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = slot.ToResponse(counts[slot.ID])
	}

	return &domain.ServiceSlotListResult{
		ServiceSlots: responses,
		Pagination:   common.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Get retrieves a service slot by ID
func (s *serviceSlotService) Get(id string) (*domain.ServiceSlotResponse, error) {
	slot, err := s.findSlot(id)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return nil, err
	}

	resp := slot.ToResponse(counts)
	return &resp, nil
}

// Create creates a new service slot under an existing platform and category
func (s *serviceSlotService) Create(req *domain.CreateServiceSlotRequest) (*domain.ServiceSlotResponse, error) {
	if err := s.checkParents(req.PlatformID, req.CategoryID); err != nil {
		return nil, err
	}

	slug := domain.Slugify(req.Name)
	if slug == "" {
		return nil, common.NewValidation("서비스 이름에서 유효한 슬러그를 만들 수 없습니다.")
	}

	exists, err := s.repo.ExistsBySlug(req.PlatformID, req.CategoryID, slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewConflict("이미 존재하는 서비스 이름입니다.")
	}

	slot := &domain.ServiceSlot{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Slug:         slug,
		Description:  req.Description,
		PlatformID:   req.PlatformID,
		CategoryID:   req.CategoryID,
		Icon:         req.Icon,
		IconAssetID:  req.IconAssetID,
		Price:        req.Price,
		MinQuantity:  defaultSlotMinQuantity,
		MaxQuantity:  defaultSlotMaxQuantity,
		Unit:         defaultSlotUnit,
		DeliveryTime: defaultSlotDeliveryTime,
		Quality:      domain.QualityStandard,
		IsActive:     true,
		IsVisible:    true,
		Features:     req.Features,
		WarningNote:  req.WarningNote,
	}
	if req.MinQuantity != nil {
		slot.MinQuantity = *req.MinQuantity
	}
	if req.MaxQuantity != nil {
		slot.MaxQuantity = *req.MaxQuantity
	}
	if req.Unit != "" {
		slot.Unit = req.Unit
	}
	if req.DeliveryTime != "" {
		slot.DeliveryTime = req.DeliveryTime
	}
	if req.Quality != "" {
		slot.Quality = req.Quality
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}
	if req.IsVisible != nil {
		slot.IsVisible = *req.IsVisible
	}
	if req.IsPopular != nil {
		slot.IsPopular = *req.IsPopular
	}
	if req.IsRecommended != nil {
		slot.IsRecommended = *req.IsRecommended
	}
	if req.SortOrder != nil {
		slot.SortOrder = *req.SortOrder
	}
	if req.TotalOrders != nil {
		slot.TotalOrders = *req.TotalOrders
	}
	if req.TotalRevenue != nil {
		slot.TotalRevenue = *req.TotalRevenue
	}

	if slot.MinQuantity > slot.MaxQuantity {
		return nil, common.NewValidation("최소 수량은 최대 수량보다 클 수 없습니다.")
	}

	if err := s.repo.Create(slot); err != nil {
		return nil, err
	}

	resp := slot.ToResponse(domain.ServiceSlotCounts{})
	return &resp, nil
}

// Update applies a partial update. 이름이나 소속이 바뀌면
// 바뀐 {플랫폼, 카테고리} 범위에서 슬러그 중복을 재검사한다.
func (s *serviceSlotService) Update(id string, req *domain.UpdateServiceSlotRequest) (*domain.ServiceSlotResponse, error) {
	slot, err := s.findSlot(id)
	if err != nil {
		return nil, err
	}

	platformID := slot.PlatformID
	if req.PlatformID != nil {
		platformID = *req.PlatformID
	}
	categoryID := slot.CategoryID
	if req.CategoryID != nil {
		categoryID = *req.CategoryID
	}
	if platformID != slot.PlatformID || categoryID != slot.CategoryID {
		if err := s.checkParents(platformID, categoryID); err != nil {
			return nil, err
		}
	}

	slug := slot.Slug
	if req.Name != nil && *req.Name != slot.Name {
		slug = domain.Slugify(*req.Name)
		if slug == "" {
			return nil, common.NewValidation("서비스 이름에서 유효한 슬러그를 만들 수 없습니다.")
		}
	}

	if slug != slot.Slug || platformID != slot.PlatformID || categoryID != slot.CategoryID {
		exists, err := s.repo.ExistsBySlug(platformID, categoryID, slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.NewConflict("이미 존재하는 서비스 이름입니다.")
		}
	}

	if req.Name != nil {
		slot.Name = *req.Name
	}
	slot.Slug = slug
	slot.PlatformID = platformID
	slot.CategoryID = categoryID
	if req.Description != nil {
		slot.Description = *req.Description
	}
	if req.Icon != nil {
		slot.Icon = *req.Icon
	}
	if req.IconAssetID != nil {
		slot.IconAssetID = req.IconAssetID
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, common.NewValidation("가격은 0보다 커야 합니다.")
		}
		slot.Price = *req.Price
	}
	if req.MinQuantity != nil {
		slot.MinQuantity = *req.MinQuantity
	}
	if req.MaxQuantity != nil {
		slot.MaxQuantity = *req.MaxQuantity
	}
	if req.Unit != nil {
		slot.Unit = *req.Unit
	}
	if req.DeliveryTime != nil {
		slot.DeliveryTime = *req.DeliveryTime
	}
	if req.Quality != nil {
		slot.Quality = *req.Quality
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}
	if req.IsVisible != nil {
		slot.IsVisible = *req.IsVisible
	}
	if req.IsPopular != nil {
		slot.IsPopular = *req.IsPopular
	}
	if req.IsRecommended != nil {
		slot.IsRecommended = *req.IsRecommended
	}
	if req.SortOrder != nil {
		slot.SortOrder = *req.SortOrder
	}
	if req.Features != nil {
		slot.Features = *req.Features
	}
	if req.WarningNote != nil {
		slot.WarningNote = *req.WarningNote
	}

	if slot.MinQuantity > slot.MaxQuantity {
		return nil, common.NewValidation("최소 수량은 최대 수량보다 클 수 없습니다.")
	}

	if err := s.repo.Update(slot); err != nil {
		return nil, err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return nil, err
	}

	resp := slot.ToResponse(counts)
	return &resp, nil
}

// Delete removes a service slot unless orders still reference it
func (s *serviceSlotService) Delete(id string) error {
	if _, err := s.findSlot(id); err != nil {
		return err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return err
	}
	if total := counts.Total(); total > 0 {
		return common.NewDependencyConflict(
			fmt.Sprintf("서비스를 삭제할 수 없습니다. %d개의 연관된 항목이 있습니다.", total), total)
	}

	return s.repo.Delete(id)
}

// ToggleStatus sets the is_active flag
func (s *serviceSlotService) ToggleStatus(id string, isActive bool) (*domain.ServiceSlotResponse, error) {
	slot, err := s.findSlot(id)
	if err != nil {
		return nil, err
	}

	slot.IsActive = isActive
	if err := s.repo.Update(slot); err != nil {
		return nil, err
	}

	counts, err := s.repo.CountDependents(id)
	if err != nil {
		return nil, err
	}

	resp := slot.ToResponse(counts)
	return &resp, nil
}

// Duplicate clones a slot as a new inactive SKU.
// 이름에 " (복사본)"을 붙이고 판매 실적은 0으로 초기화한다.
func (s *serviceSlotService) Duplicate(id string) (*domain.ServiceSlotResponse, error) {
	src, err := s.findSlot(id)
	if err != nil {
		return nil, err
	}

	name := src.Name + " (복사본)"
	slug := domain.Slugify(name)
	for n := 2; ; n++ {
		exists, err := s.repo.ExistsBySlug(src.PlatformID, src.CategoryID, slug, "")
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
		name = fmt.Sprintf("%s (복사본 %d)", src.Name, n)
		slug = domain.Slugify(name)
	}

	clone := &domain.ServiceSlot{
		ID:            uuid.NewString(),
		Name:          name,
		Slug:          slug,
		Description:   src.Description,
		PlatformID:    src.PlatformID,
		CategoryID:    src.CategoryID,
		Icon:          src.Icon,
		IconAssetID:   src.IconAssetID,
		Price:         src.Price,
		MinQuantity:   src.MinQuantity,
		MaxQuantity:   src.MaxQuantity,
		Unit:          src.Unit,
		DeliveryTime:  src.DeliveryTime,
		Quality:       src.Quality,
		IsActive:      false,
		IsVisible:     src.IsVisible,
		IsPopular:     src.IsPopular,
		IsRecommended: src.IsRecommended,
		SortOrder:     src.SortOrder,
		Features:      src.Features,
		WarningNote:   src.WarningNote,
		TotalOrders:   0,
		TotalRevenue:  0,
	}

	if err := s.repo.Create(clone); err != nil {
		return nil, err
	}

	resp := clone.ToResponse(domain.ServiceSlotCounts{})
	return &resp, nil
}

func (s *serviceSlotService) checkParents(platformID, categoryID string) error {
	if _, err := s.platformRepo.FindByID(platformID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFound("플랫폼을 찾을 수 없습니다.")
		}
		return err
	}

	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFound("카테고리를 찾을 수 없습니다.")
		}
		return err
	}
	if category.PlatformID != platformID {
		return common.NewValidation("카테고리가 해당 플랫폼에 속하지 않습니다.")
	}

	return nil
}

func (s *serviceSlotService) findSlot(id string) (*domain.ServiceSlot, error) {
	slot, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFound("서비스를 찾을 수 없습니다.")
		}
		return nil, err
	}
	return slot, nil
}
