package service

import (
	"github.com/neulketing/instaup-backend/internal/domain"
)

// BulkService toggles is_active across many entities of one type
type BulkService interface {
	UpdateStatus(req *domain.BulkStatusRequest) (*domain.BulkStatusResult, error)
}

type bulkService struct {
	platforms  PlatformService
	categories CategoryService
	slots      ServiceSlotService
}

// NewBulkService creates a new BulkService
func NewBulkService(platforms PlatformService, categories CategoryService, slots ServiceSlotService) BulkService {
	return &bulkService{platforms: platforms, categories: categories, slots: slots}
}

// UpdateStatus toggles each entity in turn.
// 개별 실패는 건너뛰고 항목별 결과로 보고한다.
func (s *bulkService) UpdateStatus(req *domain.BulkStatusRequest) (*domain.BulkStatusResult, error) {
	result := &domain.BulkStatusResult{
		Items: make([]domain.BulkStatusItem, 0, len(req.IDs)),
	}

	for _, id := range req.IDs {
		var err error
		switch req.Type {
		case domain.BulkTypePlatform:
			_, err = s.platforms.ToggleStatus(id, req.IsActive)
		case domain.BulkTypeCategory:
			_, err = s.categories.ToggleStatus(id, req.IsActive)
		case domain.BulkTypeServiceSlot:
			_, err = s.slots.ToggleStatus(id, req.IsActive)
		}

		item := domain.BulkStatusItem{ID: id, Success: err == nil}
		if err != nil {
			item.Message = err.Error()
			result.Failed++
		} else {
			result.Updated++
		}
		result.Items = append(result.Items, item)
	}

	return result, nil
}
