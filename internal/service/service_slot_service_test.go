package service

import (
	"testing"

	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSlotFixture() (*MockServiceSlotRepository, *MockPlatformRepository, *MockCategoryRepository, ServiceSlotService) {
	slotRepo := new(MockServiceSlotRepository)
	platformRepo := new(MockPlatformRepository)
	categoryRepo := new(MockCategoryRepository)
	return slotRepo, platformRepo, categoryRepo,
		NewServiceSlotService(slotRepo, platformRepo, categoryRepo)
}

func TestServiceSlotService_Create(t *testing.T) {
	t.Run("판매 단위와 배송 시간 기본값을 채운다", func(t *testing.T) {
		slotRepo, platformRepo, categoryRepo, svc := newSlotFixture()

		platformRepo.On("FindByID", "p1").Return(&domain.Platform{ID: "p1"}, nil)
		categoryRepo.On("FindByID", "c1").Return(&domain.Category{ID: "c1", PlatformID: "p1"}, nil)
		slotRepo.On("ExistsBySlug", "p1", "c1", "인스타-좋아요", "").Return(false, nil)
		slotRepo.On("Create", mock.MatchedBy(func(s *domain.ServiceSlot) bool {
			return s.Unit == "개" && s.DeliveryTime == "1-24시간" &&
				s.MinQuantity == 1 && s.MaxQuantity == 10000 &&
				s.Quality == domain.QualityStandard && s.IsActive
		})).Return(nil)

		resp, err := svc.Create(&domain.CreateServiceSlotRequest{
			Name: "인스타 좋아요", PlatformID: "p1", CategoryID: "c1", Price: 100,
		})

		assert.NoError(t, err)
		assert.Equal(t, "개", resp.Unit)
		assert.Equal(t, []string{}, resp.Features)
		slotRepo.AssertExpectations(t)
	})

	t.Run("최소 수량이 최대 수량보다 크면 거절한다", func(t *testing.T) {
		slotRepo, platformRepo, categoryRepo, svc := newSlotFixture()

		platformRepo.On("FindByID", "p1").Return(&domain.Platform{ID: "p1"}, nil)
		categoryRepo.On("FindByID", "c1").Return(&domain.Category{ID: "c1", PlatformID: "p1"}, nil)
		slotRepo.On("ExistsBySlug", "p1", "c1", mock.Anything, "").Return(false, nil)

		minQ, maxQ := 100, 10
		_, err := svc.Create(&domain.CreateServiceSlotRequest{
			Name: "테스트", PlatformID: "p1", CategoryID: "c1", Price: 100,
			MinQuantity: &minQ, MaxQuantity: &maxQ,
		})

		assert.True(t, common.IsValidation(err))
		slotRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("카테고리가 다른 플랫폼 소속이면 거절한다", func(t *testing.T) {
		slotRepo, platformRepo, categoryRepo, svc := newSlotFixture()

		platformRepo.On("FindByID", "p1").Return(&domain.Platform{ID: "p1"}, nil)
		categoryRepo.On("FindByID", "c9").Return(&domain.Category{ID: "c9", PlatformID: "other"}, nil)

		_, err := svc.Create(&domain.CreateServiceSlotRequest{
			Name: "테스트", PlatformID: "p1", CategoryID: "c9", Price: 100,
		})

		assert.True(t, common.IsValidation(err))
		slotRepo.AssertNotCalled(t, "ExistsBySlug", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestServiceSlotService_Duplicate(t *testing.T) {
	src := &domain.ServiceSlot{
		ID: "s1", Name: "인스타 좋아요", Slug: "인스타-좋아요",
		PlatformID: "p1", CategoryID: "c1", Price: 100,
		MinQuantity: 10, MaxQuantity: 5000, Unit: "개", DeliveryTime: "1-24시간",
		Quality: domain.QualityPremium, IsActive: true, IsVisible: true,
		TotalOrders: 77, TotalRevenue: 12345,
	}

	t.Run("복사본 이름을 붙이고 실적을 초기화한다", func(t *testing.T) {
		slotRepo, _, _, svc := newSlotFixture()

		slotRepo.On("FindByID", "s1").Return(src, nil)
		slotRepo.On("ExistsBySlug", "p1", "c1", "인스타-좋아요-복사본", "").Return(false, nil)
		slotRepo.On("Create", mock.MatchedBy(func(s *domain.ServiceSlot) bool {
			return s.Name == "인스타 좋아요 (복사본)" && !s.IsActive &&
				s.TotalOrders == 0 && s.TotalRevenue == 0 &&
				s.ID != "s1" && s.Quality == domain.QualityPremium
		})).Return(nil)

		resp, err := svc.Duplicate("s1")

		assert.NoError(t, err)
		assert.Equal(t, "인스타 좋아요 (복사본)", resp.Name)
		assert.False(t, resp.IsActive)
		slotRepo.AssertExpectations(t)
	})

	t.Run("복사본 슬러그가 이미 있으면 번호를 붙인다", func(t *testing.T) {
		slotRepo, _, _, svc := newSlotFixture()

		slotRepo.On("FindByID", "s1").Return(src, nil)
		slotRepo.On("ExistsBySlug", "p1", "c1", "인스타-좋아요-복사본", "").Return(true, nil)
		slotRepo.On("ExistsBySlug", "p1", "c1", "인스타-좋아요-복사본-2", "").Return(false, nil)
		slotRepo.On("Create", mock.MatchedBy(func(s *domain.ServiceSlot) bool {
			return s.Name == "인스타 좋아요 (복사본 2)"
		})).Return(nil)

		resp, err := svc.Duplicate("s1")

		assert.NoError(t, err)
		assert.Equal(t, "인스타-좋아요-복사본-2", resp.Slug)
	})
}

func TestServiceSlotService_Delete(t *testing.T) {
	slotRepo, _, _, svc := newSlotFixture()

	slotRepo.On("FindByID", "s1").Return(&domain.ServiceSlot{ID: "s1"}, nil)
	slotRepo.On("CountDependents", "s1").Return(domain.ServiceSlotCounts{Orders: 3}, nil)

	err := svc.Delete("s1")

	assert.True(t, common.IsConflict(err))
	assert.EqualError(t, err, "서비스를 삭제할 수 없습니다. 3개의 연관된 항목이 있습니다.")
	slotRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
