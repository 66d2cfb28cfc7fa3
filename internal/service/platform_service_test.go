package service

import (
	"testing"

	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestPlatformService_Create(t *testing.T) {
	t.Run("이름에서 슬러그를 만들고 기본값을 채운다", func(t *testing.T) {
		repo := new(MockPlatformRepository)
		svc := NewPlatformService(repo)

		repo.On("ExistsBySlug", "인스타그램", "").Return(false, nil)
		repo.On("Create", mock.MatchedBy(func(p *domain.Platform) bool {
			return p.Slug == "인스타그램" && p.IsActive && p.IsVisible && p.Color == "#000000" && p.ID != ""
		})).Return(nil)

		resp, err := svc.Create(&domain.CreatePlatformRequest{Name: "인스타그램"})

		assert.NoError(t, err)
		assert.Equal(t, "인스타그램", resp.Slug)
		assert.True(t, resp.IsActive)
		repo.AssertExpectations(t)
	})

	t.Run("슬러그 중복이면 충돌 오류를 낸다", func(t *testing.T) {
		repo := new(MockPlatformRepository)
		svc := NewPlatformService(repo)

		repo.On("ExistsBySlug", "instagram", "").Return(true, nil)

		_, err := svc.Create(&domain.CreatePlatformRequest{Name: "Instagram"})

		assert.True(t, common.IsConflict(err))
		assert.EqualError(t, err, "이미 존재하는 플랫폼 이름입니다.")
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("유효 문자가 없는 이름은 검증 오류를 낸다", func(t *testing.T) {
		repo := new(MockPlatformRepository)
		svc := NewPlatformService(repo)

		_, err := svc.Create(&domain.CreatePlatformRequest{Name: "!!!"})

		assert.True(t, common.IsValidation(err))
		repo.AssertNotCalled(t, "ExistsBySlug", mock.Anything, mock.Anything)
	})
}

func TestPlatformService_Update(t *testing.T) {
	existing := func() *domain.Platform {
		return &domain.Platform{
			ID: "p1", Name: "Instagram", Slug: "instagram",
			Color: "#E1306C", IsActive: true, IsVisible: true,
		}
	}

	t.Run("키가 온 필드만 덮어쓴다", func(t *testing.T) {
		repo := new(MockPlatformRepository)
		svc := NewPlatformService(repo)

		repo.On("FindByID", "p1").Return(existing(), nil)
		repo.On("Update", mock.MatchedBy(func(p *domain.Platform) bool {
			return p.Name == "Instagram" && p.Slug == "instagram" && !p.IsActive
		})).Return(nil)
		repo.On("CountDependents", "p1").Return(domain.PlatformCounts{}, nil)

		isActive := false
		resp, err := svc.Update("p1", &domain.UpdatePlatformRequest{IsActive: &isActive})

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.Equal(t, "#E1306C", resp.Color)
		repo.AssertExpectations(t)
	})

	t.Run("이름이 바뀌면 자기 자신을 제외하고 중복을 검사한다", func(t *testing.T) {
		repo := new(MockPlatformRepository)
		svc := NewPlatformService(repo)

		repo.On("FindByID", "p1").Return(existing(), nil)
		repo.On("ExistsBySlug", "youtube", "p1").Return(true, nil)

		name := "YouTube"
		_, err := svc.Update("p1", &domain.UpdatePlatformRequest{Name: &name})

		assert.True(t, common.IsConflict(err))
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("없는 플랫폼이면 NotFound", func(t *testing.T) {
		repo := new(MockPlatformRepository)
		svc := NewPlatformService(repo)

		repo.On("FindByID", "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update("missing", &domain.UpdatePlatformRequest{})

		assert.True(t, common.IsNotFound(err))
	})
}

func TestPlatformService_Delete(t *testing.T) {
	t.Run("연관 항목이 있으면 총계를 담아 거절한다", func(t *testing.T) {
		repo := new(MockPlatformRepository)
		svc := NewPlatformService(repo)

		repo.On("FindByID", "p1").Return(&domain.Platform{ID: "p1"}, nil)
		repo.On("CountDependents", "p1").Return(domain.PlatformCounts{Categories: 2, ServiceSlots: 3}, nil)

		err := svc.Delete("p1")

		assert.True(t, common.IsConflict(err))
		assert.EqualError(t, err, "플랫폼을 삭제할 수 없습니다. 5개의 연관된 항목이 있습니다.")
		repo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("연관 항목이 없으면 삭제한다", func(t *testing.T) {
		repo := new(MockPlatformRepository)
		svc := NewPlatformService(repo)

		repo.On("FindByID", "p1").Return(&domain.Platform{ID: "p1"}, nil)
		repo.On("CountDependents", "p1").Return(domain.PlatformCounts{}, nil)
		repo.On("Delete", "p1").Return(nil)

		assert.NoError(t, svc.Delete("p1"))
		repo.AssertExpectations(t)
	})
}

func TestPlatformService_List(t *testing.T) {
	t.Run("페이지 한도를 100으로 자른다", func(t *testing.T) {
		repo := new(MockPlatformRepository)
		svc := NewPlatformService(repo)

		repo.On("List", mock.MatchedBy(func(f domain.PlatformFilter) bool {
			return f.Page == 1 && f.Limit == 100
		})).Return([]*domain.Platform{{ID: "p1"}}, int64(1), nil)
		repo.On("CountDependentsBatch", []string{"p1"}).
			Return(map[string]domain.PlatformCounts{"p1": {Categories: 4}}, nil)

		result, err := svc.List(domain.PlatformFilter{Page: 0, Limit: 500})

		assert.NoError(t, err)
		assert.Len(t, result.Platforms, 1)
		assert.Equal(t, int64(4), result.Platforms[0].Count.Categories)
		assert.Equal(t, int64(1), result.Pagination.Pages)
		repo.AssertExpectations(t)
	})
}

func TestPlatformService_ToggleStatus(t *testing.T) {
	repo := new(MockPlatformRepository)
	svc := NewPlatformService(repo)

	repo.On("FindByID", "p1").Return(&domain.Platform{ID: "p1", IsActive: true}, nil)
	repo.On("Update", mock.MatchedBy(func(p *domain.Platform) bool { return !p.IsActive })).Return(nil)
	repo.On("CountDependents", "p1").Return(domain.PlatformCounts{}, nil)

	resp, err := svc.ToggleStatus("p1", false)

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
	repo.AssertExpectations(t)
}
