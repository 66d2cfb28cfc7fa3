package service

import (
	"testing"

	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCategoryService_Create(t *testing.T) {
	t.Run("같은 슬러그라도 플랫폼이 다르면 만들 수 있다", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		platformRepo := new(MockPlatformRepository)
		svc := NewCategoryService(repo, platformRepo)

		platformRepo.On("FindByID", "p2").Return(&domain.Platform{ID: "p2"}, nil)
		repo.On("ExistsBySlug", "p2", "팔로워", "").Return(false, nil)
		repo.On("Create", mock.MatchedBy(func(c *domain.Category) bool {
			return c.PlatformID == "p2" && c.Slug == "팔로워"
		})).Return(nil)

		resp, err := svc.Create(&domain.CreateCategoryRequest{Name: "팔로워", PlatformID: "p2"})

		assert.NoError(t, err)
		assert.Equal(t, "팔로워", resp.Slug)
		repo.AssertExpectations(t)
	})

	t.Run("플랫폼이 없으면 NotFound", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		platformRepo := new(MockPlatformRepository)
		svc := NewCategoryService(repo, platformRepo)

		platformRepo.On("FindByID", "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(&domain.CreateCategoryRequest{Name: "팔로워", PlatformID: "missing"})

		assert.True(t, common.IsNotFound(err))
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("같은 플랫폼 안의 슬러그 중복은 충돌", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		platformRepo := new(MockPlatformRepository)
		svc := NewCategoryService(repo, platformRepo)

		platformRepo.On("FindByID", "p1").Return(&domain.Platform{ID: "p1"}, nil)
		repo.On("ExistsBySlug", "p1", "팔로워", "").Return(true, nil)

		_, err := svc.Create(&domain.CreateCategoryRequest{Name: "팔로워", PlatformID: "p1"})

		assert.True(t, common.IsConflict(err))
	})
}

func TestCategoryService_Update(t *testing.T) {
	t.Run("플랫폼 이동 시 새 범위에서 중복을 검사한다", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		platformRepo := new(MockPlatformRepository)
		svc := NewCategoryService(repo, platformRepo)

		repo.On("FindByID", "c1").Return(&domain.Category{
			ID: "c1", Name: "팔로워", Slug: "팔로워", PlatformID: "p1",
		}, nil)
		platformRepo.On("FindByID", "p2").Return(&domain.Platform{ID: "p2"}, nil)
		repo.On("ExistsBySlug", "p2", "팔로워", "c1").Return(true, nil)

		newPlatform := "p2"
		_, err := svc.Update("c1", &domain.UpdateCategoryRequest{PlatformID: &newPlatform})

		assert.True(t, common.IsConflict(err))
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})
}
