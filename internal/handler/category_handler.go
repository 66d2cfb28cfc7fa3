package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/neulketing/instaup-backend/internal/service"
	"github.com/neulketing/instaup-backend/pkg/cache"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	service service.CategoryService
	cache   cache.Service
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(service service.CategoryService, cache cache.Service) *CategoryHandler {
	return &CategoryHandler{service: service, cache: cache}
}

// List godoc
// @Summary      카테고리 목록 조회
// @Description  플랫폼, 검색어, 활성 여부로 필터링한 카테고리 목록을 조회합니다
// @Tags         categories
// @Produce      json
// @Param        page        query  int     false  "페이지 (기본 1)"
// @Param        limit       query  int     false  "페이지 크기 (기본 50, 최대 100)"
// @Param        platformId  query  string  false  "플랫폼 ID"
// @Param        search      query  string  false  "이름/설명 검색어"
// @Param        isActive    query  bool    false  "활성 여부"
// @Success      200  {object}  common.Response{data=domain.CategoryListResult}
// @Failure      500  {object}  common.Response
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	if serveCachedList(c, h.cache, cacheEntityCategories) {
		return
	}

	q := parseListQuery(c)
	result, err := h.service.List(domain.CategoryFilter{
		PlatformID: q.PlatformID,
		Search:     q.Search,
		IsActive:   q.IsActive,
		Page:       q.Page,
		Limit:      q.Limit,
	})
	if err != nil {
		common.FailError(c, "카테고리 목록 조회에 실패했습니다.", err)
		return
	}

	storeCachedList(c, h.cache, cacheEntityCategories, result)
	common.OK(c, result)
}

// Get godoc
// @Summary      카테고리 상세 조회
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "카테고리 ID"
// @Success      200  {object}  common.Response{data=domain.CategoryResponse}
// @Failure      404  {object}  common.Response
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	data, err := h.service.Get(c.Param("id"))
	if err != nil {
		common.FailError(c, "카테고리 조회에 실패했습니다.", err)
		return
	}

	common.OK(c, data)
}

// Create godoc
// @Summary      카테고리 생성
// @Description  플랫폼 범위 안에서 유일한 슬러그로 카테고리를 생성합니다
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CreateCategoryRequest  true  "카테고리 생성 요청"
// @Success      201  {object}  common.Response{data=domain.CategoryResponse}
// @Failure      400  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req domain.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "잘못된 요청 형식입니다.", err)
		return
	}

	data, err := h.service.Create(&req)
	if err != nil {
		common.FailError(c, "카테고리 생성에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityCategories, cacheEntityPlatforms)
	common.Created(c, data, "카테고리가 생성되었습니다.")
}

// Update godoc
// @Summary      카테고리 수정
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "카테고리 ID"
// @Param        request  body  domain.UpdateCategoryRequest  true  "카테고리 수정 요청"
// @Success      200  {object}  common.Response{data=domain.CategoryResponse}
// @Failure      400  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	var req domain.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "잘못된 요청 형식입니다.", err)
		return
	}

	data, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		common.FailError(c, "카테고리 수정에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityCategories, cacheEntityPlatforms)
	common.OKMessage(c, data, "카테고리가 수정되었습니다.")
}

// Delete godoc
// @Summary      카테고리 삭제
// @Description  연관된 서비스, 상품이 없을 때만 삭제합니다
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "카테고리 ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		common.FailError(c, "카테고리 삭제에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityCategories, cacheEntityPlatforms)
	common.OKMessage(c, nil, "카테고리가 삭제되었습니다.")
}

// ToggleStatus godoc
// @Summary      카테고리 활성 상태 변경
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id       path  string                      true  "카테고리 ID"
// @Param        request  body  domain.ToggleStatusRequest  true  "활성 여부"
// @Success      200  {object}  common.Response{data=domain.CategoryResponse}
// @Failure      404  {object}  common.Response
// @Router       /categories/{id}/toggle [patch]
func (h *CategoryHandler) ToggleStatus(c *gin.Context) {
	var req domain.ToggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "잘못된 요청 형식입니다.", err)
		return
	}

	data, err := h.service.ToggleStatus(c.Param("id"), req.IsActive)
	if err != nil {
		common.FailError(c, "카테고리 상태 변경에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityCategories)
	common.OKMessage(c, data, "카테고리 상태가 변경되었습니다.")
}
