package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/neulketing/instaup-backend/internal/service"
	"github.com/neulketing/instaup-backend/pkg/cache"
)

// PlatformHandler handles HTTP requests for platforms
type PlatformHandler struct {
	service service.PlatformService
	cache   cache.Service
}

// NewPlatformHandler creates a new PlatformHandler
func NewPlatformHandler(service service.PlatformService, cache cache.Service) *PlatformHandler {
	return &PlatformHandler{service: service, cache: cache}
}

// List godoc
// @Summary      플랫폼 목록 조회
// @Description  검색어, 활성 여부로 필터링한 플랫폼 목록을 페이지 단위로 조회합니다
// @Tags         platforms
// @Produce      json
// @Param        page      query  int     false  "페이지 (기본 1)"
// @Param        limit     query  int     false  "페이지 크기 (기본 50, 최대 100)"
// @Param        search    query  string  false  "이름/설명 검색어"
// @Param        isActive  query  bool    false  "활성 여부"
// @Success      200  {object}  common.Response{data=domain.PlatformListResult}
// @Failure      500  {object}  common.Response
// @Router       /platforms [get]
func (h *PlatformHandler) List(c *gin.Context) {
	if serveCachedList(c, h.cache, cacheEntityPlatforms) {
		return
	}

	q := parseListQuery(c)
	result, err := h.service.List(domain.PlatformFilter{
		Search:   q.Search,
		IsActive: q.IsActive,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		common.FailError(c, "플랫폼 목록 조회에 실패했습니다.", err)
		return
	}

	storeCachedList(c, h.cache, cacheEntityPlatforms, result)
	common.OK(c, result)
}

// Get godoc
// @Summary      플랫폼 상세 조회
// @Tags         platforms
// @Produce      json
// @Param        id  path  string  true  "플랫폼 ID"
// @Success      200  {object}  common.Response{data=domain.PlatformResponse}
// @Failure      404  {object}  common.Response
// @Router       /platforms/{id} [get]
func (h *PlatformHandler) Get(c *gin.Context) {
	data, err := h.service.Get(c.Param("id"))
	if err != nil {
		common.FailError(c, "플랫폼 조회에 실패했습니다.", err)
		return
	}

	common.OK(c, data)
}

// Create godoc
// @Summary      플랫폼 생성
// @Description  이름에서 슬러그를 만들어 새 플랫폼을 생성합니다
// @Tags         platforms
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CreatePlatformRequest  true  "플랫폼 생성 요청"
// @Success      201  {object}  common.Response{data=domain.PlatformResponse}
// @Failure      400  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /platforms [post]
func (h *PlatformHandler) Create(c *gin.Context) {
	var req domain.CreatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "잘못된 요청 형식입니다.", err)
		return
	}

	data, err := h.service.Create(&req)
	if err != nil {
		common.FailError(c, "플랫폼 생성에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityPlatforms)
	common.Created(c, data, "플랫폼이 생성되었습니다.")
}

// Update godoc
// @Summary      플랫폼 수정
// @Description  요청 본문에 포함된 필드만 갱신합니다
// @Tags         platforms
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "플랫폼 ID"
// @Param        request  body  domain.UpdatePlatformRequest  true  "플랫폼 수정 요청"
// @Success      200  {object}  common.Response{data=domain.PlatformResponse}
// @Failure      400  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /platforms/{id} [put]
func (h *PlatformHandler) Update(c *gin.Context) {
	var req domain.UpdatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "잘못된 요청 형식입니다.", err)
		return
	}

	data, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		common.FailError(c, "플랫폼 수정에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityPlatforms)
	common.OKMessage(c, data, "플랫폼이 수정되었습니다.")
}

// Delete godoc
// @Summary      플랫폼 삭제
// @Description  연관된 카테고리, 서비스, 상품이 없을 때만 삭제합니다
// @Tags         platforms
// @Produce      json
// @Param        id  path  string  true  "플랫폼 ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /platforms/{id} [delete]
func (h *PlatformHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		common.FailError(c, "플랫폼 삭제에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityPlatforms)
	common.OKMessage(c, nil, "플랫폼이 삭제되었습니다.")
}

// ToggleStatus godoc
// @Summary      플랫폼 활성 상태 변경
// @Tags         platforms
// @Accept       json
// @Produce      json
// @Param        id       path  string                      true  "플랫폼 ID"
// @Param        request  body  domain.ToggleStatusRequest  true  "활성 여부"
// @Success      200  {object}  common.Response{data=domain.PlatformResponse}
// @Failure      404  {object}  common.Response
// @Router       /platforms/{id}/toggle [patch]
func (h *PlatformHandler) ToggleStatus(c *gin.Context) {
	var req domain.ToggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "잘못된 요청 형식입니다.", err)
		return
	}

	data, err := h.service.ToggleStatus(c.Param("id"), req.IsActive)
	if err != nil {
		common.FailError(c, "플랫폼 상태 변경에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityPlatforms)
	common.OKMessage(c, data, "플랫폼 상태가 변경되었습니다.")
}
