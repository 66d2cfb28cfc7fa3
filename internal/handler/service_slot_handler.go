package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/neulketing/instaup-backend/internal/service"
	"github.com/neulketing/instaup-backend/pkg/cache"
)

// ServiceSlotHandler handles HTTP requests for service slots
type ServiceSlotHandler struct {
	service service.ServiceSlotService
	cache   cache.Service
}

// NewServiceSlotHandler creates a new ServiceSlotHandler
func NewServiceSlotHandler(service service.ServiceSlotService, cache cache.Service) *ServiceSlotHandler {
	return &ServiceSlotHandler{service: service, cache: cache}
}

// List godoc
// @Summary      서비스 목록 조회
// @Description  플랫폼, 카테고리, 검색어, 활성 여부로 필터링한 서비스 목록을 조회합니다
// @Tags         service-slots
// @Produce      json
// @Param        page        query  int     false  "페이지 (기본 1)"
// @Param        limit       query  int     false  "페이지 크기 (기본 50, 최대 100)"
// @Param        platformId  query  string  false  "플랫폼 ID"
// @Param        categoryId  query  string  false  "카테고리 ID"
// @Param        search      query  string  false  "이름/설명 검색어"
// @Param        isActive    query  bool    false  "활성 여부"
// @Success      200  {object}  common.Response{data=domain.ServiceSlotListResult}
// @Failure      500  {object}  common.Response
// @Router       /service-slots [get]
func (h *ServiceSlotHandler) List(c *gin.Context) {
	if serveCachedList(c, h.cache, cacheEntityServiceSlots) {
		return
	}

	q := parseListQuery(c)
	result, err := h.service.List(domain.ServiceSlotFilter{
		PlatformID: q.PlatformID,
		CategoryID: q.CategoryID,
		Search:     q.Search,
		IsActive:   q.IsActive,
		Page:       q.Page,
		Limit:      q.Limit,
	})
	if err != nil {
		common.FailError(c, "서비스 목록 조회에 실패했습니다.", err)
		return
	}

	storeCachedList(c, h.cache, cacheEntityServiceSlots, result)
	common.OK(c, result)
}

// Get godoc
// @Summary      서비스 상세 조회
// @Tags         service-slots
// @Produce      json
// @Param        id  path  string  true  "서비스 ID"
// @Success      200  {object}  common.Response{data=domain.ServiceSlotResponse}
// @Failure      404  {object}  common.Response
// @Router       /service-slots/{id} [get]
func (h *ServiceSlotHandler) Get(c *gin.Context) {
	data, err := h.service.Get(c.Param("id"))
	if err != nil {
		common.FailError(c, "서비스 조회에 실패했습니다.", err)
		return
	}

	common.OK(c, data)
}

// Create godoc
// @Summary      서비스 생성
// @Description  플랫폼과 카테고리 아래에 새 판매 서비스를 생성합니다
// @Tags         service-slots
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CreateServiceSlotRequest  true  "서비스 생성 요청"
// @Success      201  {object}  common.Response{data=domain.ServiceSlotResponse}
// @Failure      400  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /service-slots [post]
func (h *ServiceSlotHandler) Create(c *gin.Context) {
	var req domain.CreateServiceSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "잘못된 요청 형식입니다.", err)
		return
	}

	data, err := h.service.Create(&req)
	if err != nil {
		common.FailError(c, "서비스 생성에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityServiceSlots, cacheEntityCategories, cacheEntityPlatforms)
	common.Created(c, data, "서비스가 생성되었습니다.")
}

// Update godoc
// @Summary      서비스 수정
// @Tags         service-slots
// @Accept       json
// @Produce      json
// @Param        id       path  string                           true  "서비스 ID"
// @Param        request  body  domain.UpdateServiceSlotRequest  true  "서비스 수정 요청"
// @Success      200  {object}  common.Response{data=domain.ServiceSlotResponse}
// @Failure      400  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /service-slots/{id} [put]
func (h *ServiceSlotHandler) Update(c *gin.Context) {
	var req domain.UpdateServiceSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "잘못된 요청 형식입니다.", err)
		return
	}

	data, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		common.FailError(c, "서비스 수정에 실패했습니다.", err)
		return
	}

	// 플랫폼/카테고리 이동 시 부모의 연관 개수가 바뀌므로 함께 무효화한다
	invalidateCache(c, h.cache, cacheEntityServiceSlots, cacheEntityCategories, cacheEntityPlatforms)
	common.OKMessage(c, data, "서비스가 수정되었습니다.")
}

// Delete godoc
// @Summary      서비스 삭제
// @Description  주문 이력이 없을 때만 삭제합니다
// @Tags         service-slots
// @Produce      json
// @Param        id  path  string  true  "서비스 ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /service-slots/{id} [delete]
func (h *ServiceSlotHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		common.FailError(c, "서비스 삭제에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityServiceSlots, cacheEntityCategories, cacheEntityPlatforms)
	common.OKMessage(c, nil, "서비스가 삭제되었습니다.")
}

// ToggleStatus godoc
// @Summary      서비스 활성 상태 변경
// @Tags         service-slots
// @Accept       json
// @Produce      json
// @Param        id       path  string                      true  "서비스 ID"
// @Param        request  body  domain.ToggleStatusRequest  true  "활성 여부"
// @Success      200  {object}  common.Response{data=domain.ServiceSlotResponse}
// @Failure      404  {object}  common.Response
// @Router       /service-slots/{id}/toggle [patch]
func (h *ServiceSlotHandler) ToggleStatus(c *gin.Context) {
	var req domain.ToggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "잘못된 요청 형식입니다.", err)
		return
	}

	data, err := h.service.ToggleStatus(c.Param("id"), req.IsActive)
	if err != nil {
		common.FailError(c, "서비스 상태 변경에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityServiceSlots)
	common.OKMessage(c, data, "서비스 상태가 변경되었습니다.")
}

// Duplicate godoc
// @Summary      서비스 복제
// @Description  기존 서비스를 비활성 상태의 복사본으로 만듭니다. 판매 실적은 초기화됩니다
// @Tags         service-slots
// @Produce      json
// @Param        id  path  string  true  "서비스 ID"
// @Success      201  {object}  common.Response{data=domain.ServiceSlotResponse}
// @Failure      404  {object}  common.Response
// @Router       /service-slots/{id}/duplicate [post]
func (h *ServiceSlotHandler) Duplicate(c *gin.Context) {
	data, err := h.service.Duplicate(c.Param("id"))
	if err != nil {
		common.FailError(c, "서비스 복제에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityServiceSlots, cacheEntityCategories, cacheEntityPlatforms)
	common.Created(c, data, "서비스가 복제되었습니다.")
}
