package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/neulketing/instaup-backend/internal/service"
	"github.com/neulketing/instaup-backend/pkg/cache"
)

// BulkHandler handles bulk status updates
type BulkHandler struct {
	service service.BulkService
	cache   cache.Service
}

// NewBulkHandler creates a new BulkHandler
func NewBulkHandler(service service.BulkService, cache cache.Service) *BulkHandler {
	return &BulkHandler{service: service, cache: cache}
}

// UpdateStatus godoc
// @Summary      일괄 활성 상태 변경
// @Description  같은 유형의 여러 항목의 활성 여부를 한 번에 바꿉니다. 개별 실패는 건너뛰고 결과에 보고합니다
// @Tags         bulk
// @Accept       json
// @Produce      json
// @Param        request  body  domain.BulkStatusRequest  true  "일괄 변경 요청"
// @Success      200  {object}  common.Response{data=domain.BulkStatusResult}
// @Failure      400  {object}  common.Response
// @Router       /bulk/status [patch]
func (h *BulkHandler) UpdateStatus(c *gin.Context) {
	var req domain.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "잘못된 요청 형식입니다.", err)
		return
	}

	result, err := h.service.UpdateStatus(&req)
	if err != nil {
		common.FailError(c, "일괄 상태 변경에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityPlatforms, cacheEntityCategories, cacheEntityServiceSlots)
	common.OKMessage(c, result, "일괄 상태 변경이 완료되었습니다.")
}
