package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/neulketing/instaup-backend/internal/service"
	"github.com/neulketing/instaup-backend/pkg/cache"
)

// IconHandler handles HTTP requests for icon uploads
type IconHandler struct {
	service service.IconAssetService
	cache   cache.Service
}

// NewIconHandler creates a new IconHandler
func NewIconHandler(service service.IconAssetService, cache cache.Service) *IconHandler {
	return &IconHandler{service: service, cache: cache}
}

// List godoc
// @Summary      아이콘 목록 조회
// @Description  업로드된 아이콘을 사용처 개수와 함께 조회합니다
// @Tags         icons
// @Produce      json
// @Param        page    query  int     false  "페이지 (기본 1)"
// @Param        limit   query  int     false  "페이지 크기 (기본 50, 최대 100)"
// @Param        search  query  string  false  "파일명 검색어"
// @Success      200  {object}  common.Response{data=domain.IconAssetListResult}
// @Failure      500  {object}  common.Response
// @Router       /icons [get]
func (h *IconHandler) List(c *gin.Context) {
	if serveCachedList(c, h.cache, cacheEntityIcons) {
		return
	}

	q := parseListQuery(c)
	result, err := h.service.List(domain.IconAssetFilter{
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		common.FailError(c, "아이콘 목록 조회에 실패했습니다.", err)
		return
	}

	storeCachedList(c, h.cache, cacheEntityIcons, result)
	common.OK(c, result)
}

// Get godoc
// @Summary      아이콘 상세 조회
// @Tags         icons
// @Produce      json
// @Param        id  path  string  true  "아이콘 ID"
// @Success      200  {object}  common.Response{data=domain.IconAssetResponse}
// @Failure      404  {object}  common.Response
// @Router       /icons/{id} [get]
func (h *IconHandler) Get(c *gin.Context) {
	data, err := h.service.Get(c.Param("id"))
	if err != nil {
		common.FailError(c, "아이콘 조회에 실패했습니다.", err)
		return
	}

	common.OK(c, data)
}

// Upload godoc
// @Summary      아이콘 업로드
// @Description  2MB 이하의 이미지 파일 한 개를 업로드합니다
// @Tags         icons
// @Accept       multipart/form-data
// @Produce      json
// @Param        icon  formData  file  true  "아이콘 파일 (png, jpeg, webp, svg)"
// @Success      201  {object}  common.Response{data=domain.IconAssetResponse}
// @Failure      400  {object}  common.Response
// @Router       /upload/icon [post]
func (h *IconHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		common.FailError(c, "아이콘 업로드에 실패했습니다.",
			common.NewValidationReason("업로드 요청을 읽을 수 없습니다.", "UPLOAD_ERROR"))
		return
	}

	files := form.File["icon"]
	if len(files) == 0 {
		common.FailError(c, "아이콘 업로드에 실패했습니다.",
			common.NewValidationReason("업로드할 파일이 없습니다.", "NO_FILE"))
		return
	}
	if len(files) > domain.MaxIconFileCount {
		common.FailError(c, "아이콘 업로드에 실패했습니다.",
			common.NewValidationReason("파일은 한 번에 하나만 업로드할 수 있습니다.", "TOO_MANY_FILES"))
		return
	}

	data, err := h.service.Upload(files[0])
	if err != nil {
		common.FailError(c, "아이콘 업로드에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityIcons)
	common.Created(c, data, "아이콘이 업로드되었습니다.")
}

// Delete godoc
// @Summary      아이콘 삭제
// @Description  어떤 항목에서도 사용하지 않는 아이콘만 삭제합니다
// @Tags         icons
// @Produce      json
// @Param        id  path  string  true  "아이콘 ID"
// @Success      200  {object}  common.Response
// @Failure      404  {object}  common.Response
// @Failure      409  {object}  common.Response
// @Router       /icons/{id} [delete]
func (h *IconHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		common.FailError(c, "아이콘 삭제에 실패했습니다.", err)
		return
	}

	invalidateCache(c, h.cache, cacheEntityIcons)
	common.OKMessage(c, nil, "아이콘이 삭제되었습니다.")
}
