package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// listQuery common list query parameters
type listQuery struct {
	Page       int
	Limit      int
	Search     string
	IsActive   *bool
	PlatformID string
	CategoryID string
}

// parseListQuery reads paging and filter parameters from the query string.
// 파싱에 실패한 값은 0 또는 nil로 두고 서비스 계층의 기본값에 맡긴다.
func parseListQuery(c *gin.Context) listQuery {
	q := listQuery{
		Search:     c.Query("search"),
		PlatformID: c.Query("platformId"),
		CategoryID: c.Query("categoryId"),
	}

	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		q.Limit = v
	}
	if raw := c.Query("isActive"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			q.IsActive = &v
		}
	}

	return q
}
