package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neulketing/instaup-backend/internal/common"
)

// AdminLevel minimum member level for the admin console
const AdminLevel = 10

// RequireAdmin checks that the authenticated user has admin level
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserLevel(c) < AdminLevel {
			common.Fail(c, http.StatusForbidden, "관리자 권한이 필요합니다.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
