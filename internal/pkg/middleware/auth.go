package middleware

import (
	"net/http"
	"strings"

	"rexsphere/pkg/response"
	"rexsphere/pkg/utils"

	"github.com/gin-gonic/gin"
)

// 上下文键：认证中间件解析出的用户身份。
// 所有核心操作都从这里拿到显式的 userID 参数，绝不从请求体读取。
const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// AuthMiddleware JWT认证中间件
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Authorization header is required")
			c.Abort()
			return
		}

		// 检查格式 "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)

		c.Next()
	}
}

// CurrentUserID 从上下文取出认证用户ID
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(CtxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
