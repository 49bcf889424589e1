package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxTraceIDKey 追踪 ID 在 gin 上下文中的键
const CtxTraceIDKey = "traceID"

// TraceMiddleware 透传或生成请求追踪 ID
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 调用方带了 X-Trace-ID 就沿用，跨服务排查时串得起来
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Set(CtxTraceIDKey, traceID)
		c.Header("X-Trace-ID", traceID)

		c.Next()
	}
}
