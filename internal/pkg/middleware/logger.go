package middleware

import (
	"time"

	"rexsphere/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggerMiddleware 访问日志，复用 TraceMiddleware 写入的追踪 ID
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		if logger.Log == nil {
			return
		}

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("trace_id", c.GetString(CtxTraceIDKey)),
			zap.Duration("cost", time.Since(start)),
		}
		if userID, ok := CurrentUserID(c); ok {
			fields = append(fields, zap.Uint("user_id", userID))
		}
		logger.Log.Info(path, fields...)
	}
}
