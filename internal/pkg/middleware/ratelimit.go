package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"rexsphere/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// IPRateLimiter 存储每个IP的限流器（进程内实现，Redis 不可用时的降级方案）
type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  *sync.RWMutex
	r   rate.Limit
	b   int
}

// NewIPRateLimiter 创建一个新的IP限流器
// r: 每秒允许的请求数 (QPS)
// b: 桶的大小 (Burst)
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		mu:  &sync.RWMutex{},
		r:   r,
		b:   b,
	}
}

// GetLimiter 获取指定IP的限流器
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = limiter
	}

	return limiter
}

// RateLimitMiddleware 限流中间件
// 多实例部署时用 Redis 固定窗口计数；rdb 为 nil 时退回进程内令牌桶
func RateLimitMiddleware(rdb *redis.Client, qps int) gin.HandlerFunc {
	local := NewIPRateLimiter(rate.Limit(qps), qps*2)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		if rdb != nil {
			key := fmt.Sprintf("ratelimit:%s:%d", ip, time.Now().Unix())
			count, err := rdb.Incr(context.Background(), key).Result()
			if err == nil {
				if count == 1 {
					rdb.Expire(context.Background(), key, 2*time.Second)
				}
				if count > int64(qps) {
					response.Error(c, http.StatusTooManyRequests, response.ErrTooManyRequests, "Too many requests")
					c.Abort()
					return
				}
				c.Next()
				return
			}
			// Redis 出错时继续走本地限流
		}

		if !local.GetLimiter(ip).Allow() {
			response.Error(c, http.StatusTooManyRequests, response.ErrTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
