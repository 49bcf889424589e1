package feed

import (
	"rexsphere/internal/domain/feed/handler"
	"rexsphere/internal/domain/feed/repository"
	"rexsphere/internal/domain/feed/service"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// FeedModule 动态流模块
type FeedModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&FeedModule{})
}

func (m *FeedModule) Name() string {
	return "feed"
}

func (m *FeedModule) Priority() int {
	return 30
}

func (m *FeedModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	feedRepo := repository.NewFeedRepository(ctx.DB)
	feedService := service.NewFeedService(feedRepo)
	feedHandler := handler.NewFeedHandler(feedService)

	// 2. 路由注册
	setupRoutes(ctx.Router, feedHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.FeedHandler) {
	feedGroup := r.Group("/feed")
	feedGroup.Use(middleware.AuthMiddleware())
	{
		feedGroup.GET("", h.GetAll)
		feedGroup.GET("/page", h.GetPage)
		feedGroup.GET("/category/:category", h.GetByCategory)
		feedGroup.POST("", h.Append)
	}
}
