package ask

import (
	"rexsphere/internal/domain/ask/handler"
	"rexsphere/internal/domain/ask/repository"
	"rexsphere/internal/domain/ask/service"
	userrepo "rexsphere/internal/domain/user/repository"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// AskModule 提问模块
type AskModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&AskModule{})
}

func (m *AskModule) Name() string {
	return "ask"
}

func (m *AskModule) Priority() int {
	return 10
}

func (m *AskModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	askRepo := repository.NewAskRepository(ctx.DB)
	userRepo := userrepo.NewUserRepository(ctx.DB)
	askService := service.NewAskService(askRepo, userRepo)
	askHandler := handler.NewAskHandler(askService)

	// 2. 路由注册
	setupRoutes(ctx.Router, askHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.AskHandler) {
	askGroup := r.Group("/ask")
	askGroup.Use(middleware.AuthMiddleware())
	{
		askGroup.POST("", h.Create)
		askGroup.GET("/all", h.GetAll)
		askGroup.GET("/id/:id", h.GetByID)
		askGroup.GET("/category/:category", h.GetByCategory)
		askGroup.DELETE("/id/:id", h.Delete)
	}
}
