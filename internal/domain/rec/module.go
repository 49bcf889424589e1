package rec

import (
	askrepo "rexsphere/internal/domain/ask/repository"
	"rexsphere/internal/domain/rec/handler"
	"rexsphere/internal/domain/rec/repository"
	"rexsphere/internal/domain/rec/service"
	userrepo "rexsphere/internal/domain/user/repository"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// RecModule 推荐模块
type RecModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&RecModule{})
}

func (m *RecModule) Name() string {
	return "rec"
}

func (m *RecModule) Priority() int {
	// 在 ask 之后，推荐可以挂在提问下面
	return 11
}

func (m *RecModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	recRepo := repository.NewRecRepository(ctx.DB)
	userRepo := userrepo.NewUserRepository(ctx.DB)
	askRepo := askrepo.NewAskRepository(ctx.DB)
	recService := service.NewRecService(recRepo, userRepo, askRepo)
	recHandler := handler.NewRecHandler(recService)

	// 2. 路由注册
	setupRoutes(ctx.Router, recHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.RecHandler) {
	recGroup := r.Group("/rec")
	recGroup.Use(middleware.AuthMiddleware())
	{
		recGroup.POST("", h.Create)
		recGroup.GET("", h.GetStandalone)
		recGroup.GET("/all", h.GetAll)
		recGroup.GET("/id/:id", h.GetByID)
		recGroup.GET("/askid/:askId", h.GetByAskID)
		recGroup.GET("/category/:category", h.GetByCategory)
		recGroup.DELETE("/id/:id", h.Delete)
	}
}
