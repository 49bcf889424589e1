package user

import (
	"rexsphere/internal/domain/user/handler"
	"rexsphere/internal/domain/user/repository"
	"rexsphere/internal/domain/user/service"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/internal/pkg/registry"
	"rexsphere/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserModule 用户模块
type UserModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	// 用户模块优先级最高，其余业务模块都依赖已认证的用户
	return 1
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	userRepo := repository.NewUserRepository(ctx.DB)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	// 2. 路由注册
	setupRoutes(ctx.Router, userHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.UserHandler) {
	// 公开路由
	publicGroup := r.Group("/public")
	{
		publicGroup.POST("/register", h.Register)
		publicGroup.POST("/login", h.Login)
		publicGroup.GET("/health-check", func(c *gin.Context) {
			response.Success(c, gin.H{"status": "ok"})
		})
	}

	// 受保护的路由
	userGroup := r.Group("/user")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.GET("", h.Me)
		userGroup.PUT("", h.Update)
		userGroup.GET("/all", h.GetAll)
		userGroup.GET("/id/:id", h.GetByID)
		userGroup.GET("/username/:username", h.GetByUsername)
		userGroup.PUT("/update-password", h.UpdatePassword)
		userGroup.GET("/preferences", h.GetPreferredCategories)
		userGroup.POST("/upload-profile-picture", h.UploadProfilePicture)
		userGroup.DELETE("/:id", h.Delete)
	}
}
