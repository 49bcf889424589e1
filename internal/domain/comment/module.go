package comment

import (
	"rexsphere/internal/domain/comment/handler"
	"rexsphere/internal/domain/comment/repository"
	"rexsphere/internal/domain/comment/service"
	userrepo "rexsphere/internal/domain/user/repository"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CommentModule 评论模块
type CommentModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&CommentModule{})
}

func (m *CommentModule) Name() string {
	return "comment"
}

func (m *CommentModule) Priority() int {
	return 40
}

func (m *CommentModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	commentRepo := repository.NewCommentRepository(ctx.DB)
	userRepo := userrepo.NewUserRepository(ctx.DB)
	commentService := service.NewCommentService(commentRepo, userRepo)
	commentHandler := handler.NewCommentHandler(commentService)

	// 2. 路由注册
	setupRoutes(ctx.Router, commentHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CommentHandler) {
	commentGroup := r.Group("/comment")
	commentGroup.Use(middleware.AuthMiddleware())
	{
		commentGroup.POST("", h.Add)
		commentGroup.GET("/all", h.GetAll)
		commentGroup.GET("/ask/:askId", h.GetForAsk)
		commentGroup.GET("/rec/:recId", h.GetForRec)
		commentGroup.GET("/ask/:askId/count", h.CountForAsk)
		commentGroup.GET("/rec/:recId/count", h.CountForRec)
		commentGroup.PUT("/:id", h.Update)
		commentGroup.DELETE("/:id", h.Delete)
	}
}
