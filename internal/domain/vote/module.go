package vote

import (
	askrepo "rexsphere/internal/domain/ask/repository"
	recrepo "rexsphere/internal/domain/rec/repository"
	userrepo "rexsphere/internal/domain/user/repository"
	"rexsphere/internal/domain/vote/handler"
	"rexsphere/internal/domain/vote/repository"
	"rexsphere/internal/domain/vote/service"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// VoteModule 投票模块
type VoteModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&VoteModule{})
}

func (m *VoteModule) Name() string {
	return "vote"
}

func (m *VoteModule) Priority() int {
	// 依赖 ask 和 rec 两类投票目标
	return 20
}

func (m *VoteModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	voteRepo := repository.NewVoteRepository(ctx.DB)
	userRepo := userrepo.NewUserRepository(ctx.DB)
	askRepo := askrepo.NewAskRepository(ctx.DB)
	recRepo := recrepo.NewRecRepository(ctx.DB)
	voteService := service.NewVoteService(voteRepo, userRepo, askRepo, recRepo)
	voteHandler := handler.NewVoteHandler(voteService)

	// 2. 路由注册
	setupRoutes(ctx.Router, voteHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.VoteHandler) {
	voteGroup := r.Group("/votes")
	voteGroup.Use(middleware.AuthMiddleware())
	{
		voteGroup.POST("/ask/:askId", h.CastForAsk)
		voteGroup.POST("/rec/:recId", h.CastForRec)
		voteGroup.GET("/ask/:askId/upvotes", h.CountAskUpvotes)
		voteGroup.GET("/ask/:askId/downvotes", h.CountAskDownvotes)
		voteGroup.GET("/rec/:recId/upvotes", h.CountRecUpvotes)
		voteGroup.GET("/rec/:recId/downvotes", h.CountRecDownvotes)
	}
}
