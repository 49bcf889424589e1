package main

import (
	"log"

	_ "rexsphere/docs" // swagger 文档
	_ "rexsphere/internal/domain/ask"
	_ "rexsphere/internal/domain/comment"
	_ "rexsphere/internal/domain/feed"
	_ "rexsphere/internal/domain/rec"
	_ "rexsphere/internal/domain/user"
	_ "rexsphere/internal/domain/vote"
	"rexsphere/internal/pkg/common"
	"rexsphere/internal/pkg/config"
	"rexsphere/internal/pkg/middleware"
	"rexsphere/internal/pkg/registry"
	"rexsphere/internal/pkg/uploader"
	"rexsphere/pkg/database"
	"rexsphere/pkg/logger"
	"rexsphere/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Rexsphere API
// @version 1.0
// @description 问答与推荐社区服务
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	logger.Init(config.GlobalConfig.App.Debug)
	defer logger.Sync()

	db := database.InitDatabase()
	rdb := database.InitRedis()

	// OSS 未配置时头像上传不可用，其余功能不受影响
	if config.GlobalConfig.OSS.Endpoint != "" {
		if err := uploader.InitUploader(); err != nil {
			logger.Log.Warn("OSS uploader init failed, profile picture upload disabled", zap.Error(err))
		}
	}

	gin.SetMode(config.GlobalConfig.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(cors.Default())
	r.Use(middleware.RateLimitMiddleware(rdb, 100))
	r.Use(metrics.Middleware())

	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/upload", middleware.AuthMiddleware(), common.UploadFiles)

	// 各业务模块通过 init() 自注册，这里统一按优先级初始化
	if err := registry.InitModules(&registry.ModuleContext{
		DB:     db,
		Redis:  rdb,
		Router: r,
	}); err != nil {
		log.Fatalf("Failed to initialize modules: %v", err)
	}

	addr := ":" + config.GlobalConfig.Server.Port
	logger.Log.Info("Server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
