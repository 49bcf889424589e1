package logger

import (
	"log"

	"go.uber.org/zap"
)

// Log 全局 zap 日志实例，由 main 在启动时初始化
var Log *zap.Logger

// Init 初始化日志
// debug 模式使用开发配置（彩色、人类可读），否则使用生产 JSON 配置
func Init(debug bool) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Log = l
}

// Sync 刷新缓冲的日志条目，进程退出前调用
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
