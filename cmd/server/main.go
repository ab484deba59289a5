package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tthaingoc/EcoFashion-sub003/internal/config"
	"github.com/tthaingoc/EcoFashion-sub003/internal/database"
	"github.com/tthaingoc/EcoFashion-sub003/internal/event"
	"github.com/tthaingoc/EcoFashion-sub003/internal/logger"
	"github.com/tthaingoc/EcoFashion-sub003/internal/router"
	"github.com/tthaingoc/EcoFashion-sub003/internal/task"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 按配置初始化日志器
	level := logger.ParseLogLevel(cfg.Log.Level)
	if cfg.Log.Output == "file" {
		l, err := logger.NewWithFileRotation(level, cfg.Log.File)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		logger.SetDefaultLogger(l)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 启动支付事件监控
	monitor := event.NewPaymentMonitor(db, cfg)
	if err := monitor.Start(); err != nil {
		log.Fatalf("Failed to start payment monitor: %v", err)
	}
	defer monitor.Stop()

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, monitor, cfg)

	// 启动定时任务
	manager := task.Start(db, cfg)
	defer manager.Stop()

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
