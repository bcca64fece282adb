package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hualeng/dashboard-metrics-backend/api"
	"github.com/hualeng/dashboard-metrics-backend/internal/dashboard"
	"github.com/hualeng/dashboard-metrics-backend/internal/platform/config"
	"github.com/hualeng/dashboard-metrics-backend/internal/platform/database"
	"github.com/hualeng/dashboard-metrics-backend/internal/platform/health"
	"github.com/hualeng/dashboard-metrics-backend/internal/platform/middleware"
	"github.com/hualeng/dashboard-metrics-backend/internal/platform/shutdown"
	"github.com/hualeng/dashboard-metrics-backend/internal/platform/startup"
	"github.com/hualeng/dashboard-metrics-backend/pkg/lifecycle"
	"github.com/joho/godotenv"
)

func main() {
	// .env仅用于本地开发，容器环境直接注入环境变量
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB(cfg.Database)

	// 执行应用启动初始化流程（建表 + 种子数据），失败则拒绝启动
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 阻塞式执行一次启动后健康检查
	fmt.Println("正在执行启动后健康检查...")
	health.PerformCheck()

	// 异步启动后台的持续健康检查器
	lifecycleMgr := lifecycle.NewManager()
	healthHandle, err := lifecycleMgr.NewServiceHandle("database-health-checker")
	if err != nil {
		panic(fmt.Sprintf("注册健康检查器失败: %v", err))
	}
	checkInterval := time.Duration(cfg.Health.CheckIntervalSeconds) * time.Second
	go health.StartDatabaseHealthCheck(healthHandle, checkInterval)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler := dashboard.NewHandler(dashboard.NewService(dashboard.NewRepository(database.DB)))
	api.SetupRoutes(r, handler)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic("Failed to start server: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(lifecycleMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}
