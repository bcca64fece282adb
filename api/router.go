package api

import (
	"github.com/gin-gonic/gin"
	"github.com/hualeng/dashboard-metrics-backend/internal/dashboard"
	"github.com/hualeng/dashboard-metrics-backend/internal/platform/health"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine, h *dashboard.Handler) {
	api := router.Group("/api")
	{
		// 健康检查端点，供容器编排探活
		api.GET("/health", health.Status)

		// 仪表盘指标的CRUD路由组 /api/dashboard
		items := api.Group("/dashboard")
		{
			items.GET("", h.ListItems)
			items.GET("/:id", h.GetItemByID)
			items.POST("", h.CreateItem)
			items.PUT("/:id", h.UpdateItem)
			items.DELETE("/:id", h.DeleteItem)
		}
	}
}
