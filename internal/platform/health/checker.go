package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hualeng/dashboard-metrics-backend/internal/platform/database"
	"github.com/hualeng/dashboard-metrics-backend/pkg/lifecycle"
)

const pingTimeout = 2 * time.Second

// PerformCheck 执行一次数据库连通性检查并更新全局健康状态。
func PerformCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := database.Ping(ctx); err != nil {
		database.UpdateStatus(false)
		return
	}
	database.UpdateStatus(true)
}

// StartDatabaseHealthCheck 启动一个后台Goroutine来定期执行健康检查。
// 它通过生命周期句柄响应停机信号。
func StartDatabaseHealthCheck(handle *lifecycle.Handle, interval time.Duration) {
	defer handle.Close()
	fmt.Println("数据库健康检查器已启动。")

	for {
		if err := handle.Sleep(interval); err != nil {
			fmt.Println("数据库健康检查器已退出。")
			return
		}
		PerformCheck()
	}
}

// Status 是健康检查端点的处理函数。
// 数据库可达时返回200，否则返回503，供容器编排探活使用。
func Status(c *gin.Context) {
	if database.IsDatabaseHealthy() {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
}
