package startup

import (
	"fmt"

	"github.com/hualeng/dashboard-metrics-backend/internal/dashboard"
	"github.com/hualeng/dashboard-metrics-backend/internal/platform/database"
)

// InitializeApplication 是应用启动时执行的总入口。
// 它在服务开始接受请求之前完成建表和种子数据写入，且只执行一次。
func InitializeApplication() error {
	fmt.Println("开始应用初始化...")

	if err := dashboard.EnsureSchema(database.DB); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}
