package database

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hualeng/dashboard-metrics-backend/internal/platform/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是一个全局的数据库句柄，在应用启动时初始化一次
var DB *gorm.DB

// InitDB 根据配置初始化数据库连接
// 连接失败会直接panic：数据库不可达时服务没有继续启动的意义
func InitDB(cfg config.DatabaseConfig) {
	var err error

	// GORM日志配置
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent, // 在生产环境中可以设为Silent
			Colorful:      true,
		},
	)

	// 根据驱动选择方言：容器部署用Postgres，本地开发和测试用SQLite
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		panic(fmt.Sprintf("不支持的数据库驱动: %q", cfg.Driver))
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})

	if err != nil {
		fmt.Println("连接数据库失败", err)
		panic(err)
	}

	fmt.Println("数据库连接成功！")
}

// Ping 检查底层数据库连接是否仍然存活
func Ping(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("数据库尚未初始化")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
