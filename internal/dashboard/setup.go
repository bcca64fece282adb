package dashboard

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// seedTime 是种子数据统一使用的固定创建时间，
// 保证每次全新初始化的结果完全一致。
var seedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// seedItems 是首次建表时写入的五条演示数据。
var seedItems = []DashboardItem{
	{Title: "Sales Revenue", Description: "Q1 2024 Revenue", Value: 125000.50, Category: "Revenue", CreatedAt: seedTime},
	{Title: "Active Users", Description: "Monthly Active Users", Value: 15420, Category: "Users", CreatedAt: seedTime},
	{Title: "Conversion Rate", Description: "Current Conversion Rate", Value: 3.75, Category: "Metrics", CreatedAt: seedTime},
	{Title: "Customer Satisfaction", Description: "CSAT Score", Value: 4.6, Category: "Satisfaction", CreatedAt: seedTime},
	{Title: "Orders Processed", Description: "Total Orders This Month", Value: 8945, Category: "Orders", CreatedAt: seedTime},
}

// EnsureSchema 迁移dashboard_items表，并在表为空时写入种子数据。
// 对已初始化的库重复调用不产生任何写入，重启是安全的。
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&DashboardItem{}); err != nil {
		return fmt.Errorf("无法迁移dashboard_items表: %w", err)
	}

	var count int64
	if err := db.Model(&DashboardItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("无法统计dashboard_items表: %w", err)
	}
	if count > 0 {
		fmt.Println("dashboard_items表已有数据，跳过种子数据写入。")
		return nil
	}

	// 复制一份再插入，避免GORM把分配的主键回填进包级变量
	items := make([]DashboardItem, len(seedItems))
	copy(items, seedItems)
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("无法写入种子数据: %w", err)
	}

	fmt.Printf("成功写入 %d 条种子数据。\n", len(items))
	return nil
}
