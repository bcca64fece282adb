package dashboard

import "time"

// DashboardItem 定义了仪表盘指标在数据库中的数据结构。
// JSON字段名是对前端的既定契约，不使用gorm.Model以保持列和字段一一对应。
type DashboardItem struct {
	// ID 是服务端分配的自增主键，创建时忽略调用方传入的值
	ID uint `gorm:"primarykey" json:"Id"`

	// Title 是指标的显示名称，例如 "Sales Revenue"
	Title string `gorm:"not null;default:''" json:"Title"`

	// Description 是指标的补充说明
	Description string `gorm:"not null;default:''" json:"Description"`

	// Value 是指标的数值，支持小数（货币、百分比等）
	Value float64 `gorm:"not null" json:"Value"`

	// Category 是指标的分类标签
	Category string `gorm:"not null;default:''" json:"Category"`

	// CreatedAt 统一以UTC存储和序列化
	CreatedAt time.Time `gorm:"not null" json:"CreatedAt"`
}
