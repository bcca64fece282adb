package dashboard_test

import (
	"testing"

	"github.com/hualeng/dashboard-metrics-backend/internal/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchemaSeedsExactlyOnce(t *testing.T) {
	db := newTestDB(t) // 内部已执行一次EnsureSchema

	// 对已初始化的库重复执行，不应产生新的写入
	require.NoError(t, dashboard.EnsureSchema(db))
	require.NoError(t, dashboard.EnsureSchema(db))

	var count int64
	require.NoError(t, db.Model(&dashboard.DashboardItem{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}

func TestEnsureSchemaSkipsSeedingWhenDataExists(t *testing.T) {
	db := newTestDB(t)

	// 清掉种子数据后写入一条自定义记录，重新初始化不应找补种子数据
	require.NoError(t, db.Where("1 = 1").Delete(&dashboard.DashboardItem{}).Error)
	custom := dashboard.DashboardItem{Title: "Custom", Value: 1}
	require.NoError(t, db.Create(&custom).Error)

	require.NoError(t, dashboard.EnsureSchema(db))

	var count int64
	require.NoError(t, db.Model(&dashboard.DashboardItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedRowsKeepFixedTimestamp(t *testing.T) {
	db := newTestDB(t)

	var items []dashboard.DashboardItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 5)
	for _, item := range items {
		assert.True(t, item.CreatedAt.Equal(seedTime),
			"种子数据 %q 的CreatedAt应为 %v，实际为 %v", item.Title, seedTime, item.CreatedAt)
	}
}
