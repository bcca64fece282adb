package dashboard

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// 仓库层的错误哨兵，由service和handler层用errors.Is区分
var (
	// ErrNotFound 表示指定ID的记录不存在
	ErrNotFound = errors.New("dashboard: 记录不存在")
	// ErrConflict 表示写入时检测到并发修改冲突，且记录仍然存在
	ErrConflict = errors.New("dashboard: 检测到并发修改冲突")
)

// Repository 封装了对dashboard_items表的所有数据库访问。
// 数据库句柄通过构造函数显式注入，便于测试时替换为内存数据库。
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建一个新的仓库实例。
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List 返回表中的所有记录。表为空时返回空切片而不是nil。
func (r *Repository) List() ([]DashboardItem, error) {
	items := make([]DashboardItem, 0)
	if err := r.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("无法读取指标列表: %w", err)
	}
	return items, nil
}

// GetByID 按主键查找单条记录。
func (r *Repository) GetByID(id uint) (*DashboardItem, error) {
	var item DashboardItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("无法读取指标 %d: %w", id, err)
	}
	return &item, nil
}

// Create 插入一条新记录，主键由数据库分配并回填到item。
func (r *Repository) Create(item *DashboardItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("无法创建指标: %w", err)
	}
	return nil
}

// Update 按主键整行覆盖一条记录。
// 乐观并发协议：写入失败或影响行数为0时按主键回读，
// 记录已不存在则返回ErrNotFound，仍然存在则返回ErrConflict（不重试、不合并）。
func (r *Repository) Update(item *DashboardItem) error {
	result := r.db.Model(&DashboardItem{}).
		Where("id = ?", item.ID).
		Select("title", "description", "value", "category", "created_at").
		Updates(item)

	if err := result.Error; err != nil {
		if isConcurrencyError(err) {
			return r.recheckAfterConflict(item.ID)
		}
		return fmt.Errorf("无法更新指标 %d: %w", item.ID, err)
	}

	if result.RowsAffected == 0 {
		return r.recheckAfterConflict(item.ID)
	}
	return nil
}

// Delete 按主键删除一条记录。
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&DashboardItem{}, id)
	if err := result.Error; err != nil {
		return fmt.Errorf("无法删除指标 %d: %w", id, err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// recheckAfterConflict 在一次可疑的并发写失败后按主键回读，
// 区分"记录已被删除"和"记录被并发修改"两种情况。
func (r *Repository) recheckAfterConflict(id uint) error {
	var item DashboardItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("冲突回读失败: %w", err)
	}
	return ErrConflict
}

// isConcurrencyError 判断一个数据库错误是否是Postgres报告的并发冲突
// （串行化失败或死锁）。SQLite模式下不会产生这类错误码。
func isConcurrencyError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.SerializationFailure ||
		pgErr.Code == pgerrcode.DeadlockDetected
}
