package dashboard

import "time"

// Service 承载dashboard模块的业务规则。
// 规则很薄：服务端分配主键、时间统一为UTC，其余直接委托给仓库。
type Service struct {
	repo *Repository
}

// NewService 创建一个新的服务实例。
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ListItems 返回所有指标，不保证顺序。
func (s *Service) ListItems() ([]DashboardItem, error) {
	return s.repo.List()
}

// GetItem 按ID返回单个指标。
func (s *Service) GetItem(id uint) (*DashboardItem, error) {
	return s.repo.GetByID(id)
}

// CreateItem 创建一个新指标。
// 调用方传入的ID会被丢弃，由数据库分配；CreatedAt缺省时取当前UTC时间。
func (s *Service) CreateItem(item DashboardItem) (*DashboardItem, error) {
	item.ID = 0
	item.CreatedAt = normalizeTime(item.CreatedAt)

	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ReplaceItem 按ID整行覆盖一个指标。重复执行同一覆盖是幂等的。
// 与创建不同，这里不补全缺省的CreatedAt：整行覆盖要求载荷给什么就存什么。
func (s *Service) ReplaceItem(item DashboardItem) error {
	item.CreatedAt = item.CreatedAt.UTC()
	return s.repo.Update(&item)
}

// DeleteItem 按ID删除一个指标。
func (s *Service) DeleteItem(id uint) error {
	return s.repo.Delete(id)
}

// normalizeTime 把零值时间替换为当前时间，并统一转换为UTC。
func normalizeTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
