package news

import (
	"fmt"
	"strings"

	"github.com/charu2409/Company-Feeds/internal/model"
)

// DefaultLimit 每家公司返回的最大条数
const DefaultLimit = 5

// Service 新闻查询（占位实现，不访问外部接口）
type Service struct {
	limit int
}

// NewService 创建新闻服务，limit <= 0 时使用默认值
func NewService(limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{limit: limit}
}

// Lookup 按代码返回占位新闻
func (s *Service) Lookup(ticker string) []model.NewsItem {
	ticker = strings.TrimSpace(ticker)
	items := []model.NewsItem{
		{
			Title:     fmt.Sprintf("Latest strategic update for %s", ticker),
			URL:       "#",
			Source:    "Internal / Placeholder",
			Published: "N/A",
		},
	}
	if len(items) > s.limit {
		items = items[:s.limit]
	}
	return items
}
