package directory

import (
	"time"

	"github.com/charu2409/Company-Feeds/internal/model"
)

// Stats 加载统计
type Stats struct {
	LoadID    string    `json:"loadId"`
	Source    string    `json:"source"`
	Sheet     string    `json:"sheet"`
	Sheets    []string  `json:"sheets"`
	FileSize  int64     `json:"fileSize"`
	SHA256    string    `json:"sha256"`
	TotalRows int       `json:"totalRows"`
	Kept      int       `json:"kept"`
	Dropped   int       `json:"dropped"`
	LoadedAt  time.Time `json:"loadedAt"`
}

// Dataset 规范化后的企业数据集
//
// 只由 Load 构造，构造后不再修改，可被任意数量的 goroutine 并发读取。
type Dataset struct {
	records []model.CompanyRecord
	facets  model.Facets
	stats   Stats
}

// Len 记录数
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records 返回全部记录的副本（保持源表顺序）
func (d *Dataset) Records() []model.CompanyRecord {
	return d.Query(model.CompanyQuery{})
}

// Facets 返回筛选项副本
func (d *Dataset) Facets() model.Facets {
	return model.Facets{
		Sectors: append([]string{}, d.facets.Sectors...),
		Ranks:   append([]int{}, d.facets.Ranks...),
	}
}

// Stats 加载统计
func (d *Dataset) Stats() Stats {
	st := d.stats
	st.Sheets = append([]string(nil), d.stats.Sheets...)
	return st
}
