package directory

import (
	"strings"

	"github.com/charu2409/Company-Feeds/internal/model"
)

// Query 按行业、排名、关键字筛选，条件之间为 AND，结果保持源表顺序
//
// 行业/排名为空或以 "all" 开头（忽略大小写与首尾空白）时不参与过滤；
// 排名无法解析为数字时同样忽略。返回记录为副本。
func (d *Dataset) Query(q model.CompanyQuery) []model.CompanyRecord {
	preds := compile(q)

	out := make([]model.CompanyRecord, 0, len(d.records))
	for i := range d.records {
		if preds.match(&d.records[i]) {
			out = append(out, d.records[i].Clone())
		}
	}
	return out
}

type predicates struct {
	sector    string
	hasSector bool
	rank      int
	hasRank   bool
	search    string
}

func compile(q model.CompanyQuery) predicates {
	var p predicates
	if !isAllSentinel(q.Sector) {
		p.sector = q.Sector
		p.hasSector = true
	}
	if !isAllSentinel(q.Rank) {
		p.rank, p.hasRank = truncateNumber(q.Rank)
	}
	// 关键字不走 "all" 前缀规则：非空即生效，搜索 "all" 会命中 "All Weather Fund"
	p.search = strings.ToLower(strings.TrimSpace(q.Search))
	return p
}

func (p predicates) match(r *model.CompanyRecord) bool {
	if p.hasSector && (r.Sector == nil || *r.Sector != p.sector) {
		return false
	}
	if p.hasRank && (r.Rank == nil || *r.Rank != p.rank) {
		return false
	}
	if p.search != "" &&
		!strings.Contains(strings.ToLower(r.CompanyName), p.search) &&
		!strings.Contains(strings.ToLower(r.Ticker), p.search) {
		return false
	}
	return true
}

// isAllSentinel 空值或 "all" 前缀（"All"、"ALL"、"all sectors" 等）表示不过滤
func isAllSentinel(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "" || strings.HasPrefix(v, "all")
}
