package model

import (
	"fmt"
	"sort"
)

// 规范字段名
const (
	FieldCompanyName    = "company_name"
	FieldTicker         = "ticker"
	FieldSector         = "sector"
	FieldRank           = "rank"
	FieldAbout          = "about"
	FieldPresentInIndia = "present_in_india"
	FieldPresentInTN    = "present_in_tn"
)

// CanonicalFields 全部规范字段（顺序即输出顺序）
var CanonicalFields = []string{
	FieldCompanyName,
	FieldTicker,
	FieldSector,
	FieldRank,
	FieldAbout,
	FieldPresentInIndia,
	FieldPresentInTN,
}

// ColumnBinding 源列到规范字段的映射
type ColumnBinding struct {
	Source string `toml:"source" json:"source"`
	Target string `toml:"target" json:"target"`
}

// ColumnMapping 显式列映射表
type ColumnMapping []ColumnBinding

// DefaultColumnMapping 现有排名表的列映射
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{
		{Source: "Name", Target: FieldCompanyName},
		{Source: "Ticker", Target: FieldTicker},
		{Source: "BICS L1 Sect Nm", Target: FieldSector},
		{Source: "Expansion_Rank", Target: FieldRank},
		{Source: "Remarks", Target: FieldAbout},
		{Source: "Present in India (Yes/No)", Target: FieldPresentInIndia},
		{Source: "Present in TN (Yes/No)", Target: FieldPresentInTN},
	}
}

// FromTargetMap 由 target -> source 的配置表构建映射，按规范字段顺序排列
func FromTargetMap(m map[string]string) ColumnMapping {
	out := make(ColumnMapping, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, target := range CanonicalFields {
		if src, ok := m[target]; ok {
			out = append(out, ColumnBinding{Source: src, Target: target})
			seen[target] = true
		}
	}

	// 未知字段也保留，交给 Validate 报错
	extra := make([]string, 0)
	for target := range m {
		if !seen[target] {
			extra = append(extra, target)
		}
	}
	sort.Strings(extra)
	for _, target := range extra {
		out = append(out, ColumnBinding{Source: m[target], Target: target})
	}
	return out
}

// Sources 返回全部源列名
func (m ColumnMapping) Sources() []string {
	out := make([]string, 0, len(m))
	for _, b := range m {
		out = append(out, b.Source)
	}
	return out
}

// Validate 检查映射表本身是否合法
func (m ColumnMapping) Validate() error {
	known := make(map[string]bool, len(CanonicalFields))
	for _, f := range CanonicalFields {
		known[f] = true
	}

	targets := make(map[string]bool, len(m))
	for _, b := range m {
		if b.Source == "" {
			return fmt.Errorf("empty source column for %q", b.Target)
		}
		if !known[b.Target] {
			return fmt.Errorf("unknown target field %q", b.Target)
		}
		if targets[b.Target] {
			return fmt.Errorf("duplicate target field %q", b.Target)
		}
		targets[b.Target] = true
	}

	for _, required := range []string{FieldCompanyName, FieldTicker} {
		if !targets[required] {
			return fmt.Errorf("required field %q is not mapped", required)
		}
	}
	return nil
}
