package directory

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/charu2409/Company-Feeds/internal/model"
	"github.com/charu2409/Company-Feeds/internal/service/excel"
)

// Load 读取源表并规范化，仅在启动时调用一次
//
// 源文件或工作表不可读返回 *DatasetNotFoundError；映射表非法或缺列返回 *SchemaError。
func Load(path, sheet string, mapping model.ColumnMapping) (*Dataset, error) {
	if err := mapping.Validate(); err != nil {
		return nil, &SchemaError{Sheet: sheet, Reason: err.Error()}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &DatasetNotFoundError{Path: path, Sheet: sheet, Err: err}
	}

	p := excel.NewParser()
	if err := p.LoadFile(bytes.NewReader(raw)); err != nil {
		return nil, &DatasetNotFoundError{Path: path, Sheet: sheet, Err: err}
	}
	defer p.Close()

	sheets, err := p.SheetNames()
	if err != nil {
		return nil, &DatasetNotFoundError{Path: path, Sheet: sheet, Err: err}
	}

	table, err := p.ReadTable(sheet)
	if err != nil {
		return nil, &DatasetNotFoundError{Path: path, Sheet: sheet, Err: err, Available: sheets}
	}

	records, dropped, err := normalize(table, mapping)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(raw)
	return &Dataset{
		records: records,
		facets:  buildFacets(records),
		stats: Stats{
			LoadID:    p.GetFileID(),
			Source:    path,
			Sheet:     sheet,
			Sheets:    sheets,
			FileSize:  int64(len(raw)),
			SHA256:    hex.EncodeToString(sum[:]),
			TotalRows: len(table.Rows),
			Kept:      len(records),
			Dropped:   dropped,
			LoadedAt:  time.Now(),
		},
	}, nil
}

// NewDataset 由已规范化的记录构建数据集（测试与内嵌数据使用）
//
// 与 Load 相同，缺少公司名或代码的记录会被丢弃，rank_color 按 Rank 重新计算。
func NewDataset(records []model.CompanyRecord) *Dataset {
	kept := make([]model.CompanyRecord, 0, len(records))
	for _, r := range records {
		if excel.IsBlank(r.CompanyName) || excel.IsBlank(r.Ticker) {
			continue
		}
		r = r.Clone()
		if r.Rank != nil {
			r.RankColor = colorForRank(*r.Rank)
		} else {
			r.RankColor = colorNoRank
		}
		kept = append(kept, r)
	}
	return &Dataset{
		records: kept,
		facets:  buildFacets(kept),
		stats: Stats{
			LoadID:    uuid.New().String(),
			TotalRows: len(records),
			Kept:      len(kept),
			Dropped:   len(records) - len(kept),
			LoadedAt:  time.Now(),
		},
	}
}

// columnPlan 规范字段在源表中的列索引，-1 表示未映射
type columnPlan struct {
	name, ticker, sector, rank, about, india, tn int
}

func planColumns(table *excel.Table, mapping model.ColumnMapping) (columnPlan, error) {
	index := table.ColumnIndex()

	missing := make([]string, 0)
	resolved := make(map[string]int, len(mapping))
	for _, b := range mapping {
		idx, ok := index[b.Source]
		if !ok {
			missing = append(missing, b.Source)
			continue
		}
		resolved[b.Target] = idx
	}
	if len(missing) > 0 {
		return columnPlan{}, &SchemaError{Sheet: table.Sheet, Missing: missing}
	}

	lookup := func(target string) int {
		if idx, ok := resolved[target]; ok {
			return idx
		}
		return -1
	}
	return columnPlan{
		name:   lookup(model.FieldCompanyName),
		ticker: lookup(model.FieldTicker),
		sector: lookup(model.FieldSector),
		rank:   lookup(model.FieldRank),
		about:  lookup(model.FieldAbout),
		india:  lookup(model.FieldPresentInIndia),
		tn:     lookup(model.FieldPresentInTN),
	}, nil
}

// normalize 选列、改名、丢弃缺名称/代码的行并计算 rank_color
//
// 空白判断按去除首尾空白后的值，保存的字段保持单元格原值。
func normalize(table *excel.Table, mapping model.ColumnMapping) ([]model.CompanyRecord, int, error) {
	plan, err := planColumns(table, mapping)
	if err != nil {
		return nil, 0, err
	}

	records := make([]model.CompanyRecord, 0, len(table.Rows))
	dropped := 0
	for _, row := range table.Rows {
		name := excel.Cell(row, plan.name)
		ticker := excel.Cell(row, plan.ticker)
		if excel.IsBlank(name) || excel.IsBlank(ticker) {
			dropped++
			continue
		}

		rankCell := excel.Cell(row, plan.rank)
		rec := model.CompanyRecord{
			CompanyName:    name,
			Ticker:         ticker,
			Sector:         optional(row, plan.sector),
			About:          optional(row, plan.about),
			PresentInIndia: optional(row, plan.india),
			PresentInTN:    optional(row, plan.tn),
			RankColor:      RankColor(rankCell),
		}
		if rank, ok := parseRank(rankCell); ok {
			rec.Rank = &rank
		}
		records = append(records, rec)
	}
	return records, dropped, nil
}

func optional(row []string, idx int) *string {
	v := excel.Cell(row, idx)
	if excel.IsBlank(v) {
		return nil
	}
	return &v
}

func buildFacets(records []model.CompanyRecord) model.Facets {
	sectorSet := make(map[string]struct{})
	rankSet := make(map[int]struct{})
	for _, r := range records {
		if r.Sector != nil {
			sectorSet[*r.Sector] = struct{}{}
		}
		if r.Rank != nil {
			rankSet[*r.Rank] = struct{}{}
		}
	}

	sectors := make([]string, 0, len(sectorSet))
	for s := range sectorSet {
		sectors = append(sectors, s)
	}
	sort.Strings(sectors)

	ranks := make([]int, 0, len(rankSet))
	for r := range rankSet {
		ranks = append(ranks, r)
	}
	sort.Ints(ranks)

	return model.Facets{Sectors: sectors, Ranks: ranks}
}
