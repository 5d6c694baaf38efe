package excel

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound 指定的工作表不存在
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoFile 未加载文件
var ErrNoFile = errors.New("no file loaded")

// Parser Excel 读取器
type Parser struct {
	file   *excelize.File
	fileID string
}

// Table 工作表内容：首行为表头，其余为数据行
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]string
}

// NewParser 创建读取器
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// LoadFile 从 reader 加载工作簿
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	p.file = file
	return nil
}

// GetFileID 获取文件ID
func (p *Parser) GetFileID() string {
	return p.fileID
}

// SheetNames 工作簿中的工作表名（按工作簿顺序）
func (p *Parser) SheetNames() ([]string, error) {
	if p.file == nil {
		return nil, ErrNoFile
	}
	return p.file.GetSheetList(), nil
}

// ReadTable 读取整个工作表，单元格取原始值（不套用数字格式）
func (p *Parser) ReadTable(sheet string) (*Table, error) {
	if p.file == nil {
		return nil, ErrNoFile
	}

	idx, err := p.file.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := p.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	table := &Table{Sheet: sheet}
	if len(rows) == 0 {
		return table, nil
	}
	table.Header = rows[0]
	table.Rows = rows[1:]
	return table, nil
}

// Close 关闭文件
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ColumnIndex 表头列名到索引；重复列名取第一次出现
func (t *Table) ColumnIndex() map[string]int {
	index := make(map[string]int, len(t.Header))
	for i, col := range t.Header {
		if _, ok := index[col]; ok {
			continue
		}
		index[col] = i
	}
	return index
}

// Cell 取单元格原值，越界返回 ""
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// IsBlank 空单元格或仅含空白
func IsBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}
