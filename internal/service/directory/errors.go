package directory

import (
	"fmt"
	"strings"
)

// DatasetNotFoundError 源文件或工作表不可读
type DatasetNotFoundError struct {
	Path  string
	Sheet string
	Err   error
	// Available 工作簿可读但缺少指定工作表时，列出现有工作表
	Available []string
}

func (e *DatasetNotFoundError) Error() string {
	if len(e.Available) > 0 {
		return fmt.Sprintf("dataset not found: %s [%s]: %v (available sheets: %s)",
			e.Path, e.Sheet, e.Err, strings.Join(e.Available, ", "))
	}
	return fmt.Sprintf("dataset not found: %s [%s]: %v", e.Path, e.Sheet, e.Err)
}

func (e *DatasetNotFoundError) Unwrap() error {
	return e.Err
}

// SchemaError 映射表非法或源表缺少必需列
type SchemaError struct {
	Sheet   string
	Missing []string
	Reason  string
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("schema error: sheet %q is missing columns: %s", e.Sheet, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("schema error: %s", e.Reason)
}
