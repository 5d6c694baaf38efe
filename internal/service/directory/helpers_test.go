package directory

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/charu2409/Company-Feeds/internal/model"
)

var fixtureHeader = []interface{}{
	"Name",
	"Ticker",
	"Country",
	"BICS L1 Sect Nm",
	"Expansion_Rank",
	"Remarks",
	"Present in India (Yes/No)",
	"Present in TN (Yes/No)",
}

// writeFixture 在临时目录写出工作簿，返回路径
func writeFixture(t *testing.T, sheet string, header []interface{}, rows [][]interface{}) string {
	t.Helper()

	wb := excelize.NewFile()
	defaultSheet := wb.GetSheetName(wb.GetActiveSheetIndex())
	if _, err := wb.NewSheet(sheet); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	if defaultSheet != sheet {
		_ = wb.DeleteSheet(defaultSheet)
	}

	all := append([][]interface{}{header}, rows...)
	for i, row := range all {
		row := row
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "companies.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

func str(s string) *string { return &s }

func intp(i int) *int { return &i }

func rec(name, ticker string, sector *string, rank *int) model.CompanyRecord {
	return model.CompanyRecord{CompanyName: name, Ticker: ticker, Sector: sector, Rank: rank}
}

func names(records []model.CompanyRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.CompanyName)
	}
	return out
}
