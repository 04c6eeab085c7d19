package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/emmy649/budget/internal/core"
)

// SheetName is the single sheet every monthly workbook carries.
const SheetName = "Месец"

const (
	dateNumFmt   = "dd.mm.yyyy"
	amountNumFmt = "0.00"
)

// column widths, in the header's order
var colWidths = []float64{12, 10, 18, 40, 12, 10}

// FileName encodes the exported month into the workbook name.
func FileName(m core.Month) string {
	return fmt.Sprintf("Razhodi_%04d-%02d.xlsx", m.Year, int(m.Month))
}

// WriteWorkbook serializes the rows into an XLSX workbook: fixed header,
// date cells styled dd.mm.yyyy, amounts styled 0.00, fixed column widths and
// an autofilter across the written range.
func WriteWorkbook(rows []Row, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, r := range rows {
		n := i + 2
		if !r.Date.IsZero() {
			if err := f.SetCellValue(SheetName, fmt.Sprintf("A%d", n), r.Date); err != nil {
				return fmt.Errorf("write row %d: %w", n, err)
			}
		}
		f.SetCellValue(SheetName, fmt.Sprintf("B%d", n), r.Type)
		f.SetCellValue(SheetName, fmt.Sprintf("C%d", n), r.Category)
		f.SetCellValue(SheetName, fmt.Sprintf("D%d", n), r.Note)
		f.SetCellValue(SheetName, fmt.Sprintf("E%d", n), r.Amount)
		f.SetCellValue(SheetName, fmt.Sprintf("F%d", n), r.Wasteful)
	}

	if len(rows) > 0 {
		last := len(rows) + 1

		dateFmt := dateNumFmt
		dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
		if err != nil {
			return fmt.Errorf("create date style: %w", err)
		}
		if err := f.SetCellStyle(SheetName, "A2", fmt.Sprintf("A%d", last), dateStyle); err != nil {
			return fmt.Errorf("style date column: %w", err)
		}

		amountFmt := amountNumFmt
		amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &amountFmt})
		if err != nil {
			return fmt.Errorf("create amount style: %w", err)
		}
		if err := f.SetCellStyle(SheetName, "E2", fmt.Sprintf("E%d", last), amountStyle); err != nil {
			return fmt.Errorf("style amount column: %w", err)
		}
	}

	for i, width := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	filterRange := fmt.Sprintf("A1:F%d", len(rows)+1)
	if err := f.AutoFilter(SheetName, filterRange, nil); err != nil {
		return fmt.Errorf("set autofilter: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
