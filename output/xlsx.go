package output

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

const (
	numberFormat = "##0.0"

	firstRunningTotalFormula = "INDIRECT(ADDRESS(ROW(),COLUMN()-1))"
	nextRunningTotalFormula  = "INDIRECT(ADDRESS(ROW(),COLUMN()-1))+INDIRECT(ADDRESS(ROW()-1,COLUMN()))"
	totalFormula             = "SUM(INDEX(A:E,2,COLUMN()-1):INDEX(A:F,ROW()-1,COLUMN()-1))"

	maxSheetNameLength = 31
)

// XLSXWriter writes a single sheet workbook: a bold header row frozen in
// place, one row per segment and a bold totals row summing the segment
// column.
type XLSXWriter struct {
	Font   string
	Widths map[string]float64

	// FormulaTotals writes running totals as formulas adding the row's
	// segment to the previous total instead of as numbers.
	FormulaTotals bool
}

func (x XLSXWriter) Write(path string, t Table) error {
	f, err := x.Build(t)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	return nil
}

// Build lays out t in a new workbook.
func (x XLSXWriter) Build(t Table) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := x.build(f, t); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func (x XLSXWriter) build(f *excelize.File, t Table) error {
	sheet := t.Title
	if r := []rune(sheet); len(r) > maxSheetNameLength {
		sheet = string(r[:maxSheetNameLength])
	}
	if sheet == "" {
		sheet = "Sheet1"
	}

	if x.Font != "" {
		if err := f.SetDefaultFont(x.Font); err != nil {
			return fmt.Errorf("set font: %w", err)
		}
	}

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	numFmt := numberFormat
	numStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Family: x.Font}})
	if err != nil {
		return err
	}
	boldNumStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Family: x.Font}, CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}

	cols := len(t.Header)
	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	segCol, err := excelize.ColumnNumberToName(cols - 1)
	if err != nil {
		return err
	}

	if err := f.SetColStyle(sheet, segCol+":"+lastCol, numStyle); err != nil {
		return err
	}

	colNames := make([]string, 0, len(x.Widths))
	for col := range x.Widths {
		colNames = append(colNames, col)
	}
	sort.Strings(colNames)
	for _, col := range colNames {
		if err := f.SetColWidth(sheet, col, col, x.Widths[col]); err != nil {
			return fmt.Errorf("set width of column %s: %w", col, err)
		}
	}

	header := make([]interface{}, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, boldStyle); err != nil {
		return err
	}

	row := 2
	for i, r := range t.Rows {
		values := []interface{}{r.Name, r.Description, r.Direction, r.Segment}
		if !x.FormulaTotals {
			values = append(values, r.RunningTotal)
		}

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}

		if x.FormulaTotals {
			formula := nextRunningTotalFormula
			if i == 0 {
				formula = firstRunningTotalFormula
			}
			cell, err := excelize.CoordinatesToCellName(cols, row)
			if err != nil {
				return err
			}
			if err := f.SetCellFormula(sheet, cell, formula); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, numStyle); err != nil {
				return err
			}
		}

		row++
	}

	// Totals row: label merged across all but the last column.
	labelCell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	mergeEnd, err := excelize.CoordinatesToCellName(cols-1, row)
	if err != nil {
		return err
	}
	totalCell, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}

	if err := f.SetCellStr(sheet, labelCell, "Total:"); err != nil {
		return err
	}
	if err := f.SetCellFormula(sheet, totalCell, totalFormula); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, labelCell, mergeEnd); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, row, row, boldStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, totalCell, totalCell, boldNumStyle); err != nil {
		return err
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
