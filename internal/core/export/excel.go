package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter implements Excel export using excelize
type ExcelExporter struct {
	sheet string
}

func NewExcelExporter(sheet string) *ExcelExporter {
	if sheet == "" {
		sheet = "Sheet1"
	}
	return &ExcelExporter{sheet: sheet}
}

func (e *ExcelExporter) Export(t *Table, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if e.sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", e.sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	row := 1
	if t.Title != "" {
		titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(e.sheet, cell, t.Title)
		f.SetCellStyle(e.sheet, cell, cell, titleStyle)
		row++
		if t.Description != "" {
			cell, _ = excelize.CoordinatesToCellName(1, row)
			f.SetCellValue(e.sheet, cell, t.Description)
			row++
		}
		row++
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: t.Style.FontSize, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{stripHash(t.Style.HeaderBgColor)}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	stripeStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: t.Style.FontSize},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{stripHash(t.Style.StripeColor)}},
	})

	headerRow := row
	for i, h := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(e.sheet, cell, h)
		f.SetCellStyle(e.sheet, cell, cell, headerStyle)
		if width, ok := t.Style.ColumnWidths[i]; ok {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetColWidth(e.sheet, col, col, width)
		}
	}
	row++

	for i, values := range t.Rows {
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(e.sheet, cell, v)
			if i%2 == 1 && t.Style.StripeColor != "" {
				f.SetCellStyle(e.sheet, cell, cell, stripeStyle)
			}
		}
		row++
	}

	if len(t.Headers) > 0 {
		f.SetPanes(e.sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      headerRow,
			TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
			ActivePane:  "bottomLeft",
		})
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), headerRow+len(t.Rows))
		f.AutoFilter(e.sheet, fmt.Sprintf("A%d:%s", headerRow, last), nil)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) Extension() string {
	return ".xlsx"
}
