package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Excel limits sheet names to 31 characters.
const maxSheetName = 31

// ExcelExporter implements Excel export using excelize
type ExcelExporter struct{}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export writes a single-sheet workbook: title row, blank row, header, data.
// Numeric cells stay numeric so the sheet can be charted again in Excel.
func (e *ExcelExporter) Export(data *ExportData, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(data.ChartType)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}
	f.SetCellValue(sheet, "A1", data.Title)
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: data.Style.FontSize, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{stripHash(data.Style.HeaderBgColor)}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	const headerRow = 3
	for i, header := range data.Headers {
		cell := cellName(i, headerRow)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	stripe := 0
	if data.Style.AlternateRows {
		stripe, _ = f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{stripHash(data.Style.RowBgColor2)}},
		})
	}

	for r, row := range data.Rows {
		rowNum := headerRow + 1 + r
		for c, value := range row {
			cell := cellName(c, rowNum)
			f.SetCellValue(sheet, cell, value)
			if stripe != 0 && r%2 == 1 {
				f.SetCellStyle(sheet, cell, cell, stripe)
			}
		}
	}

	if data.Style.FreezeHeader {
		f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      headerRow,
			TopLeftCell: "A" + strconv.Itoa(headerRow+1),
			ActivePane:  "bottomLeft",
		})
	}

	if data.Style.AutoFilter && len(data.Headers) > 0 {
		ref := fmt.Sprintf("A%d:%s", headerRow, cellName(len(data.Headers)-1, headerRow+len(data.Rows)))
		f.AutoFilter(sheet, ref, nil)
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// GetContentType returns the MIME type for Excel files
func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// GetFileExtension returns the file extension for Excel files
func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}

func sheetName(chartType string) string {
	if chartType == "" {
		return "Chart"
	}
	if len(chartType) > maxSheetName {
		return chartType[:maxSheetName]
	}
	return chartType
}

// cellName converts a zero-based column and one-based row to "B7" form
func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return "A1"
	}
	return name
}

func stripHash(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}
