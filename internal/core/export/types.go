package export

import (
	"io"
	"time"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatCSV   ExportFormat = "csv"
	FormatJSON  ExportFormat = "json"
	FormatExcel ExportFormat = "excel"
	FormatPDF   ExportFormat = "pdf"
)

// Exporter is the interface for all export formats
type Exporter interface {
	Export(data *ExportData, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// ExportData is a chart flattened into a titled table
type ExportData struct {
	Title     string    `json:"title"`
	ChartType string    `json:"chartType"`
	CreatedAt time.Time `json:"createdAt"`

	Headers []string        `json:"headers"`
	Rows    [][]interface{} `json:"rows"`

	Style ExportStyle `json:"-"`
}

// ExportStyle defines styling options for Excel and PDF output
type ExportStyle struct {
	HeaderBgColor string // Hex color
	AlternateRows bool
	RowBgColor1   string // Hex color for odd rows
	RowBgColor2   string // Hex color for even rows

	FontSize float64

	// Columns beyond this count switch PDF output to landscape
	LandscapeAfter int

	FreezeHeader bool
	AutoFilter   bool
}

// DefaultStyle returns default export styling
func DefaultStyle() ExportStyle {
	return ExportStyle{
		HeaderBgColor:  "#C0392B",
		AlternateRows:  true,
		RowBgColor1:    "#FFFFFF",
		RowBgColor2:    "#F7F2F2",
		FontSize:       9,
		LandscapeAfter: 6,
		FreezeHeader:   true,
		AutoFilter:     true,
	}
}
