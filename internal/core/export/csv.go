package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// CSVExporter writes the header row followed by data rows
type CSVExporter struct{}

// NewCSVExporter creates a new CSV exporter
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export exports data to CSV format
func (e *CSVExporter) Export(data *ExportData, writer io.Writer) error {
	w := csv.NewWriter(writer)
	if err := w.Write(data.Headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, 0, len(data.Headers))
	for _, row := range data.Rows {
		record = record[:0]
		for _, value := range row {
			record = append(record, formatCell(value))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// GetContentType returns the MIME type for CSV files
func (e *CSVExporter) GetContentType() string {
	return "text/csv; charset=utf-8"
}

// GetFileExtension returns the file extension for CSV files
func (e *CSVExporter) GetFileExtension() string {
	return ".csv"
}

// JSONExporter writes the table as a single JSON document
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export exports data to JSON format
func (e *JSONExporter) Export(data *ExportData, writer io.Writer) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// GetContentType returns the MIME type for JSON files
func (e *JSONExporter) GetContentType() string {
	return "application/json"
}

// GetFileExtension returns the file extension for JSON files
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}
