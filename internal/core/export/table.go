package export

import (
	"fmt"
	"time"

	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/charts"
)

// FromRenderSpec flattens a compiled chart into rows. Category charts become
// one row per category with a column per series; point charts (scatter,
// heatmap, boxplot, pie items) become one row per datum.
func FromRenderSpec(spec *charts.RenderSpec) *ExportData {
	data := &ExportData{
		Title:     spec.Title,
		ChartType: string(spec.Type),
		CreatedAt: time.Now().UTC(),
		Headers:   []string{},
		Rows:      [][]interface{}{},
		Style:     DefaultStyle(),
	}
	if data.Title == "" {
		data.Title = fmt.Sprintf("%s chart", spec.Type)
	}

	switch {
	case spec.Table != nil:
		data.Headers = append(data.Headers, spec.Table.Columns...)
		data.Rows = append(data.Rows, spec.Table.Rows...)
	case isWide(spec):
		data.Headers, data.Rows = wideTable(spec)
	default:
		data.Headers, data.Rows = longTable(spec)
	}
	return data
}

// visibleSeries skips helper series such as the transparent waterfall base.
func visibleSeries(spec *charts.RenderSpec) []charts.Series {
	out := make([]charts.Series, 0, len(spec.Series))
	for _, s := range spec.Series {
		if !s.Transparent {
			out = append(out, s)
		}
	}
	return out
}

func isWide(spec *charts.RenderSpec) bool {
	if len(spec.Categories) == 0 {
		return false
	}
	series := visibleSeries(spec)
	if len(series) == 0 {
		return false
	}
	for _, s := range series {
		if len(s.Data) != len(spec.Categories) {
			return false
		}
		for _, d := range s.Data {
			if _, ok := d.(float64); !ok {
				return false
			}
		}
	}
	return true
}

func wideTable(spec *charts.RenderSpec) ([]string, [][]interface{}) {
	series := visibleSeries(spec)
	headers := []string{categoryHeader(spec)}
	for _, s := range series {
		name := s.Name
		if name == charts.AllSeries && len(series) == 1 {
			name = valueHeader(spec)
		}
		headers = append(headers, name)
	}

	rows := make([][]interface{}, len(spec.Categories))
	for i, c := range spec.Categories {
		row := make([]interface{}, 0, len(series)+1)
		row = append(row, c)
		for _, s := range series {
			row = append(row, s.Data[i])
		}
		rows[i] = row
	}
	return headers, rows
}

func longTable(spec *charts.RenderSpec) ([]string, [][]interface{}) {
	var rows [][]interface{}
	width := 1
	for _, s := range visibleSeries(spec) {
		for i, d := range s.Data {
			label := ""
			if i < len(spec.Categories) {
				label = spec.Categories[i]
			}
			values := datumValues(d, &label)
			if len(values) > width {
				width = len(values)
			}
			row := []interface{}{s.Name, label}
			for _, v := range values {
				row = append(row, v)
			}
			rows = append(rows, row)
		}
	}

	headers := []string{"Series", categoryHeader(spec)}
	for i := 0; i < width; i++ {
		if i == 0 {
			headers = append(headers, "Value")
			continue
		}
		headers = append(headers, fmt.Sprintf("Value %d", i+1))
	}
	// Pad short rows so every row has a cell per header.
	for i, row := range rows {
		for len(row) < len(headers) {
			row = append(row, "")
		}
		rows[i] = row
	}
	if rows == nil {
		rows = [][]interface{}{}
	}
	return headers, rows
}

// datumValues unpacks one series datum; named items override the label.
func datumValues(d interface{}, label *string) []float64 {
	switch v := d.(type) {
	case float64:
		return []float64{v}
	case []float64:
		return v
	case charts.NamedValue:
		*label = v.Name
		return []float64{v.Value}
	case charts.RadarValue:
		*label = v.Name
		return v.Value
	default:
		return nil
	}
}

// valueHeader names the measured quantity of an ungrouped chart, e.g. "Count".
func valueHeader(spec *charts.RenderSpec) string {
	for _, axis := range append(append([]charts.Axis{}, spec.YAxis...), spec.XAxis...) {
		if axis.Type == "value" && axis.Name != "" {
			return axis.Name
		}
	}
	return "Value"
}

func categoryHeader(spec *charts.RenderSpec) string {
	for _, axis := range append(append([]charts.Axis{}, spec.XAxis...), spec.YAxis...) {
		if axis.Type == "category" && axis.Name != "" {
			return axis.Name
		}
	}
	return "Category"
}
