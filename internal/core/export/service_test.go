package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/charts"
)

func compiledBar(t *testing.T) *charts.RenderSpec {
	t.Helper()
	spec, err := charts.Compile(charts.Config{
		Type:    charts.ChartStackedBar,
		XAxis:   "nationality",
		GroupBy: "gender",
		Title:   "Patients by Nationality",
	}, charts.Dataset{Rows: []charts.RawSeriesPoint{
		{Label: "Qatari", Value: 40, Series: "Male"},
		{Label: "Qatari", Value: 35, Series: "Female"},
		{Label: "Indian", Value: 10, Series: "Male"},
	}})
	require.NoError(t, err)
	return spec
}

func TestFromRenderSpecWide(t *testing.T) {
	data := FromRenderSpec(compiledBar(t))

	assert.Equal(t, "Patients by Nationality", data.Title)
	assert.Equal(t, "stacked_bar", data.ChartType)
	assert.Equal(t, []string{"Nationality", "Male", "Female"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []interface{}{"Qatari", 40.0, 35.0}, data.Rows[0])
	assert.Equal(t, []interface{}{"Indian", 10.0, 0.0}, data.Rows[1])
}

func TestFromRenderSpecLongForPoints(t *testing.T) {
	spec, err := charts.Compile(charts.Config{Type: charts.ChartScatter, XAxis: "age", YAxis: "bmi"},
		charts.Dataset{Points: []charts.PointPair{{X: 50, Y: 27.5}, {X: 61, Y: 30}}})
	require.NoError(t, err)

	data := FromRenderSpec(spec)

	assert.Equal(t, []string{"Series", "Category", "Value", "Value 2"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []interface{}{charts.AllSeries, "", 50.0, 27.5}, data.Rows[0])
	assert.Equal(t, "scatter chart", data.Title)
}

func TestFromRenderSpecPieUsesItemNames(t *testing.T) {
	spec, err := charts.Compile(charts.Config{Type: charts.ChartPie, XAxis: "gender"},
		charts.Dataset{Rows: []charts.RawSeriesPoint{{Label: "Male", Value: 3}, {Label: "Female", Value: 2}}})
	require.NoError(t, err)

	data := FromRenderSpec(spec)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Male", data.Rows[0][1])
	assert.Equal(t, 3.0, data.Rows[0][2])
}

func TestFromRenderSpecSkipsWaterfallBase(t *testing.T) {
	spec, err := charts.Compile(charts.Config{Type: charts.ChartWaterfall, XAxis: "nationality"},
		charts.Dataset{Rows: []charts.RawSeriesPoint{{Label: "A", Value: 5}, {Label: "B", Value: 3}}})
	require.NoError(t, err)

	data := FromRenderSpec(spec)

	assert.Equal(t, []string{"Nationality", "Count"}, data.Headers)
}

func TestFromRenderSpecEmpty(t *testing.T) {
	spec, err := charts.Compile(charts.Config{Type: charts.ChartBar, XAxis: "gender"}, charts.Dataset{})
	require.NoError(t, err)

	data := FromRenderSpec(spec)

	assert.NotNil(t, data.Rows)
	assert.Empty(t, data.Rows)
}

func TestParseFormat(t *testing.T) {
	cases := map[string]ExportFormat{
		"":      FormatCSV,
		"CSV":   FormatCSV,
		"json":  FormatJSON,
		"xlsx":  FormatExcel,
		"excel": FormatExcel,
		"pdf":   FormatPDF,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("docx")
	assert.Error(t, err)
}

func TestServiceExportCSV(t *testing.T) {
	out, contentType, err := NewService().Export(FromRenderSpec(compiledBar(t)), FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", contentType)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Equal(t, []string{"Nationality,Male,Female", "Qatari,40,35", "Indian,10,0"}, lines)
}

func TestServiceExportJSON(t *testing.T) {
	out, _, err := NewService().Export(FromRenderSpec(compiledBar(t)), FormatJSON)
	require.NoError(t, err)

	var decoded struct {
		Title   string          `json:"title"`
		Headers []string        `json:"headers"`
		Rows    [][]interface{} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Patients by Nationality", decoded.Title)
	assert.Len(t, decoded.Rows, 2)
}

func TestServiceExportExcel(t *testing.T) {
	out, contentType, err := NewService().Export(FromRenderSpec(compiledBar(t)), FormatExcel)
	require.NoError(t, err)
	assert.Contains(t, contentType, "spreadsheetml")

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("stacked_bar", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Patients by Nationality", title)

	header, err := f.GetCellValue("stacked_bar", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Male", header)

	value, err := f.GetCellValue("stacked_bar", "B4")
	require.NoError(t, err)
	assert.Equal(t, "40", value)
}

func TestServiceExportPDF(t *testing.T) {
	out, contentType, err := NewService().Export(FromRenderSpec(compiledBar(t)), FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestServiceExportPDFWithoutHeaders(t *testing.T) {
	_, _, err := NewService().Export(&ExportData{Title: "x"}, FormatPDF)
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	s := NewService()
	assert.Equal(t, "bmi-by-nationality.xlsx", s.FileName(&ExportData{Title: "BMI by Nationality!"}, FormatExcel))
	assert.Equal(t, "chart.csv", s.FileName(&ExportData{Title: "  "}, FormatCSV))
}

func TestHexToRGB(t *testing.T) {
	r, g, b := hexToRGB("#C0392B")
	assert.Equal(t, []int{192, 57, 43}, []int{r, g, b})

	r, g, b = hexToRGB("bad")
	assert.Equal(t, []int{255, 255, 255}, []int{r, g, b})
}
