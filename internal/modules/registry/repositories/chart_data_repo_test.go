package repositories

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/charts"
)

func TestSeriesQueryCount(t *testing.T) {
	req, err := charts.BuildRequest(charts.Config{Type: charts.ChartBar, XAxis: "nationality"})
	require.NoError(t, err)

	query, err := SeriesQuery(req)
	require.NoError(t, err)

	want := analytics.AggregateQuery{
		Table:      "patient_summary",
		Dimensions: []analytics.Column{{Name: "nationality", Alias: "label"}},
		Aggregates: []analytics.Aggregate{{Func: "COUNT", Alias: "value"}},
		Conditions: []analytics.Condition{analytics.NotNull("nationality")},
		OrderBy:    []string{`"value" DESC`},
		Limit:      charts.DefaultAggregateLimit,
	}
	if diff := cmp.Diff(want, query); diff != "" {
		t.Errorf("SeriesQuery mismatch (-want +got):\n%s", diff)
	}
}

func TestSeriesQueryAverageWithGroup(t *testing.T) {
	req, err := charts.BuildRequest(charts.Config{
		Type:        charts.ChartGroupedBar,
		XAxis:       "nationality",
		YAxis:       "ef",
		GroupBy:     "gender",
		Aggregation: charts.AggAvg,
	})
	require.NoError(t, err)

	query, err := SeriesQuery(req)
	require.NoError(t, err)

	assert.Equal(t, []analytics.Column{
		{Name: "nationality", Alias: "label"},
		{Name: "gender", Alias: "series"},
	}, query.Dimensions)
	assert.Equal(t, []analytics.Aggregate{{Func: "AVG", Column: "echo_ef", Alias: "value"}}, query.Aggregates)
	assert.Len(t, query.Conditions, 3)
}

func TestSeriesQueryRejectsUnknownField(t *testing.T) {
	_, err := SeriesQuery(charts.AggregationRequest{XAxis: "nationality; DROP TABLE patients"})
	assert.ErrorIs(t, err, charts.ErrUnknownField)

	_, err = SeriesQuery(charts.AggregationRequest{XAxis: "gender", GroupBy: "ssn"})
	assert.ErrorIs(t, err, charts.ErrUnknownField)
}

func TestPointsQueryScatter(t *testing.T) {
	req, err := charts.BuildRequest(charts.Config{Type: charts.ChartScatter, XAxis: "age", YAxis: "bmi", GroupBy: "gender"})
	require.NoError(t, err)

	query, err := PointsQuery(req)
	require.NoError(t, err)

	assert.Equal(t, []analytics.Column{
		{Name: "age", Alias: "x"},
		{Name: "bmi", Alias: "y"},
		{Name: "gender", Alias: "label"},
	}, query.Columns)
	assert.Equal(t, charts.DefaultPointLimit, query.Limit)
}

func TestPointsQueryBoxplotLabelsByCategory(t *testing.T) {
	req, err := charts.BuildRequest(charts.Config{Type: charts.ChartBoxplot, XAxis: "nationality", YAxis: "bmi"})
	require.NoError(t, err)

	query, err := PointsQuery(req)
	require.NoError(t, err)

	assert.Equal(t, []analytics.Column{
		{Name: "bmi", Alias: "y"},
		{Name: "nationality", Alias: "label"},
	}, query.Columns)
}

func TestPointsQueryHistogram(t *testing.T) {
	req, err := charts.BuildRequest(charts.Config{Type: charts.ChartHistogram, XAxis: "weight"})
	require.NoError(t, err)

	query, err := PointsQuery(req)
	require.NoError(t, err)

	assert.Equal(t, []analytics.Column{{Name: "weight_kg", Alias: "x"}}, query.Columns)
	assert.Equal(t, []analytics.Condition{analytics.NotNull("weight_kg")}, query.Conditions)
}
