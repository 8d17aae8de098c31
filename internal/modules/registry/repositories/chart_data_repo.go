package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/charts"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/modules/registry/models"
)

// Result aliases used in every chart query.
const (
	aliasLabel  = "label"
	aliasValue  = "value"
	aliasSeries = "series"
	aliasX      = "x"
	aliasY      = "y"
)

type ChartDataRepo interface {
	FetchSeries(ctx context.Context, req charts.AggregationRequest) ([]charts.RawSeriesPoint, error)
	FetchPoints(ctx context.Context, req charts.AggregationRequest) ([]charts.PointPair, error)
	CountPatients(ctx context.Context) (int64, error)
}

type chartDataRepo struct {
	agg *analytics.Aggregator
}

func NewChartDataRepo(agg *analytics.Aggregator) ChartDataRepo {
	return &chartDataRepo{agg: agg}
}

func (r *chartDataRepo) FetchSeries(ctx context.Context, req charts.AggregationRequest) ([]charts.RawSeriesPoint, error) {
	query, err := SeriesQuery(req)
	if err != nil {
		return nil, err
	}

	rows, err := r.agg.Aggregate(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch series for %s: %w", req.XAxis, err)
	}

	points := make([]charts.RawSeriesPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, charts.RawSeriesPoint{
			Label:  row[aliasLabel],
			Value:  row[aliasValue],
			Series: row[aliasSeries],
		})
	}
	return points, nil
}

func (r *chartDataRepo) FetchPoints(ctx context.Context, req charts.AggregationRequest) ([]charts.PointPair, error) {
	query, err := PointsQuery(req)
	if err != nil {
		return nil, err
	}

	rows, err := r.agg.Select(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch points for %s: %w", req.XAxis, err)
	}

	points := make([]charts.PointPair, 0, len(rows))
	for _, row := range rows {
		points = append(points, charts.PointPair{
			X:     charts.ToFloat64(row[aliasX]),
			Y:     charts.ToFloat64(row[aliasY]),
			Label: charts.FormatLabel(row[aliasLabel]),
		})
	}
	return points, nil
}

func (r *chartDataRepo) CountPatients(ctx context.Context) (int64, error) {
	return r.agg.Count(ctx, models.PatientSummary{}.TableName())
}

// SeriesQuery builds the grouped label/value(/series) query for a request.
// Only registry fields are accepted, so no caller text reaches the SQL.
func SeriesQuery(req charts.AggregationRequest) (analytics.AggregateQuery, error) {
	x, err := column(req.XAxis)
	if err != nil {
		return analytics.AggregateQuery{}, err
	}

	query := analytics.AggregateQuery{
		Table:      models.PatientSummary{}.TableName(),
		Dimensions: []analytics.Column{{Name: x, Alias: aliasLabel}},
		Conditions: []analytics.Condition{analytics.NotNull(x)},
		OrderBy:    []string{`"` + aliasValue + `" DESC`},
		Limit:      req.Limit,
	}

	if req.GroupBy != "" {
		g, err := column(req.GroupBy)
		if err != nil {
			return analytics.AggregateQuery{}, err
		}
		query.Dimensions = append(query.Dimensions, analytics.Column{Name: g, Alias: aliasSeries})
		query.Conditions = append(query.Conditions, analytics.NotNull(g))
	}

	aggregate := analytics.Aggregate{Func: "COUNT", Alias: aliasValue}
	if req.Aggregation != charts.AggCount && req.YAxis != "" {
		y, err := column(req.YAxis)
		if err != nil {
			return analytics.AggregateQuery{}, err
		}
		aggregate = analytics.Aggregate{Func: strings.ToUpper(string(req.Aggregation)), Column: y, Alias: aliasValue}
		query.Conditions = append(query.Conditions, analytics.NotNull(y))
	}
	query.Aggregates = []analytics.Aggregate{aggregate}

	return query, nil
}

// PointsQuery builds the raw point fetch. A group field becomes the point
// label; without one a categorical x is used as the label instead, which is
// how box plots split samples by category.
func PointsQuery(req charts.AggregationRequest) (analytics.SelectQuery, error) {
	x, err := column(req.XAxis)
	if err != nil {
		return analytics.SelectQuery{}, err
	}

	query := analytics.SelectQuery{
		Table:      models.PatientSummary{}.TableName(),
		Conditions: []analytics.Condition{analytics.NotNull(x)},
		Limit:      req.Limit,
	}

	if charts.IsNumericField(req.XAxis) {
		query.Columns = append(query.Columns, analytics.Column{Name: x, Alias: aliasX})
	}

	if req.YAxis != "" {
		y, err := column(req.YAxis)
		if err != nil {
			return analytics.SelectQuery{}, err
		}
		query.Columns = append(query.Columns, analytics.Column{Name: y, Alias: aliasY})
		query.Conditions = append(query.Conditions, analytics.NotNull(y))
	}

	switch {
	case req.GroupBy != "":
		g, err := column(req.GroupBy)
		if err != nil {
			return analytics.SelectQuery{}, err
		}
		query.Columns = append(query.Columns, analytics.Column{Name: g, Alias: aliasLabel})
	case !charts.IsNumericField(req.XAxis):
		query.Columns = append(query.Columns, analytics.Column{Name: x, Alias: aliasLabel})
	}

	return query, nil
}

func column(fieldID string) (string, error) {
	f, ok := charts.LookupField(fieldID)
	if !ok {
		return "", fmt.Errorf("%w: %q", charts.ErrUnknownField, fieldID)
	}
	return f.Column, nil
}
