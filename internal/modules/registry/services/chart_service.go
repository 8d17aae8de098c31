package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/audit"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/charts"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/export"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/modules/registry/repositories"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/shared/utils"
)

// dataRowLimit mirrors the top-20 cap of the legacy /charts/data endpoint.
const dataRowLimit = 20

// ErrInvalidRequest marks caller mistakes that map to HTTP 400
var ErrInvalidRequest = errors.New("invalid chart request")

// AuditRecorder persists render events; audit.Service implements it
type AuditRecorder interface {
	Log(ctx context.Context, entry *audit.ChartRenderLog) error
	Recent(ctx context.Context, limit int) ([]audit.ChartRenderLog, error)
}

// Limits caps how many rows a single chart may pull from the database
type Limits struct {
	PointRows     int
	AggregateRows int
}

// RenderRequest is the body of /charts/render and /charts/export. When Data
// is present it is compiled as-is and the database is not touched.
type RenderRequest struct {
	Config charts.Config   `json:"config"`
	Data   *charts.Dataset `json:"data,omitempty"`
}

// CorrelationResult is the payload of /charts/correlation
type CorrelationResult struct {
	Field1      string             `json:"field1"`
	Field2      string             `json:"field2"`
	Points      []charts.PointPair `json:"points"`
	Coefficient *float64           `json:"coefficient"`
	Trendline   *charts.Trendline  `json:"trendline"`
}

// ExportResult is a rendered file ready for download
type ExportResult struct {
	Content     []byte
	ContentType string
	FileName    string
}

type ChartService struct {
	repo     repositories.ChartDataRepo
	audit    AuditRecorder
	exporter *export.Service
	limits   Limits
}

// NewChartService wires the chart pipeline. recorder may be nil to disable auditing.
func NewChartService(repo repositories.ChartDataRepo, recorder AuditRecorder, exporter *export.Service, limits Limits) *ChartService {
	if limits.PointRows <= 0 {
		limits.PointRows = charts.DefaultPointLimit
	}
	if limits.AggregateRows <= 0 {
		limits.AggregateRows = charts.DefaultAggregateLimit
	}
	return &ChartService{
		repo:     repo,
		audit:    recorder,
		exporter: exporter,
		limits:   limits,
	}
}

// BuildRequest validates cfg and returns the data-source request for it
func (s *ChartService) BuildRequest(cfg charts.Config) (charts.AggregationRequest, error) {
	if err := charts.ValidateConfig(cfg); err != nil {
		return charts.AggregationRequest{}, invalid(err)
	}
	req, err := charts.BuildRequest(cfg)
	if err != nil {
		return charts.AggregationRequest{}, invalid(err)
	}

	switch req.Mode {
	case charts.ModePoints:
		req.Limit = s.limits.PointRows
	default:
		req.Limit = s.limits.AggregateRows
	}
	return req, nil
}

// Render compiles a chart from inline data or from the registry
func (s *ChartService) Render(ctx context.Context, requestID string, in RenderRequest) (*charts.RenderSpec, error) {
	spec, err := s.render(ctx, requestID, audit.EventRender, in)
	return spec, err
}

// Export renders the chart and serializes it in the requested format
func (s *ChartService) Export(ctx context.Context, requestID string, in RenderRequest, format export.ExportFormat) (*ExportResult, error) {
	spec, err := s.render(ctx, requestID, audit.EventExport, in)
	if err != nil {
		return nil, err
	}

	data := export.FromRenderSpec(spec)
	content, contentType, err := s.exporter.Export(data, format)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		Content:     content,
		ContentType: contentType,
		FileName:    s.exporter.FileName(data, format),
	}, nil
}

func (s *ChartService) render(ctx context.Context, requestID, event string, in RenderRequest) (*charts.RenderSpec, error) {
	start := time.Now()
	cfg := in.Config

	var (
		data charts.Dataset
		mode charts.RequestMode
		err  error
	)
	if in.Data != nil {
		// Inline data may use client-side field ids, so only the shape is checked.
		var req charts.AggregationRequest
		if req, err = charts.BuildRequest(cfg); err != nil {
			return nil, invalid(err)
		}
		data, mode = *in.Data, req.Mode
	} else {
		data, mode, err = s.fetch(ctx, cfg)
		if err != nil {
			s.record(ctx, requestID, event, cfg, mode, 0, 0, false, start, err)
			return nil, err
		}
	}

	rows := len(data.Rows) + len(data.Points)
	spec, err := charts.Compile(cfg, data)
	if err != nil {
		err = invalid(err)
		s.record(ctx, requestID, event, cfg, mode, rows, 0, in.Data != nil, start, err)
		return nil, err
	}

	s.record(ctx, requestID, event, cfg, mode, rows, len(spec.Categories), in.Data != nil, start, nil)
	return spec, nil
}

func (s *ChartService) fetch(ctx context.Context, cfg charts.Config) (charts.Dataset, charts.RequestMode, error) {
	req, err := s.BuildRequest(cfg)
	if err != nil {
		return charts.Dataset{}, "", err
	}

	if req.Mode == charts.ModePoints {
		points, err := s.repo.FetchPoints(ctx, req)
		if err != nil {
			return charts.Dataset{}, req.Mode, err
		}
		return charts.Dataset{Points: points}, req.Mode, nil
	}

	rows, err := s.repo.FetchSeries(ctx, req)
	if err != nil {
		return charts.Dataset{}, req.Mode, err
	}
	return charts.Dataset{Rows: rows}, req.Mode, nil
}

// Data returns the top aggregated rows for an axis binding, normalized
func (s *ChartService) Data(ctx context.Context, cfg charts.Config) ([]charts.NormalizedPoint, error) {
	cfg.Type = charts.ChartBar
	req, err := s.BuildRequest(cfg)
	if err != nil {
		return nil, err
	}
	req.Limit = dataRowLimit

	rows, err := s.repo.FetchSeries(ctx, req)
	if err != nil {
		return nil, err
	}
	return charts.Normalize(rows), nil
}

// Correlation fetches point pairs for two numeric fields with their
// Pearson coefficient and least-squares line
func (s *ChartService) Correlation(ctx context.Context, field1, field2 string) (*CorrelationResult, error) {
	for _, f := range []string{field1, field2} {
		if !charts.IsNumericField(f) {
			return nil, fmt.Errorf("%w: %q is not a numeric field", ErrInvalidRequest, f)
		}
	}

	req, err := s.BuildRequest(charts.Config{Type: charts.ChartScatter, XAxis: field1, YAxis: field2})
	if err != nil {
		return nil, err
	}

	points, err := s.repo.FetchPoints(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &CorrelationResult{
		Field1:    field1,
		Field2:    field2,
		Points:    points,
		Trendline: charts.FitTrendline(points),
	}
	if r, ok := charts.Correlation(points); ok {
		result.Coefficient = &r
	}
	return result, nil
}

// PatientCount is used by the health check
func (s *ChartService) PatientCount(ctx context.Context) (int64, error) {
	return s.repo.CountPatients(ctx)
}

// RecentRenders lists the audit trail; empty when auditing is disabled
func (s *ChartService) RecentRenders(ctx context.Context, limit int) ([]audit.ChartRenderLog, error) {
	if s.audit == nil {
		return []audit.ChartRenderLog{}, nil
	}
	return s.audit.Recent(ctx, limit)
}

func (s *ChartService) record(ctx context.Context, requestID, event string, cfg charts.Config, mode charts.RequestMode, rows, categories int, inline bool, start time.Time, renderErr error) {
	if s.audit == nil {
		return
	}

	entry := &audit.ChartRenderLog{
		RequestID:     requestID,
		Event:         event,
		ChartType:     string(cfg.Type),
		Mode:          string(mode),
		RowCount:      rows,
		CategoryCount: categories,
		Duration:      time.Since(start).Milliseconds(),
		Inline:        inline,
	}
	if renderErr != nil {
		entry.Error = renderErr.Error()
	}

	payload, err := audit.RedactedJSON(cfg)
	if err != nil {
		utils.LogWarn("Audit payload not serializable", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
	} else {
		entry.Config = payload
	}

	if err := s.audit.Log(ctx, entry); err != nil {
		utils.LogWarn("Failed to write audit log", map[string]interface{}{
			"request_id": requestID,
			"chart_type": entry.ChartType,
			"error":      err.Error(),
		})
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}
