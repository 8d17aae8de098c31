package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/charts"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/export"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/modules/registry/services"
)

type stubRepo struct {
	series []charts.RawSeriesPoint
	points []charts.PointPair
	count  int64
	err    error
}

func (s *stubRepo) FetchSeries(ctx context.Context, req charts.AggregationRequest) ([]charts.RawSeriesPoint, error) {
	return s.series, s.err
}

func (s *stubRepo) FetchPoints(ctx context.Context, req charts.AggregationRequest) ([]charts.PointPair, error) {
	return s.points, s.err
}

func (s *stubRepo) CountPatients(ctx context.Context) (int64, error) {
	return s.count, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(repo *stubRepo) *fiber.App {
	svc := services.NewChartService(repo, nil, export.NewService(), services.Limits{})
	app := fiber.New()
	RegisterRoutes(app, NewChartHandler(svc), NewHealthHandler(svc))
	return app
}

func do(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode(t *testing.T, raw []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestGetFields(t *testing.T) {
	status, body := do(t, newTestApp(&stubRepo{}), "GET", "/charts/fields", nil)
	require.Equal(t, fiber.StatusOK, status)

	env := decode(t, body)
	assert.True(t, env.Success)

	var data struct {
		Numeric     []fieldView `json:"numeric"`
		Categorical []fieldView `json:"categorical"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Contains(t, data.Numeric, fieldView{Name: "bmi", Label: "BMI", Category: "Physical"})
	assert.Contains(t, data.Categorical, fieldView{Name: "gender", Label: "Gender", Category: "Demographics"})
}

func TestGetTypes(t *testing.T) {
	status, body := do(t, newTestApp(&stubRepo{}), "GET", "/charts/types", nil)
	require.Equal(t, fiber.StatusOK, status)

	var data struct {
		Types    []chartTypeView `json:"types"`
		Palettes []string        `json:"palettes"`
	}
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &data))
	assert.Len(t, data.Types, len(charts.AllChartTypes()))
	assert.Contains(t, data.Palettes, "clinical")
}

func TestBuildRequestEndpoint(t *testing.T) {
	app := newTestApp(&stubRepo{})

	status, body := do(t, app, "POST", "/charts/request", charts.Config{Type: charts.ChartBar, XAxis: "gender", YAxis: "gender", Aggregation: charts.AggAvg})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, decode(t, body).Success)

	status, body = do(t, app, "POST", "/charts/request", charts.Config{Type: charts.ChartBar, XAxis: "gender", YAxis: "bmi", Aggregation: charts.AggAvg})
	require.Equal(t, fiber.StatusOK, status)
	var req charts.AggregationRequest
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &req))
	assert.Equal(t, charts.AggAvg, req.Aggregation)
	assert.Equal(t, charts.DefaultAggregateLimit, req.Limit)
}

func TestRenderEndpoint(t *testing.T) {
	app := newTestApp(&stubRepo{series: []charts.RawSeriesPoint{
		{Label: "Qatari", Value: 40},
		{Label: "Indian", Value: 10},
	}})

	status, body := do(t, app, "POST", "/charts/render", services.RenderRequest{
		Config: charts.Config{Type: charts.ChartDonut, XAxis: "nationality"},
	})
	require.Equal(t, fiber.StatusOK, status)

	var spec charts.RenderSpec
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &spec))
	assert.Equal(t, charts.ChartDonut, spec.Type)
	assert.Equal(t, []string{"Qatari", "Indian"}, spec.Categories)
}

func TestRenderEndpointErrors(t *testing.T) {
	status, body := do(t, newTestApp(&stubRepo{}), "POST", "/charts/render", services.RenderRequest{
		Config: charts.Config{Type: charts.ChartBar},
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decode(t, body).Error, "x axis")

	status, body = do(t, newTestApp(&stubRepo{err: errors.New("pq: relation does not exist")}), "POST", "/charts/render", services.RenderRequest{
		Config: charts.Config{Type: charts.ChartBar, XAxis: "gender"},
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "failed to render chart", decode(t, body).Error)
}

func TestExportEndpoint(t *testing.T) {
	app := newTestApp(&stubRepo{})
	in := services.RenderRequest{
		Config: charts.Config{Type: charts.ChartBar, XAxis: "gender", Title: "Gender"},
		Data:   &charts.Dataset{Rows: []charts.RawSeriesPoint{{Label: "Male", Value: 3}}},
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/charts/export?format=csv", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="gender.csv"`, resp.Header.Get("Content-Disposition"))
	out, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Gender,Count\nMale,3\n", string(out))

	status, _ := do(t, app, "POST", "/charts/export?format=docx", in)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetDataEndpoint(t *testing.T) {
	app := newTestApp(&stubRepo{series: []charts.RawSeriesPoint{{Label: "Male", Value: int64(7)}}})

	status, _ := do(t, app, "GET", "/charts/data", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := do(t, app, "GET", "/charts/data?xAxis=gender", nil)
	require.Equal(t, fiber.StatusOK, status)
	var rows []charts.NormalizedPoint
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &rows))
	assert.Equal(t, []charts.NormalizedPoint{{Label: "Male", Value: 7, Series: charts.AllSeries}}, rows)
}

func TestGetCorrelationEndpoint(t *testing.T) {
	app := newTestApp(&stubRepo{points: []charts.PointPair{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 3, Y: 2}}})

	status, _ := do(t, app, "GET", "/charts/correlation?field1=age", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := do(t, app, "GET", "/charts/correlation?field1=age&field2=bmi", nil)
	require.Equal(t, fiber.StatusOK, status)
	var result services.CorrelationResult
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &result))
	require.NotNil(t, result.Coefficient)
	assert.Equal(t, 0.5, *result.Coefficient)
	assert.Len(t, result.Points, 3)
}

func TestGetAuditDisabled(t *testing.T) {
	status, body := do(t, newTestApp(&stubRepo{}), "GET", "/charts/audit?limit=5", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))
}

func TestHealth(t *testing.T) {
	status, body := do(t, newTestApp(&stubRepo{count: 1200}), "GET", "/health", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","service":"chart-api","database":"connected","patients":1200}`, string(body))

	status, _ = do(t, newTestApp(&stubRepo{err: errors.New("down")}), "GET", "/health", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}
