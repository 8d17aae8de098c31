package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/charts"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/core/export"
	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/modules/registry/services"
)

type ChartHandler struct {
	chartService *services.ChartService
}

func NewChartHandler(chartService *services.ChartService) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

type fieldView struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

type chartTypeView struct {
	Type        charts.ChartType            `json:"type"`
	UsesPoints  bool                        `json:"usesPoints"`
	Requirement charts.ChartTypeRequirement `json:"requirement"`
}

// GetFields godoc
// @Summary List chartable fields
// @Description Registry fields split into numeric and categorical
// @Tags Charts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /charts/fields [get]
func (h *ChartHandler) GetFields(c *fiber.Ctx) error {
	numeric := []fieldView{}
	categorical := []fieldView{}
	for _, f := range charts.Fields() {
		v := fieldView{Name: f.ID, Label: f.Label, Category: f.Category}
		if f.Type == charts.Numeric {
			numeric = append(numeric, v)
		} else {
			categorical = append(categorical, v)
		}
	}
	return ok(c, fiber.Map{"numeric": numeric, "categorical": categorical})
}

// GetTypes godoc
// @Summary List chart types
// @Description Every supported chart type with its axis requirements and the palettes
// @Tags Charts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /charts/types [get]
func (h *ChartHandler) GetTypes(c *fiber.Ctx) error {
	types := make([]chartTypeView, 0, len(charts.AllChartTypes()))
	for _, t := range charts.AllChartTypes() {
		req, _ := charts.Requirement(t)
		types = append(types, chartTypeView{Type: t, UsesPoints: t.UsesPoints(), Requirement: req})
	}
	return ok(c, fiber.Map{"types": types, "palettes": charts.PaletteNames()})
}

// BuildRequest godoc
// @Summary Derive the data request for a chart
// @Description Validates a chart configuration and returns the aggregation request the server would run
// @Tags Charts
// @Accept json
// @Produce json
// @Param config body charts.Config true "Chart configuration"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /charts/request [post]
func (h *ChartHandler) BuildRequest(c *fiber.Ctx) error {
	var cfg charts.Config
	if err := c.BodyParser(&cfg); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	req, err := h.chartService.BuildRequest(cfg)
	if err != nil {
		return failWith(c, err, "build chart request")
	}
	return ok(c, req)
}

// Render godoc
// @Summary Render a chart
// @Description Compiles a chart spec from inline data, or from the registry when data is omitted
// @Tags Charts
// @Accept json
// @Produce json
// @Param request body services.RenderRequest true "Chart configuration and optional data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /charts/render [post]
func (h *ChartHandler) Render(c *fiber.Ctx) error {
	var req services.RenderRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	spec, err := h.chartService.Render(c.UserContext(), requestID(c), req)
	if err != nil {
		return failWith(c, err, "render chart")
	}
	return ok(c, spec)
}

// Export godoc
// @Summary Export chart data
// @Description Renders the chart and downloads its table as csv, json, excel or pdf
// @Tags Charts
// @Accept json
// @Produce octet-stream
// @Param format query string false "csv, json, excel or pdf" default(csv)
// @Param request body services.RenderRequest true "Chart configuration and optional data"
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Router /charts/export [post]
func (h *ChartHandler) Export(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	var req services.RenderRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.chartService.Export(c.UserContext(), requestID(c), req, format)
	if err != nil {
		return failWith(c, err, "export chart")
	}

	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, result.FileName))
	return c.Send(result.Content)
}

// GetData godoc
// @Summary Aggregated chart rows
// @Description Top 20 label/value rows for an axis binding
// @Tags Charts
// @Produce json
// @Param xAxis query string true "X axis field"
// @Param yAxis query string false "Y axis field"
// @Param groupBy query string false "Group field"
// @Param aggregation query string false "count, avg, sum, min or max" default(count)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /charts/data [get]
func (h *ChartHandler) GetData(c *fiber.Ctx) error {
	cfg := charts.Config{
		XAxis:       c.Query("xAxis"),
		YAxis:       c.Query("yAxis"),
		GroupBy:     c.Query("groupBy"),
		Aggregation: charts.Aggregation(c.Query("aggregation", string(charts.AggCount))),
	}
	if cfg.XAxis == "" {
		return fail(c, fiber.StatusBadRequest, "xAxis is required")
	}

	rows, err := h.chartService.Data(c.UserContext(), cfg)
	if err != nil {
		return failWith(c, err, "fetch chart data")
	}
	return ok(c, rows)
}

// GetCorrelation godoc
// @Summary Correlation between two numeric fields
// @Description Point pairs (up to the point limit), Pearson coefficient and trend line
// @Tags Charts
// @Produce json
// @Param field1 query string true "First numeric field"
// @Param field2 query string true "Second numeric field"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /charts/correlation [get]
func (h *ChartHandler) GetCorrelation(c *fiber.Ctx) error {
	field1, field2 := c.Query("field1"), c.Query("field2")
	if field1 == "" || field2 == "" {
		return fail(c, fiber.StatusBadRequest, "field1 and field2 are required")
	}

	result, err := h.chartService.Correlation(c.UserContext(), field1, field2)
	if err != nil {
		return failWith(c, err, "fetch correlation data")
	}
	return ok(c, result)
}

// GetAudit godoc
// @Summary Recent chart renders
// @Description Latest audit entries, newest first
// @Tags Charts
// @Produce json
// @Param limit query int false "Max entries (1-500)" default(50)
// @Success 200 {object} map[string]interface{}
// @Router /charts/audit [get]
func (h *ChartHandler) GetAudit(c *fiber.Ctx) error {
	logs, err := h.chartService.RecentRenders(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return failWith(c, err, "fetch audit log")
	}
	return ok(c, logs)
}
