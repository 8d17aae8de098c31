package charts

import "errors"

// ChartType identifies one of the chart variants the builder can author.
type ChartType string

const (
	ChartBar                ChartType = "bar"
	ChartHorizontalBar      ChartType = "horizontal_bar"
	ChartGroupedBar         ChartType = "grouped_bar"
	ChartStackedBar         ChartType = "stacked_bar"
	ChartPercentStackedBar  ChartType = "percent_stacked_bar"
	ChartLine               ChartType = "line"
	ChartStepLine           ChartType = "step_line"
	ChartArea               ChartType = "area"
	ChartStackedArea        ChartType = "stacked_area"
	ChartPercentStackedArea ChartType = "percent_stacked_area"
	ChartCombo              ChartType = "combo"
	ChartLollipop           ChartType = "lollipop"
	ChartPie                ChartType = "pie"
	ChartDonut              ChartType = "donut"
	ChartRose               ChartType = "rose"
	ChartFunnel             ChartType = "funnel"
	ChartRadar              ChartType = "radar"
	ChartPolarBar           ChartType = "polar_bar"
	ChartTreemap            ChartType = "treemap"
	ChartSunburst           ChartType = "sunburst"
	ChartGauge              ChartType = "gauge"
	ChartTable              ChartType = "table"
	ChartScatter            ChartType = "scatter"
	ChartBubble             ChartType = "bubble"
	ChartHeatmap            ChartType = "heatmap"
	ChartHistogram          ChartType = "histogram"
	ChartBoxplot            ChartType = "boxplot"
	ChartPareto             ChartType = "pareto"
	ChartWaterfall          ChartType = "waterfall"
)

// AllChartTypes returns every supported chart type in catalogue order.
func AllChartTypes() []ChartType {
	return []ChartType{
		ChartBar, ChartHorizontalBar, ChartGroupedBar, ChartStackedBar, ChartPercentStackedBar,
		ChartLine, ChartStepLine, ChartArea, ChartStackedArea, ChartPercentStackedArea,
		ChartCombo, ChartLollipop, ChartPie, ChartDonut, ChartRose, ChartFunnel, ChartRadar,
		ChartPolarBar, ChartTreemap, ChartSunburst, ChartGauge, ChartTable,
		ChartScatter, ChartBubble, ChartHeatmap, ChartHistogram, ChartBoxplot,
		ChartPareto, ChartWaterfall,
	}
}

// UsesPoints reports whether the chart is built from raw point pairs rather
// than aggregated rows.
func (t ChartType) UsesPoints() bool {
	switch t {
	case ChartScatter, ChartBubble, ChartHeatmap, ChartHistogram, ChartBoxplot:
		return true
	}
	return false
}

// PercentStacked reports whether the chart always renders normalized columns.
func (t ChartType) PercentStacked() bool {
	return t == ChartPercentStackedBar || t == ChartPercentStackedArea
}

// Aggregation is the reducer applied when pivoting rows into a chart value.
type Aggregation string

const (
	AggCount Aggregation = "count"
	AggAvg   Aggregation = "avg"
	AggSum   Aggregation = "sum"
	AggMin   Aggregation = "min"
	AggMax   Aggregation = "max"
)

// Valid reports whether a is a known aggregation.
func (a Aggregation) Valid() bool {
	switch a {
	case AggCount, AggAvg, AggSum, AggMin, AggMax:
		return true
	}
	return false
}

// SortOrder controls category ranking.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Orientation of category charts.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// AllSeries is the group name given to rows that carry no series value.
// The normalizer and the matrix builder both rely on it.
const AllSeries = "All"

const (
	DefaultBins = 10
	MinBins     = 2
	// MaxBins bounds the heatmap grid, which holds MaxBins² cells.
	MaxBins = 100
	DefaultTopN = 20

	DefaultPointLimit     = 500
	DefaultAggregateLimit = 1000
)

var (
	ErrMissingXAxis         = errors.New("x axis field is required")
	ErrUnsupportedChartType = errors.New("unsupported chart type")
	ErrUnknownField         = errors.New("unknown field")
)

// Config is the user-authored chart configuration. It is treated as
// immutable by every function in this package.
type Config struct {
	Type          ChartType   `json:"type"`
	XAxis         string      `json:"xAxis"`
	YAxis         string      `json:"yAxis,omitempty"`
	GroupBy       string      `json:"groupBy,omitempty"`
	Title         string      `json:"title,omitempty"`
	Aggregation   Aggregation `json:"aggregation,omitempty"`
	Bins          int         `json:"bins,omitempty"`
	TopN          int         `json:"topN,omitempty"`
	SortOrder     SortOrder   `json:"sortOrder,omitempty"`
	Stacked       bool        `json:"stacked"`
	Normalize     bool        `json:"normalize"`
	Smooth        bool        `json:"smooth"`
	ShowLabels    bool        `json:"showLabels"`
	ShowLegend    bool        `json:"showLegend"`
	ShowDataZoom  bool        `json:"showDataZoom"`
	ShowTrendline bool        `json:"showTrendline"`
	Orientation   Orientation `json:"orientation,omitempty"`
	Palette       string      `json:"palette,omitempty"`
}

// RawSeriesPoint is one row as returned by the data source. Fields hold
// whatever the wire decoder produced (string, number or nil).
type RawSeriesPoint struct {
	Label  interface{} `json:"label"`
	Value  interface{} `json:"value"`
	Series interface{} `json:"series,omitempty"`
}

// NormalizedPoint is a RawSeriesPoint after coercion.
type NormalizedPoint struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Series string  `json:"series"`
}

// PointPair is a raw, non-aggregated observation used by point charts.
// Label carries the categorical x (or group) value for box plots.
type PointPair struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// GroupSeries holds one value per selected category, aligned positionally.
type GroupSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Dataset is the fetched input for Compile. Rows feed aggregated charts,
// Points feed point charts.
type Dataset struct {
	Rows   []RawSeriesPoint `json:"rows,omitempty"`
	Points []PointPair      `json:"points,omitempty"`
}
