package charts

// RenderSpec is the declarative chart description handed to the frontend
// renderer. Its shape follows ECharts option naming.
type RenderSpec struct {
	Type         ChartType  `json:"type"`
	Title        string     `json:"title"`
	Categories   []string   `json:"categories"`
	XAxis        []Axis     `json:"xAxis,omitempty"`
	YAxis        []Axis     `json:"yAxis,omitempty"`
	Series       []Series   `json:"series"`
	Colors       []string   `json:"colors"`
	ShowLegend   bool       `json:"showLegend"`
	ShowDataZoom bool       `json:"showDataZoom"`
	Polar        bool       `json:"polar,omitempty"`
	VisualMap    *VisualMap `json:"visualMap,omitempty"`
	Radar        *Radar     `json:"radar,omitempty"`
	Trendline    *Trendline `json:"trendline,omitempty"`
	Table        *Table     `json:"table,omitempty"`
	Empty        bool       `json:"empty"`
}

// Axis is one x or y axis definition.
type Axis struct {
	Type      string   `json:"type"` // "category" or "value"
	Name      string   `json:"name,omitempty"`
	Data      []string `json:"data,omitempty"`
	Position  string   `json:"position,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Formatter string   `json:"formatter,omitempty"`
}

// Series is one rendered data series.
type Series struct {
	Name        string        `json:"name"`
	Type        string        `json:"type"`
	Stack       string        `json:"stack,omitempty"`
	Smooth      bool          `json:"smooth,omitempty"`
	Step        bool          `json:"step,omitempty"`
	Area        bool          `json:"area,omitempty"`
	ShowLabel   bool          `json:"showLabel,omitempty"`
	YAxisIndex  int           `json:"yAxisIndex,omitempty"`
	BarWidth    int           `json:"barWidth,omitempty"`
	Radius      []string      `json:"radius,omitempty"`
	RoseType    string        `json:"roseType,omitempty"`
	Transparent bool          `json:"transparent,omitempty"`
	Data        []interface{} `json:"data"`
}

// NamedValue is a pie/funnel/treemap item; Children nests sunburst and
// treemap levels.
type NamedValue struct {
	Name     string       `json:"name"`
	Value    float64      `json:"value"`
	Children []NamedValue `json:"children,omitempty"`
}

// RadarValue is one radar polygon.
type RadarValue struct {
	Name  string    `json:"name"`
	Value []float64 `json:"value"`
}

// VisualMap is the colour-scale range of a heatmap.
type VisualMap struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Dimension int     `json:"dimension"`
}

// Radar lists the spokes of a radar chart.
type Radar struct {
	Indicators []RadarIndicator `json:"indicators"`
}

// RadarIndicator is one radar spoke.
type RadarIndicator struct {
	Name string  `json:"name"`
	Max  float64 `json:"max"`
}

// Table is the tabular rendering of a category matrix.
type Table struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}
