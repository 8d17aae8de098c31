package charts

import (
	"fmt"
	"strings"
)

// Compile runs the full pipeline for one configuration and its fetched data:
// normalize → select categories → build matrix → specialize by chart type.
// Degenerate data (empty rows, zero totals) produces an Empty spec rather
// than an error; only an unknown chart type is rejected.
func Compile(cfg Config, data Dataset) (*RenderSpec, error) {
	spec := &RenderSpec{
		Type:         cfg.Type,
		Title:        cfg.Title,
		Categories:   []string{},
		Series:       []Series{},
		Colors:       Palette(cfg.Palette),
		ShowLegend:   cfg.ShowLegend,
		ShowDataZoom: cfg.ShowDataZoom,
	}

	var m matrix
	if !cfg.Type.UsesPoints() {
		m = buildCategoryMatrix(cfg, data.Rows)
		spec.Categories = m.categories
		spec.Empty = len(m.categories) == 0
	} else {
		spec.Empty = len(data.Points) == 0
	}

	switch cfg.Type {
	case ChartBar, ChartHorizontalBar, ChartGroupedBar, ChartStackedBar, ChartPercentStackedBar:
		compileBars(spec, cfg, m)
	case ChartLollipop:
		compileLollipop(spec, cfg, m)
	case ChartLine, ChartStepLine, ChartArea, ChartStackedArea, ChartPercentStackedArea:
		compileLines(spec, cfg, m)
	case ChartCombo:
		compileCombo(spec, cfg, m)
	case ChartPie, ChartDonut, ChartRose, ChartFunnel:
		compileProportional(spec, cfg, m)
	case ChartTreemap, ChartSunburst:
		compileHierarchy(spec, cfg, m)
	case ChartRadar:
		compileRadar(spec, cfg, m)
	case ChartPolarBar:
		compilePolarBar(spec, cfg, m)
	case ChartGauge:
		compileGauge(spec, cfg, m)
	case ChartTable:
		compileTable(spec, cfg, m)
	case ChartPareto:
		compilePareto(spec, cfg, m)
	case ChartWaterfall:
		compileWaterfall(spec, cfg, m)
	case ChartScatter, ChartBubble:
		compileScatter(spec, cfg, data.Points)
	case ChartHeatmap:
		compileHeatmap(spec, cfg, data.Points)
	case ChartHistogram:
		compileHistogram(spec, cfg, data.Points)
	case ChartBoxplot:
		compileBoxplot(spec, cfg, data.Points)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChartType, cfg.Type)
	}

	return spec, nil
}

type matrix struct {
	categories []string
	groups     []GroupSeries
	normalized bool
}

// totals sums every group per category.
func (m matrix) totals() []float64 {
	out := make([]float64, len(m.categories))
	for _, g := range m.groups {
		for i, v := range g.Values {
			out[i] += v
		}
	}
	return out
}

func buildCategoryMatrix(cfg Config, rows []RawSeriesPoint) matrix {
	points := Normalize(rows)
	topN := cfg.TopN
	if topN == 0 {
		topN = DefaultTopN
	}
	order := cfg.SortOrder
	if order == "" {
		order = SortDesc
	}
	categories := SelectCategories(points, topN, order)
	normalize := cfg.Normalize || cfg.Type.PercentStacked()
	return matrix{
		categories: categories,
		groups:     BuildMatrix(points, categories, normalize),
		normalized: normalize,
	}
}

func fieldLabel(id string) string {
	if f, ok := LookupField(id); ok {
		return f.Label
	}
	return id
}

// valueAxisName describes the measured quantity, e.g. "Avg of BMI".
func valueAxisName(cfg Config) string {
	req, err := BuildRequest(cfg)
	if err != nil || req.Aggregation == AggCount || req.YAxis == "" {
		return "Count"
	}
	agg := string(req.Aggregation)
	return strings.ToUpper(agg[:1]) + agg[1:] + " of " + fieldLabel(req.YAxis)
}

func float64Ptr(v float64) *float64 { return &v }

func valueAxis(cfg Config, m matrix) Axis {
	axis := Axis{Type: "value", Name: valueAxisName(cfg)}
	if m.normalized {
		axis.Name = "Percent"
		axis.Max = float64Ptr(100)
		axis.Formatter = "{value}%"
	}
	return axis
}

// setCartesianAxes places categories on x, or on y for horizontal layouts.
func setCartesianAxes(spec *RenderSpec, cfg Config, m matrix, horizontal bool) {
	cat := Axis{Type: "category", Name: fieldLabel(cfg.XAxis), Data: m.categories}
	val := valueAxis(cfg, m)
	if horizontal {
		spec.XAxis = []Axis{val}
		spec.YAxis = []Axis{cat}
		return
	}
	spec.XAxis = []Axis{cat}
	spec.YAxis = []Axis{val}
}

func numbers(values []float64) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func stackName(cfg Config, stackedType bool) string {
	if cfg.Stacked || stackedType {
		return "total"
	}
	return ""
}

func compileBars(spec *RenderSpec, cfg Config, m matrix) {
	horizontal := cfg.Type == ChartHorizontalBar || cfg.Orientation == Horizontal
	setCartesianAxes(spec, cfg, m, horizontal)

	stack := stackName(cfg, cfg.Type == ChartStackedBar || cfg.Type == ChartPercentStackedBar)
	if cfg.Type == ChartGroupedBar {
		stack = ""
	}
	for _, g := range m.groups {
		spec.Series = append(spec.Series, Series{
			Name:      g.Name,
			Type:      "bar",
			Stack:     stack,
			ShowLabel: cfg.ShowLabels,
			Data:      numbers(g.Values),
		})
	}
}

func compileLollipop(spec *RenderSpec, cfg Config, m matrix) {
	setCartesianAxes(spec, cfg, m, cfg.Orientation == Horizontal)
	for _, g := range m.groups {
		spec.Series = append(spec.Series,
			Series{Name: g.Name, Type: "bar", BarWidth: 2, Data: numbers(g.Values)},
			Series{Name: g.Name, Type: "scatter", ShowLabel: cfg.ShowLabels, Data: numbers(g.Values)},
		)
	}
}

func compileLines(spec *RenderSpec, cfg Config, m matrix) {
	setCartesianAxes(spec, cfg, m, cfg.Orientation == Horizontal)

	area := cfg.Type == ChartArea || cfg.Type == ChartStackedArea || cfg.Type == ChartPercentStackedArea
	stack := stackName(cfg, cfg.Type == ChartStackedArea || cfg.Type == ChartPercentStackedArea)
	for _, g := range m.groups {
		spec.Series = append(spec.Series, Series{
			Name:      g.Name,
			Type:      "line",
			Stack:     stack,
			Smooth:    cfg.Smooth,
			Step:      cfg.Type == ChartStepLine,
			Area:      area,
			ShowLabel: cfg.ShowLabels,
			Data:      numbers(g.Values),
		})
	}
}

// compileCombo draws the first group as bars and the others as lines on a
// secondary axis. A single group is drawn both ways on one axis.
func compileCombo(spec *RenderSpec, cfg Config, m matrix) {
	setCartesianAxes(spec, cfg, m, false)
	if len(m.groups) == 0 {
		return
	}

	first := m.groups[0]
	spec.Series = append(spec.Series, Series{Name: first.Name, Type: "bar", ShowLabel: cfg.ShowLabels, Data: numbers(first.Values)})
	if len(m.groups) == 1 {
		spec.Series = append(spec.Series, Series{Name: first.Name, Type: "line", Smooth: cfg.Smooth, Data: numbers(first.Values)})
		return
	}

	secondary := valueAxis(cfg, m)
	secondary.Position = "right"
	spec.YAxis = append(spec.YAxis, secondary)
	for _, g := range m.groups[1:] {
		spec.Series = append(spec.Series, Series{
			Name:       g.Name,
			Type:       "line",
			Smooth:     cfg.Smooth,
			YAxisIndex: 1,
			ShowLabel:  cfg.ShowLabels,
			Data:       numbers(g.Values),
		})
	}
}

func compileProportional(spec *RenderSpec, cfg Config, m matrix) {
	totals := m.totals()
	items := make([]interface{}, len(m.categories))
	for i, c := range m.categories {
		items[i] = NamedValue{Name: c, Value: totals[i]}
	}

	s := Series{Name: fieldLabel(cfg.XAxis), Type: "pie", ShowLabel: cfg.ShowLabels, Data: items}
	switch cfg.Type {
	case ChartDonut:
		s.Radius = []string{"40%", "70%"}
	case ChartRose:
		s.RoseType = "radius"
	case ChartFunnel:
		s.Type = "funnel"
	}
	spec.Series = append(spec.Series, s)
}

// compileHierarchy nests groups under their category when grouped.
func compileHierarchy(spec *RenderSpec, cfg Config, m matrix) {
	totals := m.totals()
	grouped := len(m.groups) > 1
	items := make([]interface{}, len(m.categories))
	for i, c := range m.categories {
		node := NamedValue{Name: c, Value: totals[i]}
		if grouped {
			for _, g := range m.groups {
				if g.Values[i] != 0 {
					node.Children = append(node.Children, NamedValue{Name: g.Name, Value: g.Values[i]})
				}
			}
		}
		items[i] = node
	}
	spec.Series = append(spec.Series, Series{
		Name:      fieldLabel(cfg.XAxis),
		Type:      string(cfg.Type),
		ShowLabel: cfg.ShowLabels,
		Data:      items,
	})
}

func compileRadar(spec *RenderSpec, cfg Config, m matrix) {
	radar := &Radar{Indicators: make([]RadarIndicator, len(m.categories))}
	for i, c := range m.categories {
		var peak float64
		for _, g := range m.groups {
			if g.Values[i] > peak {
				peak = g.Values[i]
			}
		}
		if m.normalized {
			peak = 100
		}
		radar.Indicators[i] = RadarIndicator{Name: c, Max: peak}
	}
	spec.Radar = radar

	data := make([]interface{}, len(m.groups))
	for i, g := range m.groups {
		data[i] = RadarValue{Name: g.Name, Value: append([]float64(nil), g.Values...)}
	}
	spec.Series = append(spec.Series, Series{Name: fieldLabel(cfg.XAxis), Type: "radar", Data: data})
}

func compilePolarBar(spec *RenderSpec, cfg Config, m matrix) {
	spec.Polar = true
	spec.XAxis = []Axis{{Type: "category", Name: fieldLabel(cfg.XAxis), Data: m.categories}}
	spec.YAxis = []Axis{valueAxis(cfg, m)}
	stack := stackName(cfg, false)
	for _, g := range m.groups {
		spec.Series = append(spec.Series, Series{Name: g.Name, Type: "bar", Stack: stack, ShowLabel: cfg.ShowLabels, Data: numbers(g.Values)})
	}
}

func compileGauge(spec *RenderSpec, cfg Config, m matrix) {
	var total float64
	for _, v := range m.totals() {
		total += v
	}
	name := cfg.Title
	if name == "" {
		name = valueAxisName(cfg)
	}
	spec.Series = append(spec.Series, Series{
		Name:      name,
		Type:      "gauge",
		ShowLabel: true,
		Data:      []interface{}{NamedValue{Name: name, Value: total}},
	})
}

func compileTable(spec *RenderSpec, cfg Config, m matrix) {
	columns := []string{fieldLabel(cfg.XAxis)}
	for _, g := range m.groups {
		columns = append(columns, g.Name)
	}
	rows := make([][]interface{}, len(m.categories))
	for i, c := range m.categories {
		row := []interface{}{c}
		for _, g := range m.groups {
			row = append(row, g.Values[i])
		}
		rows[i] = row
	}
	spec.Table = &Table{Columns: columns, Rows: rows}
}

func compilePareto(spec *RenderSpec, cfg Config, m matrix) {
	p := Pareto(m.categories, m.totals())
	spec.Categories = p.Categories
	spec.XAxis = []Axis{{Type: "category", Name: fieldLabel(cfg.XAxis), Data: p.Categories}}
	spec.YAxis = []Axis{
		{Type: "value", Name: valueAxisName(cfg)},
		{Type: "value", Name: "Cumulative %", Position: "right", Min: float64Ptr(0), Max: float64Ptr(100), Formatter: "{value}%"},
	}
	spec.Series = append(spec.Series,
		Series{Name: valueAxisName(cfg), Type: "bar", ShowLabel: cfg.ShowLabels, Data: numbers(p.Values)},
		Series{Name: "Cumulative %", Type: "line", YAxisIndex: 1, Smooth: cfg.Smooth, Data: numbers(p.CumulativePercent)},
	)
}

func compileWaterfall(spec *RenderSpec, cfg Config, m matrix) {
	w := Waterfall(m.categories, m.totals())
	setCartesianAxes(spec, cfg, matrix{categories: w.Categories}, false)
	spec.Series = append(spec.Series,
		Series{Name: "Base", Type: "bar", Stack: "waterfall", Transparent: true, Data: numbers(w.Base)},
		Series{Name: valueAxisName(cfg), Type: "bar", Stack: "waterfall", ShowLabel: cfg.ShowLabels, Data: numbers(w.Delta)},
	)
}

func compileScatter(spec *RenderSpec, cfg Config, points []PointPair) {
	spec.XAxis = []Axis{{Type: "value", Name: fieldLabel(cfg.XAxis)}}
	spec.YAxis = []Axis{{Type: "value", Name: fieldLabel(cfg.YAxis)}}

	// One series per group label, first-seen order.
	index := make(map[string]int)
	var groups [][]PointPair
	var names []string
	for _, p := range points {
		name := p.Label
		if name == "" {
			name = AllSeries
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, nil)
			names = append(names, name)
		}
		groups[i] = append(groups[i], p)
	}

	for i, g := range groups {
		var data []interface{}
		if cfg.Type == ChartBubble {
			data = bubbleData(g)
		} else {
			data = make([]interface{}, len(g))
			for j, p := range g {
				data[j] = []float64{p.X, p.Y}
			}
		}
		spec.Series = append(spec.Series, Series{Name: names[i], Type: "scatter", ShowLabel: cfg.ShowLabels, Data: data})
	}

	if !cfg.ShowTrendline {
		return
	}
	if t := FitTrendline(points); t != nil {
		spec.Trendline = t
		spec.Series = append(spec.Series, Series{
			Name: "Trendline",
			Type: "line",
			Data: []interface{}{[]float64{t.Start[0], t.Start[1]}, []float64{t.End[0], t.End[1]}},
		})
	}
}

// bubbleData merges identical (x, y) pairs; the third value is the number of
// observations and drives the bubble size.
func bubbleData(points []PointPair) []interface{} {
	type key struct{ x, y float64 }
	index := make(map[key]int)
	var merged [][]float64
	for _, p := range points {
		k := key{p.X, p.Y}
		if i, ok := index[k]; ok {
			merged[i][2]++
			continue
		}
		index[k] = len(merged)
		merged = append(merged, []float64{p.X, p.Y, 1})
	}
	out := make([]interface{}, len(merged))
	for i, m := range merged {
		out[i] = m
	}
	return out
}

func compileHeatmap(spec *RenderSpec, cfg Config, points []PointPair) {
	grid := BinPoints(points, cfg.Bins)
	spec.XAxis = []Axis{{Type: "category", Name: fieldLabel(cfg.XAxis), Data: grid.XLabels}}
	spec.YAxis = []Axis{{Type: "category", Name: fieldLabel(cfg.YAxis), Data: grid.YLabels}}
	spec.Categories = grid.XLabels

	cells := grid.Cells()
	data := make([]interface{}, len(cells))
	for i, c := range cells {
		data[i] = []float64{c[0], c[1], c[2]}
	}
	spec.Series = append(spec.Series, Series{Name: "Count", Type: "heatmap", ShowLabel: cfg.ShowLabels, Data: data})
	if len(points) > 0 {
		spec.VisualMap = &VisualMap{Min: grid.MinCount, Max: grid.MaxCount, Dimension: 2}
	}
}

func compileHistogram(spec *RenderSpec, cfg Config, points []PointPair) {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.X
	}
	h := BinValues(values, cfg.Bins)
	spec.Categories = h.Labels
	spec.XAxis = []Axis{{Type: "category", Name: fieldLabel(cfg.XAxis), Data: h.Labels}}
	spec.YAxis = []Axis{{Type: "value", Name: "Count"}}
	spec.Series = append(spec.Series, Series{Name: "Count", Type: "bar", ShowLabel: cfg.ShowLabels, Data: numbers(h.Counts)})
}

// compileBoxplot builds one box per label. With a y field bound the samples
// are y values split by the categorical x; otherwise the x values themselves.
func compileBoxplot(spec *RenderSpec, cfg Config, points []PointPair) {
	groups := GroupSamples(points, cfg.YAxis != "")
	labels := make([]string, 0, len(groups))
	data := make([]interface{}, 0, len(groups))
	for _, g := range groups {
		box := Quartiles(g.Samples)
		if box == nil {
			continue
		}
		labels = append(labels, g.Label)
		data = append(data, box.Values())
	}

	valueName := fieldLabel(cfg.XAxis)
	if cfg.YAxis != "" {
		valueName = fieldLabel(cfg.YAxis)
	}
	spec.Categories = labels
	spec.XAxis = []Axis{{Type: "category", Name: fieldLabel(cfg.XAxis), Data: labels}}
	spec.YAxis = []Axis{{Type: "value", Name: valueName}}
	spec.Series = append(spec.Series, Series{Name: valueName, Type: "boxplot", Data: data})
}
