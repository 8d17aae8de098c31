package charts

import "math"

// Histogram is a 1D binning of numeric values.
type Histogram struct {
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Width  float64   `json:"width"`
	Labels []string  `json:"labels"`
	Counts []float64 `json:"counts"`
}

// HeatmapGrid is a 2D binning of point pairs. Counts is indexed [x][y].
type HeatmapGrid struct {
	XLabels  []string    `json:"xLabels"`
	YLabels  []string    `json:"yLabels"`
	Counts   [][]float64 `json:"counts"`
	MinCount float64     `json:"minCount"`
	MaxCount float64     `json:"maxCount"`
}

// Cells flattens the grid into [xBin, yBin, count] triples, x-major.
func (g HeatmapGrid) Cells() [][3]float64 {
	out := make([][3]float64, 0)
	for x, col := range g.Counts {
		for y, c := range col {
			out = append(out, [3]float64{float64(x), float64(y), c})
		}
	}
	return out
}

type binRange struct {
	min, max, width float64
}

func newBinRange(values []float64, bins int) binRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	width := (hi - lo) / float64(bins)
	if width == 0 {
		width = 1
	}
	return binRange{min: lo, max: hi, width: width}
}

// index clamps to [0, bins-1]; a value equal to max would otherwise land
// one past the last bin.
func (r binRange) index(v float64, bins int) int {
	i := int(math.Floor((v - r.min) / r.width))
	if i < 0 {
		return 0
	}
	if i > bins-1 {
		return bins - 1
	}
	return i
}

func (r binRange) labels(bins int) []string {
	out := make([]string, bins)
	for i := 0; i < bins; i++ {
		lo := r.min + float64(i)*r.width
		hi := lo + r.width
		out[i] = formatFloat(roundTo(lo, 2), 64) + " - " + formatFloat(roundTo(hi, 2), 64)
	}
	return out
}

// BinValues assigns values to bins equal-width bins and counts them.
// An empty input yields an empty histogram.
func BinValues(values []float64, bins int) Histogram {
	bins = clampBins(bins)
	if len(values) == 0 {
		return Histogram{Labels: []string{}, Counts: []float64{}}
	}

	r := newBinRange(values, bins)
	counts := make([]float64, bins)
	for _, v := range values {
		counts[r.index(v, bins)]++
	}
	return Histogram{
		Min:    r.min,
		Max:    r.max,
		Width:  r.width,
		Labels: r.labels(bins),
		Counts: counts,
	}
}

// BinPoints builds a bins×bins count grid over the x and y ranges of points.
func BinPoints(points []PointPair, bins int) HeatmapGrid {
	bins = clampBins(bins)
	if len(points) == 0 {
		return HeatmapGrid{XLabels: []string{}, YLabels: []string{}, Counts: [][]float64{}}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	xr := newBinRange(xs, bins)
	yr := newBinRange(ys, bins)

	counts := make([][]float64, bins)
	for i := range counts {
		counts[i] = make([]float64, bins)
	}
	for _, p := range points {
		counts[xr.index(p.X, bins)][yr.index(p.Y, bins)]++
	}

	minCount, maxCount := counts[0][0], counts[0][0]
	for _, col := range counts {
		for _, c := range col {
			minCount = math.Min(minCount, c)
			maxCount = math.Max(maxCount, c)
		}
	}

	return HeatmapGrid{
		XLabels:  xr.labels(bins),
		YLabels:  yr.labels(bins),
		Counts:   counts,
		MinCount: minCount,
		MaxCount: maxCount,
	}
}
