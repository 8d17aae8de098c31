package charts

import (
	"math"
	"sort"
)

// BoxSummary is a five-number summary using nearest-rank quartiles.
type BoxSummary struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// Values returns the summary in ECharts box plot order.
func (b BoxSummary) Values() []float64 {
	return []float64{b.Min, b.Q1, b.Median, b.Q3, b.Max}
}

// Quartiles summarises samples without interpolation: positions are
// floor(n*0.25), floor(n*0.5) and floor(n*0.75) of the sorted copy.
// It returns nil when there are no samples.
func Quartiles(samples []float64) *BoxSummary {
	n := len(samples)
	if n == 0 {
		return nil
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	at := func(q float64) float64 {
		return sorted[int(math.Floor(float64(n)*q))]
	}

	return &BoxSummary{
		Min:    sorted[0],
		Q1:     at(0.25),
		Median: at(0.5),
		Q3:     at(0.75),
		Max:    sorted[n-1],
		Count:  n,
	}
}

// SampleGroup is the set of samples behind one box.
type SampleGroup struct {
	Label   string
	Samples []float64
}

// GroupSamples splits point pairs into boxes keyed by Label (AllSeries when
// empty), in first-seen order. useY selects Y as the sample value, X otherwise.
func GroupSamples(points []PointPair, useY bool) []SampleGroup {
	index := make(map[string]int)
	groups := make([]SampleGroup, 0)
	for _, p := range points {
		label := p.Label
		if label == "" {
			label = AllSeries
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, SampleGroup{Label: label})
		}
		v := p.X
		if useY {
			v = p.Y
		}
		groups[i].Samples = append(groups[i].Samples, v)
	}
	return groups
}
