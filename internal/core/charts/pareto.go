package charts

import "sort"

// ParetoResult holds categories sorted descending with running totals.
type ParetoResult struct {
	Categories        []string  `json:"categories"`
	Values            []float64 `json:"values"`
	Cumulative        []float64 `json:"cumulative"`
	CumulativePercent []float64 `json:"cumulativePercent"`
}

// Pareto always sorts descending, independent of the chart's sort order;
// ties keep their incoming order. Percentages are rounded to 1 decimal and a
// zero grand total is treated as 1.
func Pareto(categories []string, values []float64) ParetoResult {
	n := len(categories)
	if len(values) < n {
		n = len(values)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] > values[order[b]] })

	res := ParetoResult{
		Categories:        make([]string, n),
		Values:            make([]float64, n),
		Cumulative:        make([]float64, n),
		CumulativePercent: make([]float64, n),
	}
	var running float64
	for i, idx := range order {
		res.Categories[i] = categories[idx]
		res.Values[i] = values[idx]
		running += values[idx]
		res.Cumulative[i] = running
	}

	total := 1.0
	if n > 0 && res.Cumulative[n-1] != 0 {
		total = res.Cumulative[n-1]
	}
	for i, c := range res.Cumulative {
		res.CumulativePercent[i] = roundTo(c/total*100, 1)
	}
	return res
}

// WaterfallResult describes floating bars: Base is the invisible offset
// under each visible Delta bar.
type WaterfallResult struct {
	Categories []string  `json:"categories"`
	Base       []float64 `json:"base"`
	Delta      []float64 `json:"delta"`
	Cumulative []float64 `json:"cumulative"`
}

// Waterfall keeps category order; Base[i] is the running total before
// category i.
func Waterfall(categories []string, values []float64) WaterfallResult {
	n := len(categories)
	if len(values) < n {
		n = len(values)
	}
	res := WaterfallResult{
		Categories: append([]string(nil), categories[:n]...),
		Base:       make([]float64, n),
		Delta:      make([]float64, n),
		Cumulative: make([]float64, n),
	}
	var running float64
	for i := 0; i < n; i++ {
		running += values[i]
		res.Cumulative[i] = running
		res.Delta[i] = values[i]
		res.Base[i] = running - values[i]
	}
	return res
}
