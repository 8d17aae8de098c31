package charts

import "math"

// BuildMatrix pivots normalized points into one value slice per group,
// aligned to categories. Groups keep first-seen order; missing
// (category, group) pairs are 0 and duplicate pairs are summed.
//
// With normalize set, each value becomes its percentage of the category's
// total across all groups, rounded to 2 decimals (half away from zero).
// A zero column total yields 0.
func BuildMatrix(points []NormalizedPoint, categories []string, normalize bool) []GroupSeries {
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}

	groupIndex := make(map[string]int)
	groups := make([]GroupSeries, 0)
	for _, p := range points {
		g, ok := groupIndex[p.Series]
		if !ok {
			g = len(groups)
			groupIndex[p.Series] = g
			groups = append(groups, GroupSeries{Name: p.Series, Values: make([]float64, len(categories))})
		}
		if i, ok := index[p.Label]; ok {
			groups[g].Values[i] += p.Value
		}
	}

	if !normalize {
		return groups
	}

	for i := range categories {
		var total float64
		for _, g := range groups {
			total += g.Values[i]
		}
		for _, g := range groups {
			if total == 0 {
				g.Values[i] = 0
				continue
			}
			g.Values[i] = roundTo(g.Values[i]/total*100, 2)
		}
	}
	return groups
}

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
