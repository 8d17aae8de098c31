package charts

import "sort"

// SelectCategories returns the ordered, deduplicated top-N labels.
//
// Labels are ranked by their value summed across every series. Ties keep the
// order in which labels were first seen, so identical input always yields
// identical output. topN < 1 means no truncation.
func SelectCategories(points []NormalizedPoint, topN int, order SortOrder) []string {
	if len(points) == 0 {
		return []string{}
	}

	totals := make(map[string]float64)
	labels := make([]string, 0)
	for _, p := range points {
		if _, seen := totals[p.Label]; !seen {
			labels = append(labels, p.Label)
		}
		totals[p.Label] += p.Value
	}

	if order == SortAsc {
		sort.SliceStable(labels, func(i, j int) bool { return totals[labels[i]] < totals[labels[j]] })
	} else {
		sort.SliceStable(labels, func(i, j int) bool { return totals[labels[i]] > totals[labels[j]] })
	}

	if topN > 0 && len(labels) > topN {
		labels = labels[:topN]
	}
	return labels
}
