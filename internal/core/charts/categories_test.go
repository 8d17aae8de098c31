package charts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectCategoriesRanksByAggregate(t *testing.T) {
	points := Normalize([]RawSeriesPoint{
		{Label: "A", Value: 10},
		{Label: "B", Value: 30},
		{Label: "A", Value: 5},
	})

	assert.Equal(t, []string{"B", "A"}, SelectCategories(points, 2, SortDesc))
	assert.Equal(t, []string{"A", "B"}, SelectCategories(points, 2, SortAsc))
	assert.Equal(t, []string{"B"}, SelectCategories(points, 1, SortDesc))
}

func TestSelectCategoriesSumsAcrossSeries(t *testing.T) {
	points := []NormalizedPoint{
		{Label: "A", Value: 10, Series: "X"},
		{Label: "B", Value: 25, Series: "X"},
		{Label: "A", Value: 20, Series: "Y"},
	}
	assert.Equal(t, []string{"A", "B"}, SelectCategories(points, 5, SortDesc))
}

func TestSelectCategoriesTiesKeepFirstSeen(t *testing.T) {
	points := []NormalizedPoint{
		{Label: "C", Value: 5, Series: AllSeries},
		{Label: "A", Value: 5, Series: AllSeries},
		{Label: "B", Value: 5, Series: AllSeries},
		{Label: "D", Value: 9, Series: AllSeries},
	}
	assert.Equal(t, []string{"D", "C", "A", "B"}, SelectCategories(points, 10, SortDesc))
	assert.Equal(t, []string{"C", "A", "B", "D"}, SelectCategories(points, 10, SortAsc))
}

func TestSelectCategoriesTopN(t *testing.T) {
	var points []NormalizedPoint
	for i := 0; i < 30; i++ {
		points = append(points, NormalizedPoint{Label: fmt.Sprintf("L%02d", i), Value: float64(i % 7), Series: AllSeries})
	}

	for _, topN := range []int{1, 5, 20, 30, 50} {
		got := SelectCategories(points, topN, SortDesc)
		assert.LessOrEqual(t, len(got), topN)
		if topN >= 30 {
			assert.Len(t, got, 30)
		}
	}
}

func TestSelectCategoriesEmpty(t *testing.T) {
	got := SelectCategories(nil, 5, SortDesc)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSelectCategoriesDoesNotMutateInput(t *testing.T) {
	points := []NormalizedPoint{
		{Label: "A", Value: 1, Series: AllSeries},
		{Label: "B", Value: 2, Series: AllSeries},
	}
	before := append([]NormalizedPoint(nil), points...)
	SelectCategories(points, 1, SortDesc)
	assert.Equal(t, before, points)
}
