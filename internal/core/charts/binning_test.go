package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinValuesClampsMaximum(t *testing.T) {
	h := BinValues([]float64{0, 2.5, 5, 7.5, 10}, 4)

	assert.Equal(t, 0.0, h.Min)
	assert.Equal(t, 10.0, h.Max)
	assert.Equal(t, 2.5, h.Width)
	// 10 is exactly max and lands in the last bin, not bin 4.
	assert.Equal(t, []float64{1, 1, 1, 2}, h.Counts)
	assert.Equal(t, "0 - 2.5", h.Labels[0])
	assert.Equal(t, "7.5 - 10", h.Labels[3])
}

func TestBinValuesConstantInput(t *testing.T) {
	h := BinValues([]float64{3, 3, 3}, 5)

	assert.Equal(t, 1.0, h.Width)
	assert.Equal(t, []float64{3, 0, 0, 0, 0}, h.Counts)
}

func TestBinValuesEmpty(t *testing.T) {
	h := BinValues(nil, 5)
	assert.Empty(t, h.Counts)
	assert.Empty(t, h.Labels)
}

func TestBinValuesCoverage(t *testing.T) {
	values := []float64{-4.2, 18, 33.3, 33.3, 47, 51.9, 60, 61, 88.8, 120}
	for _, bins := range []int{2, 3, 7, 10, 25} {
		h := BinValues(values, bins)
		require.Len(t, h.Counts, bins)

		var total float64
		for _, c := range h.Counts {
			total += c
		}
		assert.Equal(t, float64(len(values)), total, "bins=%d", bins)
	}
}

func TestBinPoints(t *testing.T) {
	points := []PointPair{
		{X: 0, Y: 0},
		{X: 10, Y: 10},
		{X: 10, Y: 10},
		{X: 4, Y: 6},
	}

	grid := BinPoints(points, 2)

	require.Len(t, grid.Counts, 2)
	assert.Equal(t, []float64{1, 1}, grid.Counts[0])
	assert.Equal(t, []float64{0, 2}, grid.Counts[1])
	assert.Equal(t, 0.0, grid.MinCount)
	assert.Equal(t, 2.0, grid.MaxCount)
	assert.Len(t, grid.Cells(), 4)
}

func TestBinPointsCoverage(t *testing.T) {
	var points []PointPair
	for i := 0; i < 57; i++ {
		points = append(points, PointPair{X: float64(i*7%31) - 3, Y: float64(i*i%17) / 3})
	}

	grid := BinPoints(points, 6)

	var total float64
	for _, col := range grid.Counts {
		for _, c := range col {
			total += c
		}
	}
	assert.Equal(t, float64(len(points)), total)
}

func TestBinPointsEmpty(t *testing.T) {
	grid := BinPoints(nil, 4)
	assert.Empty(t, grid.Counts)
	assert.Empty(t, grid.Cells())
}

func TestBinPointsCapsGridSize(t *testing.T) {
	grid := BinPoints([]PointPair{{X: 1, Y: 1}, {X: 9, Y: 9}}, 1000000)
	assert.Len(t, grid.XLabels, MaxBins)
	assert.Len(t, grid.Counts, MaxBins)
	assert.Len(t, grid.Cells(), MaxBins*MaxBins)
}
