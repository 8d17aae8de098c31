package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitTrendline(t *testing.T) {
	tl := FitTrendline([]PointPair{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}})

	require.NotNil(t, tl)
	assert.InDelta(t, 2.0, tl.Slope, 1e-12)
	assert.InDelta(t, 0.0, tl.Intercept, 1e-12)
	assert.Equal(t, [2]float64{1, 2}, tl.Start)
	assert.Equal(t, [2]float64{3, 6}, tl.End)
}

func TestFitTrendlineUnorderedPoints(t *testing.T) {
	tl := FitTrendline([]PointPair{{X: 4, Y: 1}, {X: 0, Y: 3}, {X: 2, Y: 2}})

	require.NotNil(t, tl)
	assert.InDelta(t, -0.5, tl.Slope, 1e-12)
	assert.InDelta(t, 3.0, tl.Intercept, 1e-12)
	assert.Equal(t, 0.0, tl.Start[0])
	assert.Equal(t, 4.0, tl.End[0])
}

func TestFitTrendlineDegenerate(t *testing.T) {
	assert.Nil(t, FitTrendline(nil))
	assert.Nil(t, FitTrendline([]PointPair{{X: 1, Y: 1}}))
	assert.Nil(t, FitTrendline([]PointPair{{X: 5, Y: 1}, {X: 5, Y: 9}, {X: 5, Y: 3}}))
}

func TestFitTrendlineConstantDecimalX(t *testing.T) {
	for _, x := range []float64{0.1, 0.3, 0.7, 36.6, 98.6} {
		points := []PointPair{{X: x, Y: 1}, {X: x, Y: 2}, {X: x, Y: 3}}
		assert.Nil(t, FitTrendline(points), x)
	}
}

func TestCorrelation(t *testing.T) {
	r, ok := Correlation([]PointPair{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}})
	require.True(t, ok)
	assert.Equal(t, 1.0, r)

	r, ok = Correlation([]PointPair{{X: 1, Y: 3}, {X: 2, Y: 2}, {X: 3, Y: 1}})
	require.True(t, ok)
	assert.Equal(t, -1.0, r)

	r, ok = Correlation([]PointPair{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 3, Y: 2}})
	require.True(t, ok)
	assert.Equal(t, 0.5, r)
}

func TestCorrelationDegenerate(t *testing.T) {
	_, ok := Correlation([]PointPair{{X: 1, Y: 1}})
	assert.False(t, ok)

	_, ok = Correlation([]PointPair{{X: 1, Y: 5}, {X: 2, Y: 5}})
	assert.False(t, ok)
}

func TestCorrelationConstantDecimal(t *testing.T) {
	for _, v := range []float64{0.1, 0.3, 0.7, 36.6, 98.6} {
		_, ok := Correlation([]PointPair{{X: v, Y: 1}, {X: v, Y: 2}, {X: v, Y: 4}})
		assert.False(t, ok, "constant x %v", v)

		_, ok = Correlation([]PointPair{{X: 1, Y: v}, {X: 2, Y: v}, {X: 4, Y: v}})
		assert.False(t, ok, "constant y %v", v)
	}
}
