package charts

import "math"

// Trendline is an ordinary least-squares fit y = Slope*x + Intercept drawn
// from the smallest to the largest x of the data.
type Trendline struct {
	Slope     float64    `json:"slope"`
	Intercept float64    `json:"intercept"`
	Start     [2]float64 `json:"start"`
	End       [2]float64 `json:"end"`
}

// FitTrendline returns nil for fewer than two points or when every x is the
// same. Constant x is decided on the values themselves, since the summed
// denominator of repeated decimals rarely comes out exactly zero.
func FitTrendline(points []PointPair) *Trendline {
	n := float64(len(points))
	if len(points) < 2 {
		return nil
	}

	var sumX, sumY, sumXY, sumXX float64
	minX, maxX := points[0].X, points[0].X
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}

	if minX == maxX {
		return nil
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return nil
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	return &Trendline{
		Slope:     slope,
		Intercept: intercept,
		Start:     [2]float64{minX, slope*minX + intercept},
		End:       [2]float64{maxX, slope*maxX + intercept},
	}
}

// Correlation returns the Pearson coefficient of the points, rounded to
// 4 dp. ok is false for fewer than two points or when x or y is constant.
func Correlation(points []PointPair) (r float64, ok bool) {
	if len(points) < 2 || constant(points, func(p PointPair) float64 { return p.X }) ||
		constant(points, func(p PointPair) float64 { return p.Y }) {
		return 0, false
	}

	n := float64(len(points))
	var meanX, meanY float64
	for _, p := range points {
		meanX += p.X
		meanY += p.Y
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for _, p := range points {
		dx, dy := p.X-meanX, p.Y-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return roundTo(cov/math.Sqrt(varX*varY), 4), true
}

func constant(points []PointPair, value func(PointPair) float64) bool {
	first := value(points[0])
	for _, p := range points[1:] {
		if value(p) != first {
			return false
		}
	}
	return true
}
