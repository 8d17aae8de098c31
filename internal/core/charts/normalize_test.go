package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	raw := []RawSeriesPoint{
		{Label: "Male", Value: 10.0, Series: "Qatari"},
		{Label: nil, Value: 4.0},
		{Label: "", Value: 3.0},
		{Label: 45.0, Value: "12.5"},
		{Label: int64(7), Value: nil, Series: ""},
		{Label: "Female", Value: math.NaN()},
		{Label: "Other", Value: "n/a"},
		{Label: "Inf", Value: math.Inf(1)},
	}

	got := Normalize(raw)

	assert.Equal(t, []NormalizedPoint{
		{Label: "Male", Value: 10, Series: "Qatari"},
		{Label: "45", Value: 12.5, Series: AllSeries},
		{Label: "7", Value: 0, Series: AllSeries},
		{Label: "Female", Value: 0, Series: AllSeries},
		{Label: "Other", Value: 0, Series: AllSeries},
		{Label: "Inf", Value: 0, Series: AllSeries},
	}, got)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.NotNil(t, Normalize(nil))
}

func TestNormalizeDoesNotDeduplicate(t *testing.T) {
	raw := []RawSeriesPoint{{Label: "A", Value: 1}, {Label: "A", Value: 2}}
	assert.Len(t, Normalize(raw), 2)
}

func TestFormatLabelFloat(t *testing.T) {
	assert.Equal(t, "45", FormatLabel(45.0))
	assert.Equal(t, "27.35", FormatLabel(27.35))
	assert.Equal(t, "true", FormatLabel(true))
	assert.Equal(t, "0.1", FormatLabel(float32(0.1)))
	assert.Equal(t, "36.6", FormatLabel(float32(36.6)))
}
