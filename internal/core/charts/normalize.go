package charts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Normalize coerces raw data-source rows into NormalizedPoints. Rows whose
// label is empty after coercion are dropped; order is preserved and nothing
// is deduplicated.
func Normalize(raw []RawSeriesPoint) []NormalizedPoint {
	out := make([]NormalizedPoint, 0, len(raw))
	for _, row := range raw {
		label := FormatLabel(row.Label)
		if label == "" {
			continue
		}
		series := FormatLabel(row.Series)
		if series == "" {
			series = AllSeries
		}
		out = append(out, NormalizedPoint{
			Label:  label,
			Value:  ToFloat64(row.Value),
			Series: series,
		})
	}
	return out
}

// FormatLabel renders a label or series key as text; nil becomes "".
func FormatLabel(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case time.Time:
		return v.Format("2006-01-02")
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case bool:
		return strconv.FormatBool(v)
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatFloat(v float64, bitSize int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}

// ToFloat64 returns a finite number for any input, 0 when coercion fails.
func ToFloat64(value interface{}) float64 {
	var f float64
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case []byte:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
