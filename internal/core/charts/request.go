package charts

// RequestMode tells the data source which fetch shape a chart needs.
type RequestMode string

const (
	// ModeAggregate asks for label/value(/series) rows grouped by the x field.
	ModeAggregate RequestMode = "aggregate"
	// ModePoints asks for raw, non-aggregated point pairs.
	ModePoints RequestMode = "points"
)

// AggregationRequest is the minimal query a chart needs from the data source.
type AggregationRequest struct {
	Mode        RequestMode `json:"mode"`
	XAxis       string      `json:"xAxis"`
	YAxis       string      `json:"yAxis,omitempty"`
	GroupBy     string      `json:"groupBy,omitempty"`
	Aggregation Aggregation `json:"aggregation"`
	Bins        int         `json:"bins"`
	Limit       int         `json:"limit"`
}

// BuildRequest derives the data-source request for a configuration.
//
// The aggregation is forced to count whenever no numeric y field is bound:
// any other reducer over a missing or categorical column is meaningless and
// must never reach the data source. Point charts (including the y-requiring
// types with no y bound) get a raw point-pair fetch instead of aggregation.
func BuildRequest(cfg Config) (AggregationRequest, error) {
	if cfg.XAxis == "" {
		return AggregationRequest{}, ErrMissingXAxis
	}

	req := AggregationRequest{
		Mode:        ModeAggregate,
		XAxis:       cfg.XAxis,
		GroupBy:     cfg.GroupBy,
		Aggregation: AggCount,
		Bins:        clampBins(cfg.Bins),
		Limit:       DefaultAggregateLimit,
	}

	if cfg.YAxis != "" && IsNumericField(cfg.YAxis) {
		req.YAxis = cfg.YAxis
		if cfg.Aggregation.Valid() {
			req.Aggregation = cfg.Aggregation
		}
	}

	if cfg.Type.UsesPoints() {
		req.Mode = ModePoints
		req.Limit = DefaultPointLimit
	}

	return req, nil
}

func clampBins(bins int) int {
	if bins == 0 {
		return DefaultBins
	}
	if bins < MinBins {
		return MinBins
	}
	if bins > MaxBins {
		return MaxBins
	}
	return bins
}
