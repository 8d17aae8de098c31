package charts

import (
	"fmt"
	"strings"
)

// FieldType is the semantic type of a registry field.
type FieldType string

const (
	Numeric     FieldType = "numeric"
	Categorical FieldType = "categorical"
)

// FieldDescriptor describes a field that can be bound to a chart axis.
type FieldDescriptor struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Category string    `json:"category"`
	Type     FieldType `json:"type"`
	Column   string    `json:"-"`
}

// ChartTypeRequirement lists the axis constraints of a chart type.
type ChartTypeRequirement struct {
	XRequired bool        `json:"xRequired"`
	YRequired bool        `json:"yRequired"`
	XTypes    []FieldType `json:"xTypes"`
	YTypes    []FieldType `json:"yTypes"`
}

var registryFields = []FieldDescriptor{
	{ID: "age", Label: "Age", Category: "Demographics", Type: Numeric, Column: "age"},
	{ID: "bmi", Label: "BMI", Category: "Physical", Type: Numeric, Column: "bmi"},
	{ID: "systolic_bp", Label: "Systolic BP", Category: "Physical", Type: Numeric, Column: "systolic_bp"},
	{ID: "diastolic_bp", Label: "Diastolic BP", Category: "Physical", Type: Numeric, Column: "diastolic_bp"},
	{ID: "heart_rate", Label: "Heart Rate", Category: "Physical", Type: Numeric, Column: "heart_rate"},
	{ID: "weight", Label: "Weight (kg)", Category: "Physical", Type: Numeric, Column: "weight_kg"},
	{ID: "height", Label: "Height (cm)", Category: "Physical", Type: Numeric, Column: "height_cm"},
	{ID: "hba1c", Label: "HbA1c", Category: "Labs", Type: Numeric, Column: "hba1c"},
	{ID: "troponin_i", Label: "Troponin I", Category: "Labs", Type: Numeric, Column: "troponin_i"},
	{ID: "ef", Label: "Echo EF", Category: "Imaging", Type: Numeric, Column: "echo_ef"},
	{ID: "lv_ejection_fraction", Label: "LV EF (MRI)", Category: "Imaging", Type: Numeric, Column: "mri_ef"},
	{ID: "lv_mass", Label: "LV Mass", Category: "Imaging", Type: Numeric, Column: "lv_mass"},
	{ID: "rv_ef", Label: "RV EF", Category: "Imaging", Type: Numeric, Column: "rv_ef"},
	{ID: "smoking_years", Label: "Smoking Years", Category: "Lifestyle", Type: Numeric, Column: "smoking_years"},
	{ID: "gender", Label: "Gender", Category: "Demographics", Type: Categorical, Column: "gender"},
	{ID: "nationality", Label: "Nationality", Category: "Demographics", Type: Categorical, Column: "nationality"},
	{ID: "current_city_category", Label: "City Category", Category: "Geographic", Type: Categorical, Column: "current_city_category"},
	{ID: "childhood_city_category", Label: "Childhood City Category", Category: "Geographic", Type: Categorical, Column: "childhood_city_category"},
	{ID: "migration_pattern", Label: "Migration Pattern", Category: "Geographic", Type: Categorical, Column: "migration_pattern"},
}

var (
	anyType     = []FieldType{Numeric, Categorical}
	numericOnly = []FieldType{Numeric}
)

var requirements = map[ChartType]ChartTypeRequirement{
	ChartBar:                {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartHorizontalBar:      {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartGroupedBar:         {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartStackedBar:         {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartPercentStackedBar:  {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartLine:               {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartStepLine:           {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartArea:               {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartStackedArea:        {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartPercentStackedArea: {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartCombo:              {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartLollipop:           {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartPie:                {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartDonut:              {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartRose:               {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartFunnel:             {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartRadar:              {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartPolarBar:           {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartTreemap:            {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartSunburst:           {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartGauge:              {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartTable:              {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartScatter:            {XRequired: true, YRequired: true, XTypes: numericOnly, YTypes: numericOnly},
	ChartBubble:             {XRequired: true, YRequired: true, XTypes: numericOnly, YTypes: numericOnly},
	ChartHeatmap:            {XRequired: true, YRequired: true, XTypes: numericOnly, YTypes: numericOnly},
	ChartHistogram:          {XRequired: true, XTypes: numericOnly},
	ChartBoxplot:            {XRequired: true, YRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartPareto:             {XRequired: true, XTypes: anyType, YTypes: numericOnly},
	ChartWaterfall:          {XRequired: true, XTypes: anyType, YTypes: numericOnly},
}

// Fields returns a copy of the registry field table.
func Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(registryFields))
	copy(out, registryFields)
	return out
}

// LookupField finds a field by id.
func LookupField(id string) (FieldDescriptor, bool) {
	for _, f := range registryFields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// Requirement returns the axis constraints for a chart type.
func Requirement(t ChartType) (ChartTypeRequirement, bool) {
	r, ok := requirements[t]
	return r, ok
}

// IsNumericField reports whether id names a known numeric field.
func IsNumericField(id string) bool {
	f, ok := LookupField(id)
	return ok && f.Type == Numeric
}

// ValidationError collects every problem found in a configuration.
type ValidationError struct {
	Problems []string
	causes   []error
}

func (e *ValidationError) Error() string {
	return "invalid chart configuration: " + strings.Join(e.Problems, "; ")
}

// Unwrap exposes the sentinel errors behind the problems, so errors.Is
// matches ErrMissingXAxis, ErrUnknownField and ErrUnsupportedChartType.
func (e *ValidationError) Unwrap() []error {
	return e.causes
}

// ValidateConfig checks a configuration against the field table and the
// chart type requirements.
func ValidateConfig(cfg Config) error {
	var (
		problems []string
		causes   []error
	)

	req, ok := Requirement(cfg.Type)
	if !ok {
		problems = append(problems, fmt.Sprintf("%s: %q", ErrUnsupportedChartType, cfg.Type))
		causes = append(causes, ErrUnsupportedChartType)
	}

	checkAxis := func(axis, id string, required bool, accepted []FieldType) {
		if id == "" {
			if required {
				problems = append(problems, fmt.Sprintf("%s axis is required for %s charts", axis, cfg.Type))
			}
			return
		}
		f, found := LookupField(id)
		if !found {
			problems = append(problems, fmt.Sprintf("%s: %q", ErrUnknownField, id))
			causes = append(causes, ErrUnknownField)
			return
		}
		if ok && len(accepted) > 0 && !containsType(accepted, f.Type) {
			problems = append(problems, fmt.Sprintf("%s axis field %q (%s) is not accepted by %s charts", axis, id, f.Type, cfg.Type))
		}
	}

	if cfg.XAxis == "" {
		problems = append(problems, ErrMissingXAxis.Error())
		causes = append(causes, ErrMissingXAxis)
	} else {
		checkAxis("x", cfg.XAxis, req.XRequired, req.XTypes)
	}
	checkAxis("y", cfg.YAxis, req.YRequired, req.YTypes)
	if cfg.GroupBy != "" {
		if _, found := LookupField(cfg.GroupBy); !found {
			problems = append(problems, fmt.Sprintf("%s: %q", ErrUnknownField, cfg.GroupBy))
			causes = append(causes, ErrUnknownField)
		}
	}

	if cfg.Aggregation != "" && !cfg.Aggregation.Valid() {
		problems = append(problems, fmt.Sprintf("unknown aggregation %q", cfg.Aggregation))
	}
	if cfg.SortOrder != "" && cfg.SortOrder != SortAsc && cfg.SortOrder != SortDesc {
		problems = append(problems, fmt.Sprintf("unknown sort order %q", cfg.SortOrder))
	}
	if cfg.Bins > MaxBins {
		problems = append(problems, fmt.Sprintf("bins must be at most %d, got %d", MaxBins, cfg.Bins))
	}
	if cfg.Orientation != "" && cfg.Orientation != Vertical && cfg.Orientation != Horizontal {
		problems = append(problems, fmt.Sprintf("unknown orientation %q", cfg.Orientation))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems, causes: causes}
	}
	return nil
}

func containsType(types []FieldType, t FieldType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
