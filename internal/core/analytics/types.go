package analytics

// AggregateQuery represents a generic aggregation over a registry table or view
type AggregateQuery struct {
	Table      string      // Table or view name
	Dimensions []Column    // Selected and grouped columns
	Aggregates []Aggregate // Aggregate expressions
	Conditions []Condition // WHERE conditions, ANDed in order
	OrderBy    []string    // ORDER BY clauses (already quoted)
	Limit      int         // LIMIT (0 = no limit)
}

// SelectQuery represents a raw, non-aggregated row fetch
type SelectQuery struct {
	Table      string
	Columns    []Column
	Conditions []Condition
	Limit      int
}

// Column is a physical column exposed under an alias
type Column struct {
	Name  string // physical column, quoted when rendered
	Alias string // result key
}

// Aggregate is a reducer over a column; an empty Column means COUNT(*)
type Aggregate struct {
	Func   string // COUNT, AVG, SUM, MIN, MAX
	Column string
	Alias  string
}

// Condition is a parameterized WHERE fragment, e.g. {"age IS NOT NULL", nil}
type Condition struct {
	Clause string
	Args   []interface{}
}

// NotNull builds an IS NOT NULL condition for a physical column
func NotNull(column string) Condition {
	return Condition{Clause: quote(column) + " IS NOT NULL"}
}
