package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var allowedFuncs = map[string]bool{
	"COUNT": true,
	"AVG":   true,
	"SUM":   true,
	"MIN":   true,
	"MAX":   true,
}

// Aggregator provides generic database aggregation helpers
type Aggregator struct {
	db *gorm.DB
}

// NewAggregator creates a new aggregator
func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// Aggregate performs a generic aggregation query
func (a *Aggregator) Aggregate(ctx context.Context, query AggregateQuery) ([]map[string]interface{}, error) {
	selectClause, groupClause, err := BuildAggregateClauses(query)
	if err != nil {
		return nil, err
	}

	db := a.db.WithContext(ctx).Table(quote(query.Table)).Select(selectClause)
	db = applyConditions(db, query.Conditions)

	if groupClause != "" {
		db = db.Group(groupClause)
	}
	for _, order := range query.OrderBy {
		db = db.Order(order)
	}
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var results []map[string]interface{}
	if err := db.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("aggregate query failed: %w", err)
	}

	return results, nil
}

// Select fetches raw rows without aggregation
func (a *Aggregator) Select(ctx context.Context, query SelectQuery) ([]map[string]interface{}, error) {
	if len(query.Columns) == 0 {
		return nil, fmt.Errorf("select query needs at least one column")
	}

	db := a.db.WithContext(ctx).Table(quote(query.Table)).Select(columnList(query.Columns))
	db = applyConditions(db, query.Conditions)
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var results []map[string]interface{}
	if err := db.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("select query failed: %w", err)
	}

	return results, nil
}

// Count performs a simple COUNT query
func (a *Aggregator) Count(ctx context.Context, table string, conditions ...Condition) (int64, error) {
	db := applyConditions(a.db.WithContext(ctx).Table(quote(table)), conditions)

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}

	return count, nil
}

// Exec runs a maintenance statement such as a materialized view refresh
func (a *Aggregator) Exec(ctx context.Context, statement string) error {
	if err := a.db.WithContext(ctx).Exec(statement).Error; err != nil {
		return fmt.Errorf("exec failed: %w", err)
	}
	return nil
}

// BuildAggregateClauses renders the SELECT and GROUP BY clauses of a query.
// Every identifier is quoted, and aggregate functions are whitelisted.
func BuildAggregateClauses(query AggregateQuery) (string, string, error) {
	if query.Table == "" {
		return "", "", fmt.Errorf("aggregate query needs a table")
	}
	if len(query.Aggregates) == 0 {
		return "", "", fmt.Errorf("aggregate query needs at least one aggregate")
	}

	selectParts := make([]string, 0, len(query.Dimensions)+len(query.Aggregates))
	groupParts := make([]string, 0, len(query.Dimensions))
	for _, col := range query.Dimensions {
		selectParts = append(selectParts, columnExpr(col))
		groupParts = append(groupParts, quote(col.Name))
	}

	for _, agg := range query.Aggregates {
		fn := strings.ToUpper(agg.Func)
		if !allowedFuncs[fn] {
			return "", "", fmt.Errorf("unsupported aggregate function %q", agg.Func)
		}
		target := "*"
		if agg.Column != "" {
			target = quote(agg.Column)
		}
		selectParts = append(selectParts, fmt.Sprintf("%s(%s) AS %s", fn, target, quote(agg.Alias)))
	}

	return strings.Join(selectParts, ", "), strings.Join(groupParts, ", "), nil
}

func columnList(columns []Column) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = columnExpr(col)
	}
	return strings.Join(parts, ", ")
}

func columnExpr(col Column) string {
	if col.Alias == "" || col.Alias == col.Name {
		return quote(col.Name)
	}
	return quote(col.Name) + " AS " + quote(col.Alias)
}

func applyConditions(db *gorm.DB, conditions []Condition) *gorm.DB {
	for _, c := range conditions {
		db = db.Where(c.Clause, c.Args...)
	}
	return db
}

func quote(identifier string) string {
	return pq.QuoteIdentifier(identifier)
}
