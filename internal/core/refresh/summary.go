package refresh

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// SummaryView is the materialized view every chart query reads from.
const SummaryView = "patient_summary"

// Executor runs a single SQL statement
type Executor interface {
	Exec(ctx context.Context, statement string) error
}

// SummaryRefresher rebuilds the summary view. Overlapping runs are skipped.
type SummaryRefresher struct {
	exec    Executor
	view    string
	timeout time.Duration
	running atomic.Bool
}

// NewSummaryRefresher creates a refresher for the patient summary view
func NewSummaryRefresher(exec Executor) *SummaryRefresher {
	return &SummaryRefresher{
		exec:    exec,
		view:    SummaryView,
		timeout: 5 * time.Minute,
	}
}

// Statement is the SQL issued on every refresh. CONCURRENTLY keeps the view
// readable while it rebuilds and needs the unique index from the migration.
func (r *SummaryRefresher) Statement() string {
	return "REFRESH MATERIALIZED VIEW CONCURRENTLY " + pq.QuoteIdentifier(r.view)
}

// Refresh runs one refresh. It reports false when another run is in flight.
func (r *SummaryRefresher) Refresh(ctx context.Context) (bool, error) {
	if !r.running.CompareAndSwap(false, true) {
		return false, nil
	}
	defer r.running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	if err := r.exec.Exec(ctx, r.Statement()); err != nil {
		return true, fmt.Errorf("refresh %s: %w", r.view, err)
	}
	log.Info().Str("view", r.view).Dur("took", time.Since(start)).Msg("🔄 Summary view refreshed")
	return true, nil
}

// Job adapts Refresh to a cron callback
func (r *SummaryRefresher) Job() func() {
	return func() {
		ran, err := r.Refresh(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("Summary refresh failed")
			return
		}
		if !ran {
			log.Warn().Str("view", r.view).Msg("Summary refresh still running, skipped")
		}
	}
}
