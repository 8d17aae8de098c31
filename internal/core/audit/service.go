package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	redactedValue = "[REDACTED]"

	defaultRecentLimit = 50
	maxRecentLimit     = 500
)

// sensitiveKeys never leave the process in clear text
var sensitiveKeys = []string{"dna_id", "mrn", "name", "email", "phone"}

// Service provides audit logging functionality
type Service struct {
	db *gorm.DB
}

// NewService creates a new audit service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Log persists an entry and mirrors it to the structured log
func (s *Service) Log(ctx context.Context, entry *ChartRenderLog) error {
	log.Info().
		Str("event", entry.Event).
		Str("request_id", entry.RequestID).
		Str("chart_type", entry.ChartType).
		Int("rows", entry.RowCount).
		Int64("duration_ms", entry.Duration).
		RawJSON("config", jsonOrNull(entry.Config)).
		Msg("audit")

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// Recent returns the latest entries, newest first
func (s *Service) Recent(ctx context.Context, limit int) ([]ChartRenderLog, error) {
	limit = ClampLimit(limit)

	var logs []ChartRenderLog
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}
	return logs, nil
}

// ClampLimit applies the default and upper bound for Recent
func ClampLimit(limit int) int {
	if limit < 1 {
		return defaultRecentLimit
	}
	if limit > maxRecentLimit {
		return maxRecentLimit
	}
	return limit
}

// RedactedJSON serializes payload with identifying keys masked at any depth
func RedactedJSON(payload interface{}) (datatypes.JSON, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize audit payload: %w", err)
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("failed to decode audit payload: %w", err)
	}

	out, err := json.Marshal(Redact(generic))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize audit payload: %w", err)
	}
	return datatypes.JSON(out), nil
}

// Redact masks sensitive keys in decoded JSON. Nil values are left alone.
func Redact(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, inner := range v {
			out[k] = Redact(inner)
		}
		for _, key := range sensitiveKeys {
			if inner, ok := out[key]; ok && inner != nil {
				out[key] = redactedValue
			}
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, inner := range v {
			out[i] = Redact(inner)
		}
		return out
	default:
		return v
	}
}

func jsonOrNull(raw datatypes.JSON) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
