package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChartRenderLog records one server-side chart render
type ChartRenderLog struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	RequestID string `json:"request_id,omitempty" gorm:"type:text;index"`
	Event     string `json:"event" gorm:"type:text;not null;index"` // chart.render, chart.export
	ChartType string `json:"chart_type" gorm:"type:text;not null;index"`
	Mode      string `json:"mode" gorm:"type:text"` // aggregate or points

	// Redacted chart configuration
	Config datatypes.JSON `json:"config,omitempty" gorm:"type:jsonb"`

	RowCount      int   `json:"row_count" gorm:"type:integer"`
	CategoryCount int   `json:"category_count" gorm:"type:integer"`
	Duration      int64 `json:"duration_ms" gorm:"type:bigint"`
	Inline        bool  `json:"inline" gorm:"not null;default:false"` // data supplied by the caller

	Error string `json:"error,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name
func (ChartRenderLog) TableName() string {
	return "chart_render_logs"
}

const (
	EventRender = "chart.render"
	EventExport = "chart.export"
)
