package models

import "time"

// AnalysisTask records one derived-product recompute run.
type AnalysisTask struct {
	ID int64 `json:"id" db:"id"`

	TaskType string `json:"task_type" db:"task_type"`
	Status   string `json:"status" db:"status"`

	// ResultSummary is a JSON object with run statistics (cell counts,
	// dropped records), populated on completion.
	ResultSummary string `json:"result_summary,omitempty" db:"result_summary"`
	ErrorMessage  string `json:"error_message,omitempty" db:"error_message"`

	StartTime int64 `json:"start_time,omitempty" db:"start_time"`
	EndTime   int64 `json:"end_time,omitempty" db:"end_time"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Task type constants
const (
	TaskTypeRaster = "raster"
)

// Task status constants
const (
	TaskStatusPending   = "pending"
	TaskStatusRunning   = "running"
	TaskStatusCompleted = "completed"
	TaskStatusFailed    = "failed"
)
