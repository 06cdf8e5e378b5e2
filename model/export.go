package model

import "time"

// ExportBundle is the portable dump format: daily logs and goals under
// their collection names plus the export timestamp.
type ExportBundle struct {
	DailyLogs  []*DailyLog `json:"daily_logs"`
	Goals      []*Goal     `json:"goals"`
	ExportedAt time.Time   `json:"exported_at"`
}

// ImportResult reports a batch import. Failures are per-item; a failed item
// never aborts the rest of the batch.
type ImportResult struct {
	LogsImported  int      `json:"logs_imported"`
	GoalsImported int      `json:"goals_imported"`
	Failed        []string `json:"failed,omitempty"`
}
