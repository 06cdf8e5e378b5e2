package usecase

import (
	"context"
	"testing"

	"main/model"
)

// Import must never abort the batch: every malformed record is counted and
// skipped while the rest proceed.
func TestImportContinuesPastFailures(t *testing.T) {
	svc := &ExportService{LogsSvc: &LogsService{}}

	bundle := &model.ExportBundle{
		DailyLogs: []*model.DailyLog{
			nil,
			{Date: ""},
			{Date: "30-08-2026"}, // wrong layout, rejected before any store call
		},
		Goals: []*model.Goal{nil},
	}

	result, err := svc.Import(context.Background(), "user-1", bundle)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.LogsImported != 0 || result.GoalsImported != 0 {
		t.Errorf("Expected nothing imported, got %d logs, %d goals",
			result.LogsImported, result.GoalsImported)
	}
	if len(result.Failed) != 4 {
		t.Errorf("Expected 4 failed records, got %d: %v", len(result.Failed), result.Failed)
	}
}

func TestImportRequiresUser(t *testing.T) {
	svc := &ExportService{}
	if _, err := svc.Import(context.Background(), "", &model.ExportBundle{}); err == nil {
		t.Error("Expected error for missing user ID")
	}
}
