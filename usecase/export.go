package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"main/model"

	"github.com/google/uuid"
)

// ExportLogsStore and ExportGoalsStore are the persistence surfaces the
// export needs; satisfied by repository.LogsRepo and repository.GoalsRepo.
type ExportLogsStore interface {
	GetUserLogs(ctx context.Context, userID string) ([]model.DailyLog, error)
}

type ExportGoalsStore interface {
	GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error)
	UpsertGoal(ctx context.Context, goal *model.Goal) error
}

// DailyLogSaver is the validated write path for restored logs; satisfied by
// LogsService so imports get the same checks as direct saves.
type DailyLogSaver interface {
	UpsertLog(ctx context.Context, logEntry *model.DailyLog) error
}

// ExportService assembles and restores the portable JSON dump of a user's
// daily logs and goals.
type ExportService struct {
	LogsRepo  ExportLogsStore
	GoalsRepo ExportGoalsStore
	LogsSvc   DailyLogSaver
}

func (svc *ExportService) Export(ctx context.Context, userID string) (*model.ExportBundle, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	logs, err := svc.LogsRepo.GetUserLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export daily logs: %w", err)
	}

	goals, err := svc.GoalsRepo.GetUserGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export goals: %w", err)
	}

	bundle := &model.ExportBundle{
		DailyLogs:  make([]*model.DailyLog, len(logs)),
		Goals:      goals,
		ExportedAt: time.Now(),
	}
	for i := range logs {
		bundle.DailyLogs[i] = &logs[i]
	}
	return bundle, nil
}

// Import upserts each record individually, keyed by date for logs and id for
// goals. A failed item is logged and counted; the rest of the batch always
// proceeds.
func (svc *ExportService) Import(ctx context.Context, userID string, bundle *model.ExportBundle) (*model.ImportResult, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	result := &model.ImportResult{}

	for _, logEntry := range bundle.DailyLogs {
		if logEntry == nil || logEntry.Date == "" {
			result.Failed = append(result.Failed, "daily log with missing date")
			continue
		}
		logEntry.UserID = userID
		logEntry.ID = "" // reassigned from user and date on upsert
		if err := svc.LogsSvc.UpsertLog(ctx, logEntry); err != nil {
			log.Printf("Import: failed to upsert log %s: %v", logEntry.Date, err)
			result.Failed = append(result.Failed, "daily log "+logEntry.Date)
			continue
		}
		result.LogsImported++
	}

	for _, goal := range bundle.Goals {
		if goal == nil {
			result.Failed = append(result.Failed, "empty goal record")
			continue
		}
		goal.UserID = userID
		if goal.GoalID == "" {
			goal.GoalID = uuid.New().String()
		}
		if err := svc.GoalsRepo.UpsertGoal(ctx, goal); err != nil {
			log.Printf("Import: failed to upsert goal %s: %v", goal.GoalID, err)
			result.Failed = append(result.Failed, "goal "+goal.GoalID)
			continue
		}
		result.GoalsImported++
	}

	return result, nil
}
