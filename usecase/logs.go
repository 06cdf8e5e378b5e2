package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

type LogsService struct {
	LogsRepo   *repository.LogsRepo
	StatsCache *services.StatsCache // nil disables caching
}

func (svc *LogsService) GetUserLogs(ctx context.Context, userID string) ([]model.DailyLog, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	utils.TrackLogOperation("list")
	return svc.LogsRepo.GetUserLogs(ctx, userID)
}

func (svc *LogsService) GetLog(ctx context.Context, userID, date string) (*model.DailyLog, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	utils.TrackLogOperation("get")
	return svc.LogsRepo.GetLog(ctx, userID, date)
}

// UpsertLog overwrites the full document for a date. New writes are held to
// the current schema (valid date, mood in range); the lenient legacy
// handling only applies on the read path.
func (svc *LogsService) UpsertLog(ctx context.Context, logEntry *model.DailyLog) error {
	if logEntry.UserID == "" {
		return errors.New("user ID is required")
	}
	if _, err := time.Parse(model.DateLayout, logEntry.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", logEntry.Date, err)
	}
	if logEntry.Mood != nil && (*logEntry.Mood < 1 || *logEntry.Mood > 10) {
		return errors.New("mood must be between 1 and 10")
	}

	if err := svc.LogsRepo.UpsertLog(ctx, logEntry); err != nil {
		return fmt.Errorf("failed to save daily log: %w", err)
	}

	utils.TrackLogOperation("upsert")
	svc.invalidateStats(ctx, logEntry.UserID)
	return nil
}

func (svc *LogsService) DeleteLog(ctx context.Context, userID, date string) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	if err := svc.LogsRepo.DeleteLog(ctx, userID, date); err != nil {
		return err
	}

	utils.TrackLogOperation("delete")
	svc.invalidateStats(ctx, userID)
	return nil
}

func (svc *LogsService) SearchLogs(ctx context.Context, userID, query string) ([]model.DailyLog, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if len(query) < 2 {
		return nil, errors.New("search query must be at least 2 characters")
	}
	utils.TrackLogOperation("search")
	return svc.LogsRepo.SearchLogs(ctx, userID, query)
}

// GetStats returns the derived snapshot, from cache when possible. A cache
// failure never fails the request; it just costs a recompute.
func (svc *LogsService) GetStats(ctx context.Context, userID string, now time.Time) (*model.Stats, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	if svc.StatsCache != nil {
		cached, err := svc.StatsCache.Get(ctx, userID)
		if err != nil {
			log.Printf("Warning: stats cache lookup failed for %s: %v", userID, err)
		}
		if cached != nil {
			utils.TrackCacheOperation("stats", true)
			return cached, nil
		}
		utils.TrackCacheOperation("stats", false)
	}

	logs, err := svc.LogsRepo.GetUserLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs for stats: %w", err)
	}

	stats := ComputeStats(logs, now)
	utils.TrackLogOperation("stats")

	if svc.StatsCache != nil {
		if err := svc.StatsCache.Set(ctx, userID, &stats); err != nil {
			log.Printf("Warning: failed to cache stats for %s: %v", userID, err)
		}
	}

	return &stats, nil
}

// AttachMedia records uploaded media URLs on the log for a date.
func (svc *LogsService) AttachMedia(ctx context.Context, userID, date string, photos, videos []string) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	if err := svc.LogsRepo.AttachMedia(ctx, userID, date, photos, videos); err != nil {
		return fmt.Errorf("failed to attach media: %w", err)
	}

	svc.invalidateStats(ctx, userID)
	return nil
}

func (svc *LogsService) invalidateStats(ctx context.Context, userID string) {
	if svc.StatsCache == nil {
		return
	}
	if err := svc.StatsCache.Invalidate(ctx, userID); err != nil {
		log.Printf("Warning: failed to invalidate stats cache for %s: %v", userID, err)
	}
}
