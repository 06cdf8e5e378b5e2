package usecase

import (
	"reflect"
	"testing"
	"time"

	"main/model"
)

func moodPtr(v int) *int        { return &v }
func numPtr(v float64) *float64 { return &v }
func countPtr(v int) *int       { return &v }

func dateOffset(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(model.DateLayout)
}

func TestComputeStatsEmpty(t *testing.T) {
	got := ComputeStats(nil, time.Now())
	if !reflect.DeepEqual(got, model.Stats{}) {
		t.Errorf("Expected zero stats for no logs, got %+v", got)
	}
}

func TestComputeStatsLoggedDays(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	logs := []model.DailyLog{
		{Date: dateOffset(now, 0)},
		{Date: dateOffset(now, 1)},
		{Date: dateOffset(now, 5)},
	}
	got := ComputeStats(logs, now)
	if got.LoggedDays != 3 {
		t.Errorf("Expected 3 logged days, got %d", got.LoggedDays)
	}
}

func TestComputeStatsAvgMood(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		moods    []*int
		expected float64
	}{
		{
			name: "Seven Rated Days",
			moods: []*int{
				moodPtr(8), moodPtr(6), moodPtr(7), moodPtr(9),
				moodPtr(5), moodPtr(10), moodPtr(3),
			},
			expected: 6.9, // 48/7 rounded to one decimal
		},
		{
			name: "Older Logs Ignored",
			moods: []*int{
				moodPtr(8), moodPtr(6), moodPtr(7), moodPtr(9),
				moodPtr(5), moodPtr(10), moodPtr(3), moodPtr(10), moodPtr(10),
			},
			expected: 6.9,
		},
		{
			name:     "Unrated Day Counts As Zero",
			moods:    []*int{moodPtr(8), nil},
			expected: 4,
		},
		{
			name:     "Out Of Range Counts As Zero",
			moods:    []*int{moodPtr(8), moodPtr(11)},
			expected: 4,
		},
		{
			name:     "Single Day",
			moods:    []*int{moodPtr(7)},
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := make([]model.DailyLog, len(tt.moods))
			for i, mood := range tt.moods {
				logs[i] = model.DailyLog{Date: dateOffset(now, i), Mood: mood}
			}

			got := ComputeStats(logs, now)
			if got.AvgMood != tt.expected {
				t.Errorf("Expected avg mood %v, got %v", tt.expected, got.AvgMood)
			}
		})
	}
}

func TestComputeStatsGymStreak(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	gym := func(date string, done bool) model.DailyLog {
		return model.DailyLog{Date: date, Habits: map[string]interface{}{"gym": done}}
	}

	tests := []struct {
		name     string
		logs     []model.DailyLog
		expected int
	}{
		{
			name: "Three Consecutive Days",
			logs: []model.DailyLog{
				gym(dateOffset(now, 0), true),
				gym(dateOffset(now, 1), true),
				gym(dateOffset(now, 2), true),
			},
			expected: 3,
		},
		{
			name: "Gap Breaks Streak",
			logs: []model.DailyLog{
				gym(dateOffset(now, 0), true),
				gym(dateOffset(now, 2), true),
				gym(dateOffset(now, 3), true),
			},
			expected: 1,
		},
		{
			name: "No Log Today Means No Streak",
			logs: []model.DailyLog{
				gym(dateOffset(now, 1), true),
				gym(dateOffset(now, 2), true),
			},
			expected: 0,
		},
		{
			name: "Gym Skipped Today Means No Streak",
			logs: []model.DailyLog{
				gym(dateOffset(now, 0), false),
				gym(dateOffset(now, 1), true),
			},
			expected: 0,
		},
		{
			name: "Gym Free Day Inside Run",
			logs: []model.DailyLog{
				gym(dateOffset(now, 0), true),
				gym(dateOffset(now, 1), false),
				gym(dateOffset(now, 2), true),
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.logs, now)
			if got.GymStreak != tt.expected {
				t.Errorf("Expected streak %d, got %d", tt.expected, got.GymStreak)
			}
		})
	}
}

func TestComputeStatsTotals(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	logs := []model.DailyLog{
		{
			Date:           dateOffset(now, 0),
			Habits:         map[string]interface{}{"gym": true},
			ReadingMinutes: numPtr(90),
			TotalDaySpends: 120.5,
		},
		{
			Date:              dateOffset(now, 1),
			Habits:            map[string]interface{}{"gym": true, "reading": float64(60)},
			MasturbationCount: countPtr(2),
			VrathamCount:      countPtr(1),
			TotalDaySpends:    "79.5", // older clients stored the total as a string
		},
		{
			Date: dateOffset(now, 3),
			DaySpends: []model.DaySpend{
				{Label: "coffee", Amount: 40},
				{Label: "torn receipt", Amount: "not-a-number"},
			},
		},
	}

	got := ComputeStats(logs, now)

	if got.GymSessions != 2 {
		t.Errorf("Expected 2 gym sessions, got %d", got.GymSessions)
	}
	if got.TotalReadingHours != 2.5 {
		t.Errorf("Expected 2.5 reading hours, got %v", got.TotalReadingHours)
	}
	if got.TotalMasturbationCount != 2 {
		t.Errorf("Expected masturbation count 2, got %d", got.TotalMasturbationCount)
	}
	if got.TotalVrathamCount != 1 {
		t.Errorf("Expected vratham count 1, got %d", got.TotalVrathamCount)
	}
	if got.TotalDailySpends != 240 {
		t.Errorf("Expected total spends 240, got %v", got.TotalDailySpends)
	}
	if got.LatestDailySpends != 120.5 {
		t.Errorf("Expected latest spends 120.5, got %v", got.LatestDailySpends)
	}
}

func TestComputeStatsDoesNotMutateInput(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// Deliberately unsorted.
	logs := []model.DailyLog{
		{Date: dateOffset(now, 2), Mood: moodPtr(3)},
		{Date: dateOffset(now, 0), Mood: moodPtr(9)},
		{Date: dateOffset(now, 1), Mood: moodPtr(6)},
	}
	original := make([]model.DailyLog, len(logs))
	copy(original, logs)

	first := ComputeStats(logs, now)
	second := ComputeStats(logs, now)

	if !reflect.DeepEqual(logs, original) {
		t.Error("Input slice was mutated")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Same input produced different snapshots: %+v vs %+v", first, second)
	}
	if first.LatestDailySpends != 0 {
		t.Errorf("Expected zero latest spends, got %v", first.LatestDailySpends)
	}
}
