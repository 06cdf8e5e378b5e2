package usecase

import (
	"testing"
	"time"

	"main/model"
)

func TestFilterGoalsByType(t *testing.T) {
	goals := []*model.Goal{
		{GoalID: "1", Type: model.GoalShortTerm},
		{GoalID: "2", Type: model.GoalLongTerm},
		{GoalID: "3", Type: model.GoalShortTerm},
	}

	short := FilterGoalsByType(goals, model.GoalShortTerm)
	if len(short) != 2 || short[0].GoalID != "1" || short[1].GoalID != "3" {
		t.Errorf("Unexpected short-term filter result: %+v", short)
	}

	long := FilterGoalsByType(goals, model.GoalLongTerm)
	if len(long) != 1 || long[0].GoalID != "2" {
		t.Errorf("Unexpected long-term filter result: %+v", long)
	}

	if got := FilterGoalsByType(nil, model.GoalShortTerm); len(got) != 0 {
		t.Errorf("Expected empty result for nil input, got %+v", got)
	}
}

func TestFilterGoalsNearingDeadline(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		goal     model.Goal
		expected bool
	}{
		{
			name:     "Due In Three Days",
			goal:     model.Goal{Deadline: now.AddDate(0, 0, 3), Progress: 50},
			expected: true,
		},
		{
			name:     "Due In Exactly Seven Days",
			goal:     model.Goal{Deadline: now.AddDate(0, 0, 7), Progress: 0},
			expected: true,
		},
		{
			name:     "Due Later Today",
			goal:     model.Goal{Deadline: now.Add(5 * time.Hour), Progress: 10},
			expected: true,
		},
		{
			name:     "Due In Ten Days",
			goal:     model.Goal{Deadline: now.AddDate(0, 0, 10), Progress: 50},
			expected: false,
		},
		{
			name:     "Already Finished",
			goal:     model.Goal{Deadline: now.AddDate(0, 0, 3), Progress: 100},
			expected: false,
		},
		{
			name:     "Overdue",
			goal:     model.Goal{Deadline: now.AddDate(0, 0, -2), Progress: 50},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterGoalsNearingDeadline([]*model.Goal{&tt.goal}, now)
			if included := len(got) == 1; included != tt.expected {
				t.Errorf("Expected included=%v, got %v", tt.expected, included)
			}
		})
	}
}
