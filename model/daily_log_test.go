package model

import "testing"

func intPtr(v int) *int         { return &v }
func f64Ptr(v float64) *float64 { return &v }

func TestCanonicalCounterPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		log      DailyLog
		expected int
	}{
		{
			name: "Snake Case Wins Over Camel Case",
			log: DailyLog{
				MasturbationCount:       intPtr(3),
				LegacyMasturbationCount: intPtr(7),
			},
			expected: 3,
		},
		{
			name: "Camel Case Used When Snake Absent",
			log: DailyLog{
				LegacyMasturbationCount: intPtr(7),
			},
			expected: 7,
		},
		{
			name:     "Both Absent",
			log:      DailyLog{},
			expected: 0,
		},
		{
			name: "Negative Clamped To Zero",
			log: DailyLog{
				MasturbationCount: intPtr(-2),
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.log.Canonical().MasturbationCount; got != tt.expected {
				t.Errorf("Expected count %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCanonicalHabitPrecedence(t *testing.T) {
	tests := []struct {
		name            string
		log             DailyLog
		expectedStudy   float64
		expectedReading float64
	}{
		{
			name: "Flat Fields Win Over Habits Map",
			log: DailyLog{
				StudyHours:     f64Ptr(2),
				ReadingMinutes: f64Ptr(45),
				Habits: map[string]interface{}{
					"study":   float64(5),
					"reading": float64(90),
				},
			},
			expectedStudy:   2,
			expectedReading: 45,
		},
		{
			name: "Habits Map Used When Flat Absent",
			log: DailyLog{
				Habits: map[string]interface{}{
					"study":   float64(5),
					"reading": float64(90),
				},
			},
			expectedStudy:   5,
			expectedReading: 90,
		},
		{
			name: "Malformed Habit Values Coerce To Zero",
			log: DailyLog{
				Habits: map[string]interface{}{
					"study":   "lots",
					"reading": true,
				},
			},
			expectedStudy:   0,
			expectedReading: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.log.Canonical()
			if c.StudyHours != tt.expectedStudy {
				t.Errorf("Expected study hours %v, got %v", tt.expectedStudy, c.StudyHours)
			}
			if c.ReadingMinutes != tt.expectedReading {
				t.Errorf("Expected reading minutes %v, got %v", tt.expectedReading, c.ReadingMinutes)
			}
		})
	}
}

func TestCanonicalMood(t *testing.T) {
	tests := []struct {
		name     string
		mood     *int
		expected int
	}{
		{"In Range", intPtr(7), 7},
		{"Absent", nil, 0},
		{"Below Range", intPtr(0), 0},
		{"Above Range", intPtr(11), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := DailyLog{Mood: tt.mood}
			if got := log.Canonical().Mood; got != tt.expected {
				t.Errorf("Expected mood %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCanonicalTotalSpends(t *testing.T) {
	tests := []struct {
		name     string
		log      DailyLog
		expected float64
	}{
		{
			name:     "Stored Total Wins",
			log:      DailyLog{TotalDaySpends: 150.0, DaySpends: []DaySpend{{Amount: 999}}},
			expected: 150,
		},
		{
			name:     "String Total Parsed",
			log:      DailyLog{TotalDaySpends: "79.5"},
			expected: 79.5,
		},
		{
			name: "Recomputed From Line Items When Absent",
			log: DailyLog{DaySpends: []DaySpend{
				{Label: "coffee", Amount: 40},
				{Label: "lunch", Amount: "60"},
			}},
			expected: 100,
		},
		{
			name: "Malformed Total Falls Back To Line Items",
			log: DailyLog{
				TotalDaySpends: "oops",
				DaySpends:      []DaySpend{{Amount: 25}},
			},
			expected: 25,
		},
		{
			name: "Malformed Line Items Count Zero",
			log: DailyLog{DaySpends: []DaySpend{
				{Amount: "not-a-number"},
				{Amount: 10},
			}},
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.log.Canonical().TotalSpends; got != tt.expected {
				t.Errorf("Expected total %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected float64
	}{
		{"Float64", float64(1.5), 1.5},
		{"Float32", float32(2), 2},
		{"Int", 3, 3},
		{"Int32", int32(4), 4},
		{"Int64", int64(5), 5},
		{"Numeric String", "6.5", 6.5},
		{"Garbage String", "six", 0},
		{"Nil", nil, 0},
		{"Bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceNumber(tt.value); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
