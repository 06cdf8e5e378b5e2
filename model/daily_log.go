package model

import (
	"strconv"
	"time"
)

// DateLayout is the canonical key format for daily logs.
const DateLayout = "2006-01-02"

// DaySpend is one expense line item on a daily log. Amount is typed loosely
// because older clients wrote it as a string; CoerceNumber handles both.
type DaySpend struct {
	Label  string      `bson:"label" json:"label"`
	Amount interface{} `bson:"amount" json:"amount"`
}

// DailyLog is one journal entry for one calendar date. The date string is the
// document key, unique per user. Several fields exist in two spellings
// because the collection predates the current schema; Canonical collapses
// them into one view.
type DailyLog struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	UserID string `bson:"user_id" json:"user_id"`
	Date   string `bson:"date" json:"date" binding:"required"`

	Mood   *int                   `bson:"mood,omitempty" json:"mood,omitempty"`
	Habits map[string]interface{} `bson:"habits,omitempty" json:"habits,omitempty"`

	// Legacy counters: snake_case is canonical, camelCase still appears in
	// documents written by older clients.
	MasturbationCount       *int `bson:"masturbation_count,omitempty" json:"masturbation_count,omitempty"`
	LegacyMasturbationCount *int `bson:"masturbationCount,omitempty" json:"masturbationCount,omitempty"`
	VrathamCount            *int `bson:"vratham_count,omitempty" json:"vratham_count,omitempty"`
	LegacyVrathamCount      *int `bson:"vrathamCount,omitempty" json:"vrathamCount,omitempty"`

	SleepTime string `bson:"sleepTime,omitempty" json:"sleepTime,omitempty"`
	WakeTime  string `bson:"wakeTime,omitempty" json:"wakeTime,omitempty"`

	// Flat duplicates of habits.study / habits.reading.
	StudyHours     *float64 `bson:"studyHours,omitempty" json:"studyHours,omitempty"`
	ReadingMinutes *float64 `bson:"readingMinutes,omitempty" json:"readingMinutes,omitempty"`

	Photos []string `bson:"photos,omitempty" json:"photos,omitempty"`
	Videos []string `bson:"videos,omitempty" json:"videos,omitempty"`

	DaySpends      []DaySpend  `bson:"daySpends,omitempty" json:"daySpends,omitempty"`
	TotalDaySpends interface{} `bson:"totalDaySpends,omitempty" json:"totalDaySpends,omitempty"`

	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`
	WhatDidYouEat string `bson:"whatDidYouEat,omitempty" json:"whatDidYouEat,omitempty"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// CanonicalLog is the normalized view of a DailyLog: one spelling per field,
// every numeric coerced, nothing optional. Aggregation code only ever sees
// this form.
type CanonicalLog struct {
	Date              string
	Mood              int
	GymDone           bool
	StudyHours        float64
	ReadingMinutes    float64
	MasturbationCount int
	VrathamCount      int
	TotalSpends       float64
}

// Canonical normalizes the record. Precedence rules:
//   - snake_case counters win over their camelCase spellings
//   - flat studyHours/readingMinutes win over habits.study/habits.reading
//   - totalDaySpends is recomputed from daySpends when absent or invalid
//
// Malformed values coerce to zero; mood outside 1-10 counts as unrated.
func (l *DailyLog) Canonical() CanonicalLog {
	c := CanonicalLog{Date: l.Date}

	if l.Mood != nil && *l.Mood >= 1 && *l.Mood <= 10 {
		c.Mood = *l.Mood
	}

	if v, ok := l.Habits["gym"].(bool); ok {
		c.GymDone = v
	}

	c.StudyHours = pickNumber(l.StudyHours, l.Habits["study"])
	c.ReadingMinutes = pickNumber(l.ReadingMinutes, l.Habits["reading"])
	c.MasturbationCount = pickCount(l.MasturbationCount, l.LegacyMasturbationCount)
	c.VrathamCount = pickCount(l.VrathamCount, l.LegacyVrathamCount)

	if total, ok := tryNumber(l.TotalDaySpends); ok {
		c.TotalSpends = total
	} else {
		for _, s := range l.DaySpends {
			c.TotalSpends += CoerceNumber(s.Amount)
		}
	}

	return c
}

func pickNumber(flat *float64, habit interface{}) float64 {
	if flat != nil {
		return *flat
	}
	return CoerceNumber(habit)
}

func pickCount(canonical, legacy *int) int {
	v := 0
	if canonical != nil {
		v = *canonical
	} else if legacy != nil {
		v = *legacy
	}
	if v < 0 {
		return 0
	}
	return v
}

// CoerceNumber converts the loosely-typed numerics that come out of the
// store into a float64. Anything unparseable counts as zero.
func CoerceNumber(v interface{}) float64 {
	n, _ := tryNumber(v)
	return n
}

func tryNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
