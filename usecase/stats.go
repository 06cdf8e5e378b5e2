package usecase

import (
	"math"
	"sort"
	"time"

	"main/model"

	"github.com/montanaflynn/stats"
)

// moodWindow is how many of the most recent logs feed the mood average.
const moodWindow = 7

// ComputeStats derives the dashboard snapshot from a user's raw daily logs.
// The input can arrive in any order and with any of the legacy field
// spellings; records are normalized and sorted newest-first here. The
// function is pure: no I/O, the input slice is not mutated, and the same
// logs with the same reference time always produce the same snapshot.
// Malformed per-record data degrades to zero contributions, never an error.
func ComputeStats(logs []model.DailyLog, now time.Time) model.Stats {
	s := model.Stats{LoggedDays: len(logs)}
	if len(logs) == 0 {
		return s
	}

	canon := make([]model.CanonicalLog, len(logs))
	for i := range logs {
		canon[i] = logs[i].Canonical()
	}
	// YYYY-MM-DD sorts lexicographically, newest first.
	sort.Slice(canon, func(i, j int) bool { return canon[i].Date > canon[j].Date })

	window := moodWindow
	if len(canon) < window {
		window = len(canon)
	}
	moods := make([]float64, window)
	for i := 0; i < window; i++ {
		moods[i] = float64(canon[i].Mood)
	}
	if mean, err := stats.Mean(moods); err == nil {
		s.AvgMood = math.Round(mean*10) / 10
	}

	// Consecutive-day gym streak ending today. Each matched record advances
	// the expected date one day back; the first gap or gym-free day ends the
	// walk. No record for today means no streak at all.
	for _, c := range canon {
		expected := now.AddDate(0, 0, -s.GymStreak).Format(model.DateLayout)
		if c.Date != expected || !c.GymDone {
			break
		}
		s.GymStreak++
	}

	for _, c := range canon {
		if c.GymDone {
			s.GymSessions++
		}
		s.TotalMasturbationCount += c.MasturbationCount
		s.TotalVrathamCount += c.VrathamCount
		s.TotalReadingHours += c.ReadingMinutes / 60
		s.TotalDailySpends += c.TotalSpends
	}
	s.LatestDailySpends = canon[0].TotalSpends

	return s
}
