package model

// Stats is the read-only snapshot derived from a user's daily logs. All
// fields are recomputed from scratch on every refresh; nothing here is
// stored.
type Stats struct {
	LoggedDays             int     `json:"logged_days"`
	AvgMood                float64 `json:"avg_mood"`
	GymStreak              int     `json:"gym_streak"`
	GymSessions            int     `json:"gym_sessions"`
	TotalMasturbationCount int     `json:"total_masturbation_count"`
	TotalVrathamCount      int     `json:"total_vratham_count"`
	TotalReadingHours      float64 `json:"total_reading_hours"`
	TotalDailySpends       float64 `json:"total_daily_spends"`
	LatestDailySpends      float64 `json:"latest_daily_spends"`
}
