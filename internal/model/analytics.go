package model

// WeeklyProgress holds completion metrics for the current week.
type WeeklyProgress struct {
	ChildID        int     `json:"child_id"`
	WeekStart      string  `json:"week_start"` // yyyy-mm-dd
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

// PillarCount is one row of the pillar-distribution report.
type PillarCount struct {
	Pillar string `json:"pillar"`
	Count  int    `json:"count"`
}

// DifficultyPoint is one row of the difficulty-trend report.
type DifficultyPoint struct {
	Date          string  `json:"date"` // yyyy-mm-dd
	AvgDifficulty float64 `json:"avg_difficulty"`
}

// Milestone is a developmental milestone with achieved status.
type Milestone struct {
	AgePhase string `json:"age_phase"`
	Focus    string `json:"focus"`
	Title    string `json:"title"`
	Achieved bool   `json:"achieved"`
}
