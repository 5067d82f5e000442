package dto

import "time"

type UpsertDailyLogRequestDTO struct {
	Date              string   `json:"date,omitempty" example:"2025-04-01"`
	Mood              string   `json:"mood" example:"sunny"`
	RoutineScore      int      `json:"routine_score" validate:"min=0,max=4" example:"3"`
	CompletedRoutines []string `json:"completed_routines" example:"stretch,water-plants"`
	Note              string   `json:"note,omitempty"`
}

type DailyLogResponseDTO struct {
	ID                string    `json:"id" example:"6f1d5bd5-9df3-4e3e-9a71-122b4a9f2f41"`
	Date              string    `json:"date" example:"2025-04-01"`
	Mood              string    `json:"mood" example:"sunny"`
	RoutineScore      int       `json:"routine_score" example:"3"`
	CompletedRoutines []string  `json:"completed_routines"`
	Note              string    `json:"note,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type RoutineCountDTO struct {
	RoutineID string `json:"routine_id" example:"stretch"`
	Count     int    `json:"count" example:"17"`
}

type DailyLogStatsResponseDTO struct {
	RoutineRanking  []RoutineCountDTO `json:"routine_ranking"`
	TotalExecutions int               `json:"total_executions" example:"53"`
	CurrentStreak   int               `json:"current_streak" example:"4"`
	LongestStreak   int               `json:"longest_streak" example:"11"`
	TotalDays       int               `json:"total_days" example:"38"`
}
