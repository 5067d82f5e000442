package dto

type GrowthTreeResponseDTO struct {
	CurrentXP       int64  `json:"current_xp" example:"345"`
	Coins           int64  `json:"coins" example:"120"`
	Level           int    `json:"level" example:"4"`
	XPToNextLevel   int64  `json:"xp_to_next_level" example:"155"`
	ProgressPercent int    `json:"progress_percent" example:"63"`
	TreeStage       int    `json:"tree_stage" example:"4"`
	TreeStageName   string `json:"tree_stage_name" example:"Branches are spreading out!"`
	TotalCheckins   int64  `json:"total_checkins" example:"42"`
	MonthlyCheckins int64  `json:"monthly_checkins" example:"12"`
	CheckedInToday  bool   `json:"checked_in_today" example:"true"`
}

type WateringCanResponseDTO struct {
	Success    bool   `json:"success" example:"true"`
	Message    string `json:"message"`
	XPGained   int64  `json:"xp_gained" example:"30"`
	NewTotalXP int64  `json:"new_total_xp" example:"375"`
	NewLevel   int    `json:"new_level" example:"4"`
}
