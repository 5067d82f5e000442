package dto

import "time"

type CheckinRequestDTO struct {
	CardUID string `json:"card_uid,omitempty" example:"04:A3:22:F1:80:00:01"`
}

type CheckinResponseDTO struct {
	AlreadyCheckedIn bool   `json:"already_checked_in" example:"false"`
	CoinsEarned      int64  `json:"coins_earned" example:"15"`
	XPEarned         int64  `json:"xp_earned" example:"15"`
	TotalTagCount    int64  `json:"total_tag_count" example:"43"`
	Message          string `json:"message"`
}

type CheckinStatusResponseDTO struct {
	CheckedInToday bool       `json:"checked_in_today" example:"true"`
	LastCheckinAt  *time.Time `json:"last_checkin_at,omitempty"`
	TotalTagCount  int64      `json:"total_tag_count" example:"43"`
}

type RegisterCardRequestDTO struct {
	CardUID  string `json:"card_uid" validate:"required" example:"04:A3:22:F1:80:00:01"`
	CardName string `json:"card_name" example:"entrance sticker"`
}

type CardLoginRequestDTO struct {
	CardUID string `json:"card_uid" validate:"required" example:"04:A3:22:F1:80:00:01"`
}

type CardLoginResponseDTO struct {
	Token string             `json:"token"`
	User  ProfileResponseDTO `json:"user"`
}

type NfcCardResponseDTO struct {
	ID            string     `json:"id" example:"6f1d5bd5-9df3-4e3e-9a71-122b4a9f2f41"`
	CardUID       string     `json:"card_uid" example:"04A3****01"`
	CardName      string     `json:"card_name" example:"entrance sticker"`
	IsActive      bool       `json:"is_active" example:"true"`
	LastUsedAt    *time.Time `json:"last_used_at,omitempty"`
	TotalTagCount int64      `json:"total_tag_count" example:"27"`
	CreatedAt     time.Time  `json:"created_at"`
}

type UpdateCardRequestDTO struct {
	CardName *string `json:"card_name,omitempty" example:"desk sticker"`
	IsActive *bool   `json:"is_active,omitempty" example:"false"`
}
