package dto

import "time"

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"haru@example.com"`
	Password string `json:"password" validate:"required,min=8"`
	Nickname string `json:"nickname" validate:"required,min=1,max=50" example:"Haru"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"haru@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}

type ProfileResponseDTO struct {
	ID            string     `json:"id" example:"6f1d5bd5-9df3-4e3e-9a71-122b4a9f2f41"`
	MemberNumber  string     `json:"member_number" example:"79927398713"`
	Email         string     `json:"email" example:"haru@example.com"`
	Nickname      string     `json:"nickname" example:"Haru"`
	CoinBalance   int64      `json:"coin_balance" example:"120"`
	XP            int64      `json:"xp" example:"345"`
	TotalTagCount int64      `json:"total_tag_count" example:"42"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type UpdateProfileRequestDTO struct {
	Nickname string `json:"nickname" validate:"required,min=1,max=50" example:"Haru"`
}
