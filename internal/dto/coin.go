package dto

import "time"

type BalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"120"`
}

type CoinHistoryEntryDTO struct {
	ID           string    `json:"id" example:"6f1d5bd5-9df3-4e3e-9a71-122b4a9f2f41"`
	Kind         string    `json:"kind" example:"EARN"`
	Amount       int64     `json:"amount" example:"15"`
	BalanceAfter int64     `json:"balance_after" example:"135"`
	Description  string    `json:"description" example:"daily check-in reward"`
	CreatedAt    time.Time `json:"created_at"`
}
