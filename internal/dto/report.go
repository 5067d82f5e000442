package dto

import "time"

type RequestReportRequestDTO struct {
	Year  int `json:"year" validate:"required" example:"2025"`
	Month int `json:"month" validate:"required,min=1,max=12" example:"4"`
}

type ReportResponseDTO struct {
	ID        string    `json:"id" example:"6f1d5bd5-9df3-4e3e-9a71-122b4a9f2f41"`
	Year      int       `json:"year" example:"2025"`
	Month     int       `json:"month" example:"4"`
	Status    string    `json:"status" example:"READY"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
