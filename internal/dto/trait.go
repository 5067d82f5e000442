package dto

import "time"

type UpdateTraitScoreRequestDTO struct {
	Attention   *int `json:"attention,omitempty" validate:"min=0,max=100" example:"75"`
	Impulsive   *int `json:"impulsive,omitempty" validate:"min=0,max=100" example:"60"`
	Complex     *int `json:"complex,omitempty" validate:"min=0,max=100" example:"45"`
	Emotional   *int `json:"emotional,omitempty" validate:"min=0,max=100" example:"80"`
	Motivation  *int `json:"motivation,omitempty" validate:"min=0,max=100" example:"55"`
	Environment *int `json:"environment,omitempty" validate:"min=0,max=100" example:"70"`
}

type TraitScoreResponseDTO struct {
	Attention   int       `json:"attention" example:"75"`
	Impulsive   int       `json:"impulsive" example:"60"`
	Complex     int       `json:"complex" example:"45"`
	Emotional   int       `json:"emotional" example:"80"`
	Motivation  int       `json:"motivation" example:"55"`
	Environment int       `json:"environment" example:"70"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TraitScoreEnvelopeDTO struct {
	TraitScore *TraitScoreResponseDTO `json:"trait_score"`
}
