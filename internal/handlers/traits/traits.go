package traits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/dto"
	"github.com/haruharu/groveback/internal/service/traitservice"
	"github.com/haruharu/groveback/pkg/auth"
	"github.com/haruharu/groveback/pkg/utils"
)

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.TraitScore, error)
	Upsert(ctx context.Context, userID uuid.UUID, update traitservice.Update) (*domain.TraitScore, error)
}

type TraitHandler struct {
	traitService Service
}

func New(traitService Service) *TraitHandler {
	return &TraitHandler{
		traitService: traitService,
	}
}

func toTraitScoreDTO(score *domain.TraitScore) dto.TraitScoreEnvelopeDTO {
	if score == nil {
		return dto.TraitScoreEnvelopeDTO{}
	}
	return dto.TraitScoreEnvelopeDTO{
		TraitScore: &dto.TraitScoreResponseDTO{
			Attention:   score.Attention,
			Impulsive:   score.Impulsive,
			Complex:     score.Complex,
			Emotional:   score.Emotional,
			Motivation:  score.Motivation,
			Environment: score.Environment,
			UpdatedAt:   score.UpdatedAt,
		},
	}
}

// Get godoc
//
//	@Summary		Get my trait profile
//	@Description	Retrieve the self-assessed trait scores. trait_score is null until the first submission.
//	@Tags			Traits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TraitScoreEnvelopeDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/traits [get]
func (h *TraitHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	score, err := h.traitService.Get(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTraitScoreDTO(score))
}

// Upsert godoc
//
//	@Summary		Save my trait profile
//	@Description	Create or update trait scores. Omitted dimensions keep their stored value.
//	@Tags			Traits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateTraitScoreRequestDTO	true	"Trait scores (0-100 each)"
//	@Success		200		{object}	dto.TraitScoreEnvelopeDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/traits [put]
func (h *TraitHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.UpdateTraitScoreRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	score, err := h.traitService.Upsert(r.Context(), userID, traitservice.Update{
		Attention:   req.Attention,
		Impulsive:   req.Impulsive,
		Complex:     req.Complex,
		Emotional:   req.Emotional,
		Motivation:  req.Motivation,
		Environment: req.Environment,
	})
	if err != nil {
		if errors.Is(err, traitservice.ErrInvalidTraitScore) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTraitScoreDTO(score))
}
