package growth

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/haruharu/groveback/internal/dto"
	"github.com/haruharu/groveback/internal/service/growthservice"
	"github.com/haruharu/groveback/pkg/auth"
	"github.com/haruharu/groveback/pkg/utils"
)

type Service interface {
	GetGrowthTree(ctx context.Context, userID uuid.UUID) (*growthservice.GrowthTree, error)
	PurchaseWateringCan(ctx context.Context, userID uuid.UUID) (*growthservice.WateringCanResult, error)
}

type GrowthHandler struct {
	growthService Service
}

func New(growthService Service) *GrowthHandler {
	return &GrowthHandler{
		growthService: growthService,
	}
}

// GetGrowthTree godoc
//
//	@Summary		Get growth tree
//	@Description	Retrieve the authenticated user's tree stage, level, XP progress and check-in statistics
//	@Tags			Growth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.GrowthTreeResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/growth/tree [get]
func (h *GrowthHandler) GetGrowthTree(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	tree, err := h.growthService.GetGrowthTree(r.Context(), userID)
	if err != nil {
		if errors.Is(err, growthservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GrowthTreeResponseDTO{
		CurrentXP:       tree.CurrentXP,
		Coins:           tree.Coins,
		Level:           tree.Level,
		XPToNextLevel:   tree.XPToNextLevel,
		ProgressPercent: tree.ProgressPercent,
		TreeStage:       tree.TreeStage,
		TreeStageName:   tree.TreeStageName,
		TotalCheckins:   tree.TotalCheckins,
		MonthlyCheckins: tree.MonthlyCheckins,
		CheckedInToday:  tree.CheckedInToday,
	})
}

// PurchaseWateringCan godoc
//
//	@Summary		Buy a watering can
//	@Description	Spend coins on a watering can for bonus XP. An insufficient balance is reported in the body, not as an HTTP error.
//	@Tags			Growth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WateringCanResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/growth/watering-can [post]
func (h *GrowthHandler) PurchaseWateringCan(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	result, err := h.growthService.PurchaseWateringCan(r.Context(), userID)
	if err != nil {
		if errors.Is(err, growthservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WateringCanResponseDTO{
		Success:    result.Success,
		Message:    result.Message,
		XPGained:   result.XPGained,
		NewTotalXP: result.NewTotalXP,
		NewLevel:   result.NewLevel,
	})
}
