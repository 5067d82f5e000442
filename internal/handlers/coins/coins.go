package coins

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/dto"
	"github.com/haruharu/groveback/internal/service/ledgerservice"
	"github.com/haruharu/groveback/pkg/auth"
	"github.com/haruharu/groveback/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, error)
	GetHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, error)
}

type CoinHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *CoinHandler {
	return &CoinHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get coin balance
//	@Description	Retrieve the authenticated user's current coin balance
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/balance [get]
func (h *CoinHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance})
}

// GetHistory godoc
//
//	@Summary		Get coin history
//	@Description	List ledger entries for the authenticated user, newest first
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 20, max 100)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.CoinHistoryEntryDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/history [get]
func (h *CoinHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	entries, err := h.ledgerService.GetHistory(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	response := make([]dto.CoinHistoryEntryDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.CoinHistoryEntryDTO{
			ID:           entry.ID.String(),
			Kind:         string(entry.Kind),
			Amount:       entry.Amount,
			BalanceAfter: entry.BalanceAfter,
			Description:  entry.Description,
			CreatedAt:    entry.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
