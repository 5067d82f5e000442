package checkin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/dto"
	"github.com/haruharu/groveback/internal/service/checkinservice"
	"github.com/haruharu/groveback/pkg/auth"
	"github.com/haruharu/groveback/pkg/utils"
)

type Service interface {
	Checkin(ctx context.Context, userID uuid.UUID, cardUID string) (*checkinservice.CheckinResult, error)
	CheckinStatus(ctx context.Context, userID uuid.UUID) (*checkinservice.CheckinStatus, error)
	RegisterCard(ctx context.Context, userID uuid.UUID, cardUID, cardName string) (*domain.NfcCard, error)
	LoginWithCard(ctx context.Context, cardUID string) (*checkinservice.CardLogin, error)
	ListCards(ctx context.Context, userID uuid.UUID) ([]domain.NfcCard, error)
	UpdateCard(ctx context.Context, userID, cardID uuid.UUID, cardName *string, isActive *bool) (*domain.NfcCard, error)
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error
}

type CheckinHandler struct {
	checkinService Service
}

func New(checkinService Service) *CheckinHandler {
	return &CheckinHandler{
		checkinService: checkinService,
	}
}

func toCardDTO(card *domain.NfcCard) dto.NfcCardResponseDTO {
	return dto.NfcCardResponseDTO{
		ID:            card.ID.String(),
		CardUID:       checkinservice.MaskCardUID(card.CardUID),
		CardName:      card.CardName,
		IsActive:      card.IsActive,
		LastUsedAt:    card.LastUsedAt,
		TotalTagCount: card.TotalTagCount,
		CreatedAt:     card.CreatedAt,
	}
}

func respondCheckinError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkinservice.ErrUserNotFound),
		errors.Is(err, checkinservice.ErrCardNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, checkinservice.ErrUserInactive),
		errors.Is(err, checkinservice.ErrCardInactive):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, checkinservice.ErrCardAlreadyRegistered),
		errors.Is(err, checkinservice.ErrCardOwnedByOther):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Checkin godoc
//
//	@Summary		Daily check-in
//	@Description	Record a check-in and grant the daily coin and XP reward. A repeat check-in on the same day succeeds without a second reward.
//	@Tags			Checkin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckinRequestDTO	false	"Optional card UID"
//	@Success		200		{object}	dto.CheckinResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Account or card deactivated"
//	@Failure		404		{object}	utils.Response	"User or card not found"
//	@Failure		429		{object}	utils.Response	"Too many requests"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/checkin [post]
func (h *CheckinHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.CheckinRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	result, err := h.checkinService.Checkin(r.Context(), userID, req.CardUID)
	if err != nil {
		respondCheckinError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckinResponseDTO{
		AlreadyCheckedIn: result.AlreadyCheckedIn,
		CoinsEarned:      result.CoinsEarned,
		XPEarned:         result.XPEarned,
		TotalTagCount:    result.TotalTagCount,
		Message:          result.Message,
	})
}

// GetStatus godoc
//
//	@Summary		Check-in status
//	@Description	Whether the authenticated user has checked in today, plus last card use
//	@Tags			Checkin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CheckinStatusResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/checkin/status [get]
func (h *CheckinHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	status, err := h.checkinService.CheckinStatus(r.Context(), userID)
	if err != nil {
		respondCheckinError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckinStatusResponseDTO{
		CheckedInToday: status.CheckedInToday,
		LastCheckinAt:  status.LastCheckinAt,
		TotalTagCount:  status.TotalTagCount,
	})
}

// LoginWithCard godoc
//
//	@Summary		Card login
//	@Description	Authenticate by NFC card UID. Counts as a check-in and grants the daily reward when due.
//	@Tags			Checkin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CardLoginRequestDTO	true	"Card UID"
//	@Success		200		{object}	dto.CardLoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Account or card deactivated"
//	@Failure		404		{object}	utils.Response	"Card not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/checkin/card-login [post]
func (h *CheckinHandler) LoginWithCard(w http.ResponseWriter, r *http.Request) {
	var req dto.CardLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CardUID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	login, err := h.checkinService.LoginWithCard(r.Context(), req.CardUID)
	if err != nil {
		respondCheckinError(w, err)
		return
	}
	w.Header().Set("Authorization", "Bearer "+login.Token)
	utils.RespondWithJSON(w, http.StatusOK, dto.CardLoginResponseDTO{
		Token: login.Token,
		User: dto.ProfileResponseDTO{
			ID:            login.User.ID.String(),
			MemberNumber:  login.User.MemberNumber,
			Email:         login.User.Email,
			Nickname:      login.User.Nickname,
			CoinBalance:   login.User.CoinBalance,
			XP:            login.User.XP,
			TotalTagCount: login.User.TotalTagCount,
			LastLoginAt:   login.User.LastLoginAt,
			CreatedAt:     login.User.CreatedAt,
		},
	})
}

// RegisterCard godoc
//
//	@Summary		Register an NFC card
//	@Description	Bind a card UID to the authenticated user
//	@Tags			Cards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterCardRequestDTO	true	"Card body"
//	@Success		200		{object}	dto.NfcCardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Card already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cards [post]
func (h *CheckinHandler) RegisterCard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.RegisterCardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CardUID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	card, err := h.checkinService.RegisterCard(r.Context(), userID, req.CardUID, req.CardName)
	if err != nil {
		respondCheckinError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCardDTO(card))
}

// ListCards godoc
//
//	@Summary		List NFC cards
//	@Description	List the authenticated user's registered cards with masked UIDs
//	@Tags			Cards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.NfcCardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cards [get]
func (h *CheckinHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	cards, err := h.checkinService.ListCards(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch cards")
		return
	}

	response := make([]dto.NfcCardResponseDTO, len(cards))
	for i := range cards {
		response[i] = toCardDTO(&cards[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateCard godoc
//
//	@Summary		Update an NFC card
//	@Description	Rename or activate/deactivate one of the authenticated user's cards
//	@Tags			Cards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			cardID	path		string					true	"Card ID"
//	@Param			request	body		dto.UpdateCardRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.NfcCardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Card not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cards/{cardID} [patch]
func (h *CheckinHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid card ID")
		return
	}

	var req dto.UpdateCardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	card, err := h.checkinService.UpdateCard(r.Context(), userID, cardID, req.CardName, req.IsActive)
	if err != nil {
		respondCheckinError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCardDTO(card))
}

// DeleteCard godoc
//
//	@Summary		Delete an NFC card
//	@Description	Remove one of the authenticated user's cards
//	@Tags			Cards
//	@Security		BearerAuth
//	@Param			cardID	path	string	true	"Card ID"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid card ID"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Card not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cards/{cardID} [delete]
func (h *CheckinHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid card ID")
		return
	}

	if err := h.checkinService.DeleteCard(r.Context(), userID, cardID); err != nil {
		respondCheckinError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
