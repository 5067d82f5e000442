package logs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/dto"
	"github.com/haruharu/groveback/internal/service/dailylogservice"
	"github.com/haruharu/groveback/pkg/auth"
	"github.com/haruharu/groveback/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	Upsert(ctx context.Context, userID uuid.UUID, log *domain.DailyLog) (*domain.DailyLog, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyLog, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.DailyLog, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*dailylogservice.Stats, error)
}

type LogHandler struct {
	logService Service
}

func New(logService Service) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

func toLogDTO(log *domain.DailyLog) dto.DailyLogResponseDTO {
	return dto.DailyLogResponseDTO{
		ID:                log.ID.String(),
		Date:              log.Date.Format(dateLayout),
		Mood:              log.Mood,
		RoutineScore:      log.RoutineScore,
		CompletedRoutines: log.CompletedRoutines,
		Note:              log.Note,
		CreatedAt:         log.CreatedAt,
		UpdatedAt:         log.UpdatedAt,
	}
}

// Upsert godoc
//
//	@Summary		Save a daily log
//	@Description	Create or replace the log record for one calendar date. An omitted date means today.
//	@Tags			DailyLogs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpsertDailyLogRequestDTO	true	"Daily log body"
//	@Success		200		{object}	dto.DailyLogResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/logs [post]
func (h *LogHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.UpsertDailyLogRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	saved, err := h.logService.Upsert(r.Context(), userID, &domain.DailyLog{
		Date:              date,
		Mood:              req.Mood,
		RoutineScore:      req.RoutineScore,
		CompletedRoutines: req.CompletedRoutines,
		Note:              req.Note,
	})
	if err != nil {
		if errors.Is(err, dailylogservice.ErrInvalidRoutineScore) ||
			errors.Is(err, dailylogservice.ErrFutureDate) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLogDTO(saved))
}

// GetByDate godoc
//
//	@Summary		Get a daily log
//	@Description	Retrieve one log record by its calendar date
//	@Tags			DailyLogs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	path		string	true	"Date in YYYY-MM-DD"
//	@Success		200		{object}	dto.DailyLogResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Log not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/logs/{date} [get]
func (h *LogHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	date, err := time.Parse(dateLayout, chi.URLParam(r, "date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	log, err := h.logService.GetByDate(r.Context(), userID, date)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if log == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Log not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLogDTO(log))
}

// List godoc
//
//	@Summary		List daily logs
//	@Description	List the authenticated user's log records, newest first
//	@Tags			DailyLogs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 30, max 100)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.DailyLogResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/logs [get]
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	logs, err := h.logService.List(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}

	response := make([]dto.DailyLogResponseDTO, len(logs))
	for i := range logs {
		response[i] = toLogDTO(&logs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStats godoc
//
//	@Summary		Get daily log statistics
//	@Description	Aggregate routine ranking, execution totals and streaks over the user's whole history
//	@Tags			DailyLogs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DailyLogStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/logs/stats [get]
func (h *LogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	stats, err := h.logService.GetStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	ranking := make([]dto.RoutineCountDTO, len(stats.RoutineRanking))
	for i, rc := range stats.RoutineRanking {
		ranking[i] = dto.RoutineCountDTO{RoutineID: rc.RoutineID, Count: rc.Count}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DailyLogStatsResponseDTO{
		RoutineRanking:  ranking,
		TotalExecutions: stats.TotalExecutions,
		CurrentStreak:   stats.CurrentStreak,
		LongestStreak:   stats.LongestStreak,
		TotalDays:       stats.TotalDays,
	})
}
