package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/dto"
	"github.com/haruharu/groveback/internal/service/reportservice"
	"github.com/haruharu/groveback/pkg/auth"
	"github.com/haruharu/groveback/pkg/utils"
)

type Service interface {
	Request(ctx context.Context, userID uuid.UUID, year, month int) (*domain.MonthlyReport, error)
	Get(ctx context.Context, userID uuid.UUID, year, month int) (*domain.MonthlyReport, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func toReportDTO(report *domain.MonthlyReport) dto.ReportResponseDTO {
	return dto.ReportResponseDTO{
		ID:        report.ID.String(),
		Year:      report.Year,
		Month:     report.Month,
		Status:    report.Status,
		Content:   report.Content,
		CreatedAt: report.CreatedAt,
		UpdatedAt: report.UpdatedAt,
	}
}

// Request godoc
//
//	@Summary		Request a monthly report
//	@Description	Queue generation of a report for one month. Requesting an already queued month returns the existing report.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RequestReportRequestDTO	true	"Report month"
//	@Success		202		{object}	dto.ReportResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports [post]
func (h *ReportHandler) Request(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.RequestReportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	report, err := h.reportService.Request(r.Context(), userID, req.Year, req.Month)
	if err != nil {
		if errors.Is(err, reportservice.ErrInvalidMonth) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toReportDTO(report))
}

// Get godoc
//
//	@Summary		Get a monthly report
//	@Description	Retrieve the report for one month, with its content once READY
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			year	path		int	true	"Year"
//	@Param			month	path		int	true	"Month (1-12)"
//	@Success		200		{object}	dto.ReportResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid year or month"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Report not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/{year}/{month} [get]
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid year")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid month")
		return
	}

	report, err := h.reportService.Get(r.Context(), userID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, reportservice.ErrInvalidMonth):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, reportservice.ErrReportNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReportDTO(report))
}
