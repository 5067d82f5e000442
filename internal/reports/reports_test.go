package reports

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/haruharu/groveback/internal/config"
	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/service/reportservice"
	"github.com/haruharu/groveback/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *reportservice.MockRepo, *clients.MockHTTPClientI) {
	cfg := &config.Config{ReportAddress: "http://localhost:8081"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportRepo := reportservice.NewMockRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, reportRepo, client)
	return service, reportRepo, client
}

func pendingReport() domain.MonthlyReport {
	return domain.MonthlyReport{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Year:   2025,
		Month:  4,
		Status: domain.ReportStatusPending,
	}
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processReports_FindError(t *testing.T) {
	service, reportRepo, _ := NewMock(t)

	reportRepo.EXPECT().FindPending(gomock.Any(), uint32(1000)).Return(nil, assert.AnError)

	service.processReports(context.Background())
}

func TestService_handleReport(t *testing.T) {
	generateURL := "http://localhost:8081/api/reports/generate"

	t.Run("Ready result is persisted", func(t *testing.T) {
		service, reportRepo, client := NewMock(t)
		report := pendingReport()

		client.EXPECT().Post(generateURL, gomock.Any(), gomock.Any()).
			Return(http.StatusOK, []byte(`{"status":"READY","content":"april summary"}`), http.Header{}, nil)
		reportRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *domain.MonthlyReport) error {
				assert.Equal(t, report.ID, updated.ID)
				assert.Equal(t, domain.ReportStatusReady, updated.Status)
				assert.Equal(t, "april summary", updated.Content)
				return nil
			})

		err := service.handleReport(context.Background(), report)
		assert.NoError(t, err)
	})

	t.Run("Still rendering leaves the report pending", func(t *testing.T) {
		service, _, client := NewMock(t)
		report := pendingReport()

		client.EXPECT().Post(generateURL, gomock.Any(), gomock.Any()).
			Return(http.StatusOK, []byte(`{"status":"PENDING"}`), http.Header{}, nil)

		err := service.handleReport(context.Background(), report)
		assert.NoError(t, err)
	})

	t.Run("Generator rejection is persisted as failed", func(t *testing.T) {
		service, reportRepo, client := NewMock(t)
		report := pendingReport()

		client.EXPECT().Post(generateURL, gomock.Any(), gomock.Any()).
			Return(http.StatusOK, []byte(`{"status":"FAILED"}`), http.Header{}, nil)
		reportRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *domain.MonthlyReport) error {
				assert.Equal(t, domain.ReportStatusFailed, updated.Status)
				return nil
			})

		err := service.handleReport(context.Background(), report)
		assert.NoError(t, err)
	})

	t.Run("Unexpected status marks the report failed", func(t *testing.T) {
		service, reportRepo, client := NewMock(t)
		report := pendingReport()

		client.EXPECT().Post(generateURL, gomock.Any(), gomock.Any()).
			Return(http.StatusInternalServerError, nil, http.Header{}, nil)
		reportRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *domain.MonthlyReport) error {
				assert.Equal(t, domain.ReportStatusFailed, updated.Status)
				return nil
			})

		err := service.handleReport(context.Background(), report)
		assert.Error(t, err)
	})

	t.Run("Canceled context stops retries", func(t *testing.T) {
		service, _, _ := NewMock(t)
		report := pendingReport()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := service.handleReport(ctx, report)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestService_processReports_SkipsInFlight(t *testing.T) {
	service, reportRepo, client := NewMock(t)
	report := pendingReport()

	processingReports.Store(report.ID, struct{}{})
	defer processingReports.Delete(report.ID)

	reportRepo.EXPECT().FindPending(gomock.Any(), uint32(1000)).
		Return([]domain.MonthlyReport{report}, nil)
	client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	service.processReports(context.Background())
	service.workerPool.Close()
}
