package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/haruharu/groveback/docs"
	"github.com/haruharu/groveback/internal/service"
	ratelimit "github.com/haruharu/groveback/pkg/middleware"
)

func TestNew(t *testing.T) {
	h := New(&service.Services{}, 60)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockCoinHandler := NewMockCoinHandler(ctrl)
	mockGrowthHandler := NewMockGrowthHandler(ctrl)
	mockLogHandler := NewMockLogHandler(ctrl)
	mockCheckinHandler := NewMockCheckinHandler(ctrl)
	mockProductHandler := NewMockProductHandler(ctrl)
	mockReportHandler := NewMockReportHandler(ctrl)
	mockTraitHandler := NewMockTraitHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockCheckinHandler.EXPECT().LoginWithCard(gomock.Any(), gomock.Any()).AnyTimes()
	mockProductHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		CoinHandler:    mockCoinHandler,
		GrowthHandler:  mockGrowthHandler,
		LogHandler:     mockLogHandler,
		CheckinHandler: mockCheckinHandler,
		ProductHandler: mockProductHandler,
		ReportHandler:  mockReportHandler,
		TraitHandler:   mockTraitHandler,

		rateLimiter: ratelimit.NewRateLimiter(60),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"POST", "/api/checkin/card-login", http.StatusOK},
		{"GET", "/api/auth/me", http.StatusUnauthorized},
		{"GET", "/api/coins/balance", http.StatusUnauthorized},
		{"GET", "/api/coins/history", http.StatusUnauthorized},
		{"GET", "/api/growth/tree", http.StatusUnauthorized},
		{"POST", "/api/growth/watering-can", http.StatusUnauthorized},
		{"POST", "/api/logs/", http.StatusUnauthorized},
		{"GET", "/api/logs/stats", http.StatusUnauthorized},
		{"POST", "/api/checkin/", http.StatusUnauthorized},
		{"GET", "/api/checkin/status", http.StatusUnauthorized},
		{"GET", "/api/cards/", http.StatusUnauthorized},
		{"GET", "/api/products/", http.StatusUnauthorized},
		{"GET", "/api/traits/", http.StatusUnauthorized},
		{"PUT", "/api/traits/", http.StatusUnauthorized},
		{"POST", "/api/reports/", http.StatusUnauthorized},
		{"GET", "/api/reports/2025/4", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
