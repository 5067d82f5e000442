package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/haruharu/groveback/internal/config"
	"github.com/haruharu/groveback/internal/domain"
	"github.com/haruharu/groveback/internal/metrics"
	"github.com/haruharu/groveback/internal/service/reportservice"
	"github.com/haruharu/groveback/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingReports sync.Map

type generateRequest struct {
	UserID string `json:"user_id"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

type generateResponse struct {
	Status  string `json:"status"`
	Content string `json:"content,omitempty"`
}

// Service polls for pending monthly reports and asks the external report
// generator to render them.
type Service struct {
	url            string
	reportRepo     reportservice.Repo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, reportRepo reportservice.Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.ReportAddress,
		reportRepo:     reportRepo,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Report service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping report service")
			return
		case <-ticker.C:
			s.processReports(ctx)
		}
	}
}

func (s *Service) processReports(ctx context.Context) {
	pending, err := s.reportRepo.FindPending(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pending reports", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, report := range pending {
		report := report

		if _, loaded := processingReports.LoadOrStore(report.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingReports.Delete(report.ID)
				return s.handleReport(ctx, report)
			})
			if err != nil {
				processingReports.Delete(report.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing reports", zap.Error(err))
	}
}

func (s *Service) handleReport(ctx context.Context, report domain.MonthlyReport) error {
	url := s.url + "/api/reports/generate"
	body, err := json.Marshal(generateRequest{
		UserID: report.UserID.String(),
		Year:   report.Year,
		Month:  report.Month,
	})
	if err != nil {
		return fmt.Errorf("failed to encode report request: %w", err)
	}

	headers := http.Header{"Content-Type": []string{"application/json"}}

	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Post(url, headers, body)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return s.markFailed(ctx, report, fmt.Errorf("failed to generate report %s after %d retries: %w", report.ID, maxRetries, err))
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				s.waitRateLimit(report, respHeaders, attempt)
				continue

			case http.StatusNoContent:
				zap.L().Warn("Report generator has no data yet, retrying",
					zap.String("reportID", report.ID.String()), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return s.markFailed(ctx, report, fmt.Errorf("no data for report %s after %d retries", report.ID, maxRetries))

			case http.StatusOK:
				return s.applyResult(ctx, report, respBody)

			default:
				zap.L().Error("Unexpected status code from report generator",
					zap.Int("status", statusCode), zap.String("reportID", report.ID.String()))
				return s.markFailed(ctx, report, errors.New("unexpected status code"))
			}
		}
	}
	return nil
}

func (s *Service) applyResult(ctx context.Context, report domain.MonthlyReport, respBody []byte) error {
	var response generateResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse generator response: %w", err)
	}

	switch response.Status {
	case domain.ReportStatusReady:
		report.Status = domain.ReportStatusReady
		report.Content = response.Content
		metrics.ReportsGeneratedTotal.Inc()
	case domain.ReportStatusPending:
		zap.L().Info("Report still rendering", zap.String("reportID", report.ID.String()))
		return nil
	case domain.ReportStatusFailed:
		report.Status = domain.ReportStatusFailed
		zap.L().Info("Generator rejected report", zap.String("reportID", report.ID.String()))
	default:
		zap.L().Warn("Unrecognized generator status",
			zap.String("reportID", report.ID.String()), zap.String("status", response.Status))
		return nil
	}

	if err := s.reportRepo.Update(ctx, &report); err != nil {
		return fmt.Errorf("failed to update report in repo: %w", err)
	}
	return nil
}

func (s *Service) markFailed(ctx context.Context, report domain.MonthlyReport, cause error) error {
	report.Status = domain.ReportStatusFailed
	if err := s.reportRepo.Update(ctx, &report); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func (s *Service) waitRateLimit(report domain.MonthlyReport, respHeaders http.Header, attempt int) {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit from report generator, retrying",
		zap.String("reportID", report.ID.String()),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
}
