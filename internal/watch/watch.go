package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dialloibra/microcredit/internal/config"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	scanLimit     = 1000
	poolSize      = 10
)

type Repo interface {
	FindOverdue(ctx context.Context, before time.Time, limit int) ([]domain.Credit, error)
}

// Notification is the webhook payload for one overdue credit.
type Notification struct {
	CreditID    int       `json:"credit_id"`
	UserID      int       `json:"user_id"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"due_date"`
	DaysOverdue int       `json:"days_overdue"`
}

// Service periodically scans for approved credits past their due date and
// posts a notification to the configured webhook. Without a webhook address
// the service stays idle.
type Service struct {
	url          string
	creditRepo   Repo
	client       clients.HTTPClientI
	notifierPool NotifierPoolI
	scanInterval time.Duration

	inflight sync.Map
	notified sync.Map
}

func New(cfg *config.Config, creditRepo Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:          cfg.OverdueWebhook,
		creditRepo:   creditRepo,
		client:       client,
		notifierPool: NewNotifierPool(poolSize),
		scanInterval: cfg.OverdueInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	if s.url == "" {
		zap.L().Info("Overdue watcher disabled, no webhook configured")
		return
	}
	zap.L().Info("Overdue watcher started",
		zap.String("webhook", s.url),
		zap.Duration("interval", s.scanInterval),
	)
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping overdue watcher")
			s.notifierPool.Close()
			return
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

func (s *Service) scan(ctx context.Context) {
	now := time.Now()
	credits, err := s.creditRepo.FindOverdue(ctx, now, scanLimit)
	if err != nil {
		zap.L().Error("Failed to fetch overdue credits", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, credit := range credits {
		credit := credit

		if _, done := s.notified.Load(credit.ID); done {
			continue
		}
		if _, loaded := s.inflight.LoadOrStore(credit.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.notifierPool.Submit(ctx, func() error {
				defer s.inflight.Delete(credit.ID)
				return s.notify(ctx, credit, now)
			})
			if err != nil {
				s.inflight.Delete(credit.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error notifying overdue credits", zap.Error(err))
	}
}

func (s *Service) notify(ctx context.Context, credit domain.Credit, now time.Time) error {
	if credit.DueDate == nil {
		return nil
	}

	payload := Notification{
		CreditID:    credit.ID,
		UserID:      credit.UserID,
		Amount:      credit.Amount,
		DueDate:     *credit.DueDate,
		DaysOverdue: int(now.Sub(*credit.DueDate).Hours() / 24),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification for credit %d: %w", credit.ID, err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, _, err := s.client.Post(s.url, headers, body)
		if err == nil && statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
			s.notified.Store(credit.ID, struct{}{})
			zap.L().Info("Overdue credit reported",
				zap.Int("creditID", credit.ID),
				zap.Int("daysOverdue", payload.DaysOverdue),
			)
			return nil
		}

		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to report credit %d after %d retries: %w", credit.ID, maxRetries, err)
		}
		return fmt.Errorf("webhook returned status %d for credit %d", statusCode, credit.ID)
	}
	return nil
}
