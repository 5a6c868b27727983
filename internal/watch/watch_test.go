package watch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/dialloibra/microcredit/internal/config"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *clients.MockHTTPClientI) {
	cfg := &config.Config{
		OverdueWebhook:  "http://localhost:8081/hooks/overdue",
		OverdueInterval: 10 * time.Millisecond,
	}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creditRepo := NewMockRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, creditRepo, client)
	return service, creditRepo, client
}

func overdueCredit(id int, daysAgo int) domain.Credit {
	due := time.Now().AddDate(0, 0, -daysAgo)
	return domain.Credit{
		ID:      id,
		UserID:  1,
		Amount:  400000,
		Status:  domain.CreditStatusApproved,
		DueDate: &due,
	}
}

func TestService_Start(t *testing.T) {
	service, creditRepo, _ := NewMock(t)
	creditRepo.EXPECT().
		FindOverdue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()
}

func TestService_Start_Disabled(t *testing.T) {
	service, creditRepo, _ := NewMock(t)
	service.url = ""
	creditRepo.EXPECT().
		FindOverdue(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(50 * time.Millisecond)
}

func TestService_scan(t *testing.T) {
	tests := []struct {
		name            string
		credits         []domain.Credit
		findErr         error
		alreadyNotified []int
		submitErr       error
		expectedSubmits int
	}{
		{
			name:            "submits every overdue credit",
			credits:         []domain.Credit{overdueCredit(5, 10), overdueCredit(6, 3)},
			expectedSubmits: 2,
		},
		{
			name:    "fetch failure stops the tick",
			findErr: errors.New("database error"),
		},
		{
			name:            "already notified credits are skipped",
			credits:         []domain.Credit{overdueCredit(5, 10), overdueCredit(6, 3)},
			alreadyNotified: []int{5},
			expectedSubmits: 1,
		},
		{
			name:            "submit failure is reported",
			credits:         []domain.Credit{overdueCredit(5, 10)},
			submitErr:       errors.New("pool closed"),
			expectedSubmits: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			creditRepo := NewMockRepo(ctrl)
			notifierPool := NewMockNotifierPoolI(ctrl)

			creditRepo.EXPECT().
				FindOverdue(gomock.Any(), gomock.Any(), scanLimit).
				Return(tt.credits, tt.findErr).
				Times(1)
			notifierPool.EXPECT().
				Submit(gomock.Any(), gomock.Any()).
				Return(tt.submitErr).
				Times(tt.expectedSubmits)

			service := &Service{
				url:          "http://localhost:8081/hooks/overdue",
				creditRepo:   creditRepo,
				notifierPool: notifierPool,
			}
			for _, id := range tt.alreadyNotified {
				service.notified.Store(id, struct{}{})
			}

			zap.ReplaceGlobals(zap.NewExample())

			service.scan(context.Background())
		})
	}
}

func TestService_notify(t *testing.T) {
	t.Run("Webhook accepted the payload", func(t *testing.T) {
		service, _, client := NewMock(t)
		credit := overdueCredit(5, 10)
		now := time.Now()

		client.EXPECT().
			Post(service.url, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, headers http.Header, body []byte) (int, []byte, error) {
				assert.Equal(t, "application/json", headers.Get("Content-Type"))
				var payload Notification
				assert.NoError(t, json.Unmarshal(body, &payload))
				assert.Equal(t, 5, payload.CreditID)
				assert.Equal(t, 1, payload.UserID)
				assert.Equal(t, 400000.0, payload.Amount)
				assert.Equal(t, 10, payload.DaysOverdue)
				return http.StatusOK, nil, nil
			}).
			Times(1)

		err := service.notify(context.Background(), credit, now)
		assert.NoError(t, err)

		_, done := service.notified.Load(5)
		assert.True(t, done)
	})

	t.Run("Network failure after retries", func(t *testing.T) {
		service, _, client := NewMock(t)
		credit := overdueCredit(5, 10)

		client.EXPECT().
			Post(service.url, gomock.Any(), gomock.Any()).
			Return(0, nil, errors.New("connection refused")).
			Times(3)

		err := service.notify(context.Background(), credit, time.Now())
		assert.EqualError(t, err, "failed to report credit 5 after 3 retries: connection refused")
	})

	t.Run("Webhook keeps rejecting", func(t *testing.T) {
		service, _, client := NewMock(t)
		credit := overdueCredit(5, 10)

		client.EXPECT().
			Post(service.url, gomock.Any(), gomock.Any()).
			Return(http.StatusInternalServerError, nil, nil).
			Times(3)

		err := service.notify(context.Background(), credit, time.Now())
		assert.EqualError(t, err, "webhook returned status 500 for credit 5")
	})

	t.Run("Context canceled", func(t *testing.T) {
		service, _, _ := NewMock(t)
		credit := overdueCredit(5, 10)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := service.notify(ctx, credit, time.Now())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Missing due date is ignored", func(t *testing.T) {
		service, _, _ := NewMock(t)
		credit := overdueCredit(5, 10)
		credit.DueDate = nil

		err := service.notify(context.Background(), credit, time.Now())
		assert.NoError(t, err)
	})
}
