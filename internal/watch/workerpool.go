package watch

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type NotifierPoolI interface {
	Submit(ctx context.Context, job Job) error
	Close()
}

type Job func() error

// NotifierPool bounds how many overdue notifications are in flight at once so
// a slow webhook endpoint cannot pile up goroutines between scan ticks.
type NotifierPool struct {
	jobs      chan Job
	workers   sync.WaitGroup
	closeOnce sync.Once
}

func NewNotifierPool(size int) *NotifierPool {
	np := &NotifierPool{jobs: make(chan Job, size)}
	np.workers.Add(size)
	for i := 0; i < size; i++ {
		go np.worker()
	}
	return np
}

func (np *NotifierPool) worker() {
	defer np.workers.Done()
	for job := range np.jobs {
		if err := job(); err != nil {
			zap.L().Error("Overdue notification failed", zap.Error(err))
		}
	}
}

func (np *NotifierPool) Submit(ctx context.Context, job Job) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case np.jobs <- job:
		return nil
	}
}

// Close stops accepting jobs and blocks until every queued notification has
// been delivered or given up. Submit after Close is not allowed.
func (np *NotifierPool) Close() {
	np.closeOnce.Do(func() {
		close(np.jobs)
	})
	np.workers.Wait()
}
