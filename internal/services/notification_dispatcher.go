package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const notifyTimeout = 10 * time.Second

// NotificationDispatcher runs best-effort notifications after the primary
// write has committed. Results are logged and never reach the caller.
type NotificationDispatcher struct {
	log     *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewNotificationDispatcher(log *zap.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{log: log.Named("notify"), timeout: notifyTimeout}
}

// Dispatch runs send in the background. The context keeps the request's
// values (trace id) but not its cancellation.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, event string, send func(context.Context) (MailStatus, error)) {
	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				d.log.Error("notification panicked", zap.String("event", event), zap.Any("panic", r))
			}
		}()

		status, err := send(ctx)
		if err != nil {
			d.log.Warn("notification failed", zap.String("event", event), zap.Error(err))
			return
		}
		d.log.Debug("notification handled", zap.String("event", event), zap.String("status", string(status)))
	}()
}

// Wait blocks until in-flight notifications finish or ctx is done.
func (d *NotificationDispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
