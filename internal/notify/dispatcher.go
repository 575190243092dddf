package notify

import (
	"context"
	"time"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/models"
)

// sendTimeout bounds a single delivery attempt. A hanging SMTP server must
// not pin goroutines indefinitely.
const sendTimeout = 30 * time.Second

// Dispatcher decorates a [Notifier] with fire-and-forget semantics. Each
// event is delivered in a detached goroutine: the triggering operation
// returns immediately, a panic or error in delivery is logged and dropped,
// and no event is ever retried.
type Dispatcher struct {
	notifier Notifier
	logger   *logger.Logger
}

func NewDispatcher(notifier Notifier, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		logger:   logger,
	}
}

// CustomerCreated delivers the event asynchronously. Always returns nil.
func (d *Dispatcher) CustomerCreated(ctx context.Context, customer models.Customer) error {
	d.dispatch("customer created", func(ctx context.Context) error {
		return d.notifier.CustomerCreated(ctx, customer)
	})
	return nil
}

// DocumentUploaded delivers the event asynchronously. Always returns nil.
func (d *Dispatcher) DocumentUploaded(ctx context.Context, customer models.Customer, document models.Document) error {
	d.dispatch("document uploaded", func(ctx context.Context) error {
		return d.notifier.DocumentUploaded(ctx, customer, document)
	})
	return nil
}

// dispatch runs send in its own goroutine with a fresh context, so delivery
// survives the completion of the request that triggered it.
func (d *Dispatcher) dispatch(event string, send func(ctx context.Context) error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.Warn().Str("event", event).Any("panic", r).Msg("notification delivery panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := send(ctx); err != nil {
			d.logger.Warn().Err(err).Str("event", event).Msg("notification delivery failed")
		}
	}()
}
