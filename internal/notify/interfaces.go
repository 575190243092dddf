// Package notify delivers best-effort email notifications about CRM events.
//
// Notifications are advisory. They must never influence the outcome of the
// operation that triggered them: a failed or slow delivery is logged and
// dropped, with at most one attempt per event.
package notify

import (
	"context"

	"github.com/apexglitch/crm/models"
)

// Notifier publishes a notification for a single CRM event. Implementations
// may deliver over email (Mailer), discard events (Nop), or decorate another
// Notifier (Dispatcher).
type Notifier interface {
	CustomerCreated(ctx context.Context, customer models.Customer) error
	DocumentUploaded(ctx context.Context, customer models.Customer, document models.Document) error
}
