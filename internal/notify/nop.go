package notify

import (
	"context"

	"github.com/apexglitch/crm/models"
)

// Nop is a [Notifier] that discards every event. Used when mail delivery is
// disabled in the configuration.
type Nop struct {
}

func NewNop() *Nop {
	return &Nop{}
}

func (n *Nop) CustomerCreated(ctx context.Context, customer models.Customer) error {
	return nil
}

func (n *Nop) DocumentUploaded(ctx context.Context, customer models.Customer, document models.Document) error {
	return nil
}
