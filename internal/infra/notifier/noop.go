package notifier

import (
	"context"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
)

// NoOpNotifier is a no-operation implementation of the Notifier interface.
// It is used when delivery is disabled to avoid nil checks in the code.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new NoOpNotifier instance.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// NotifyContact does nothing and returns nil immediately.
func (n *NoOpNotifier) NotifyContact(ctx context.Context, msg *entity.ContactMessage) error {
	return nil
}
