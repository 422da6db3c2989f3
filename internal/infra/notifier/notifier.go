// Package notifier delivers contact form submissions to the portfolio owner.
// It defines the Notifier interface so different delivery mechanisms (SMTP,
// chat webhooks) can be used interchangeably through dependency injection,
// plus a no-op implementation for when delivery is disabled.
package notifier

import (
	"context"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
)

// Notifier delivers a contact message to the owner.
// Implementations handle rate limiting, retries, and error logging
// internally and must respect context cancellation.
type Notifier interface {
	// NotifyContact delivers a validated contact message. It returns a
	// non-nil error only after all internal retry attempts are exhausted.
	NotifyContact(ctx context.Context, msg *entity.ContactMessage) error
}
