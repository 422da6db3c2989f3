// Package contact handles contact form submissions: validation, an hourly
// submission cap, and fan-out delivery to the configured notifiers.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/dimipash/portfolio-api/internal/analytics"
	"github.com/dimipash/portfolio-api/internal/domain/entity"
	"github.com/dimipash/portfolio-api/internal/infra/notifier"
)

var (
	// ErrRateLimited indicates the hourly submission cap was reached.
	ErrRateLimited = errors.New("too many submissions, please try again later")

	// ErrDeliveryFailed indicates every configured notifier failed.
	ErrDeliveryFailed = errors.New("message delivery failed")
)

// DefaultHourlyLimit caps submissions per hour across all visitors.
const DefaultHourlyLimit = 5

// Service validates and delivers contact messages.
type Service struct {
	notifiers []notifier.Notifier
	limiter   *rate.Limiter
	tracker   *analytics.Tracker
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a contact service delivering to the given notifiers.
// hourlyLimit caps accepted submissions per hour; non-positive values fall
// back to DefaultHourlyLimit. tracker may be nil to disable analytics.
func NewService(notifiers []notifier.Notifier, hourlyLimit int, tracker *analytics.Tracker, logger *slog.Logger) *Service {
	if hourlyLimit <= 0 {
		hourlyLimit = DefaultHourlyLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		notifiers: notifiers,
		limiter:   rate.NewLimiter(rate.Every(time.Hour/time.Duration(hourlyLimit)), hourlyLimit),
		tracker:   tracker,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit validates the message, applies the hourly cap, and delivers it to
// every configured notifier concurrently. Delivery succeeds if at least one
// notifier accepts the message; only total failure is reported to the caller.
func (s *Service) Submit(ctx context.Context, msg *entity.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if msg.SubmittedAt.IsZero() {
		msg.SubmittedAt = s.now().UTC()
	}

	if !s.limiter.Allow() {
		s.logger.Warn("contact submission rate limited",
			slog.String("email", msg.Email))
		return ErrRateLimited
	}

	if len(s.notifiers) == 0 {
		s.logger.Info("contact submission accepted with no notifiers configured",
			slog.String("subject", msg.Subject))
		if s.tracker != nil {
			s.tracker.TrackContactSubmission()
		}
		return nil
	}

	var delivered int
	g, gctx := errgroup.WithContext(ctx)
	results := make([]error, len(s.notifiers))
	for i, n := range s.notifiers {
		g.Go(func() error {
			// Errors are collected, not returned, so one failing
			// notifier does not cancel the others.
			results[i] = n.NotifyContact(gctx, msg)
			return nil
		})
	}
	_ = g.Wait()

	var lastErr error
	for _, err := range results {
		if err != nil {
			lastErr = err
			continue
		}
		delivered++
	}

	if delivered == 0 {
		s.logger.Error("all contact notifiers failed",
			slog.String("subject", msg.Subject),
			slog.Any("error", lastErr))
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, lastErr)
	}

	if s.tracker != nil {
		s.tracker.TrackContactSubmission()
	}
	s.logger.Info("contact message delivered",
		slog.String("subject", msg.Subject),
		slog.Int("notifiers", delivered))
	return nil
}
