package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
	"github.com/dimipash/portfolio-api/internal/resilience/circuitbreaker"
)

// WebhookConfig contains configuration for chat webhook notifications.
type WebhookConfig struct {
	// Enabled indicates whether webhook notifications are enabled
	Enabled bool

	// URL is the webhook endpoint (includes authentication token)
	URL string

	// Timeout is the HTTP request timeout for webhook calls
	Timeout time.Duration
}

// WebhookNotifier posts contact messages to a chat webhook so the owner sees
// new submissions immediately. The payload uses the Discord embed format.
type WebhookNotifier struct {
	config      WebhookConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
	breaker     *circuitbreaker.CircuitBreaker
}

// NewWebhookNotifier creates a WebhookNotifier with the given configuration.
// The rate limiter is set to 0.5 requests/second with a burst of 3, matching
// the common webhook limit of 30 requests per minute.
func NewWebhookNotifier(config WebhookConfig) *WebhookNotifier {
	return &WebhookNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: NewRateLimiter(0.5, 3),
		breaker:     circuitbreaker.New(circuitbreaker.WebhookConfig()),
	}
}

// webhookPayload is the JSON body posted to the webhook.
type webhookPayload struct {
	Embeds []webhookEmbed `json:"embeds"`
}

type webhookEmbed struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Color       int                `json:"color"`
	Footer      webhookEmbedFooter `json:"footer"`
	Timestamp   string             `json:"timestamp"`
}

type webhookEmbedFooter struct {
	Text string `json:"text"`
}

// webhookErrorResponse is the error body returned by the webhook service.
type webhookErrorResponse struct {
	Message    string  `json:"message"`
	Code       int     `json:"code"`
	RetryAfter float64 `json:"retry_after"` // In seconds
}

const (
	// Embed limits imposed by the webhook service
	maxEmbedTitleLength       = 256
	maxEmbedDescriptionLength = 4096
	truncationSuffix          = "..."

	// Green accent for new contact submissions
	contactEmbedColor = 0x00FF7F
)

// buildEmbedPayload creates a webhook payload from a contact message.
// The subject becomes the embed title, the body the description, and the
// sender's name and address go in the footer.
func (w *WebhookNotifier) buildEmbedPayload(msg *entity.ContactMessage) webhookPayload {
	title := truncateText("Contact: "+msg.Subject, maxEmbedTitleLength, truncationSuffix)
	description := truncateText(msg.Body, maxEmbedDescriptionLength, truncationSuffix)

	submittedAt := msg.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now().UTC()
	}

	embed := webhookEmbed{
		Title:       title,
		Description: description,
		Color:       contactEmbedColor,
		Footer: webhookEmbedFooter{
			Text: fmt.Sprintf("%s <%s>", msg.Name, msg.Email),
		},
		Timestamp: submittedAt.Format(time.RFC3339),
	}

	return webhookPayload{
		Embeds: []webhookEmbed{embed},
	}
}

// sendWebhookRequest posts a single webhook request.
//
// Error types:
//   - 429: RateLimitError (retryable, carries retry_after)
//   - 4xx (non-429): ClientError (non-retryable)
//   - 5xx: ServerError (retryable)
//   - Network error: retryable
func (w *WebhookNotifier) sendWebhookRequest(ctx context.Context, msg *entity.ContactMessage) error {
	payload := w.buildEmbedPayload(msg)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.config.URL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{
			Message:    "webhook rate limit exceeded",
			RetryAfter: extractRetryAfter(resp, body),
		}
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return &ClientError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("webhook client error: %s", string(body)),
		}
	}

	if resp.StatusCode >= 500 {
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("webhook server error: %s", string(body)),
		}
	}

	return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
}

// extractRetryAfter reads retry_after from the error body, falling back to
// the Retry-After header, then to a 5 second default.
func extractRetryAfter(resp *http.Response, body []byte) time.Duration {
	var webhookErr webhookErrorResponse
	if err := json.Unmarshal(body, &webhookErr); err == nil && webhookErr.RetryAfter > 0 {
		return time.Duration(webhookErr.RetryAfter * float64(time.Second))
	}

	if retryAfterHeader := resp.Header.Get("Retry-After"); retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}

	return 5 * time.Second
}

// sendWithRetry posts the webhook request with retry logic.
//
// Retry strategy:
//   - Max attempts: 2
//   - 429 errors: sleep for retry_after from the response
//   - Server errors (5xx): linear backoff (5s, 10s)
//   - Client errors (4xx): fail immediately
func (w *WebhookNotifier) sendWithRetry(ctx context.Context, msg *entity.ContactMessage) error {
	const (
		maxAttempts = 2
		baseDelay   = 5 * time.Second
	)

	requestID, _ := ctx.Value(requestIDKey).(string)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		_, err := w.breaker.Execute(func() (interface{}, error) {
			return nil, w.sendWebhookRequest(ctx, msg)
		})

		if err == nil {
			slog.Info("contact webhook delivered",
				slog.String("request_id", requestID),
				slog.String("subject", msg.Subject),
				slog.Int("attempt", attempt))
			return nil
		}

		lastErr = err

		if rateLimitErr, ok := is429Error(err); ok {
			slog.Warn("contact webhook rate limited, backing off",
				slog.String("request_id", requestID),
				slog.Duration("retry_after", rateLimitErr.RetryAfter),
				slog.Int("attempt", attempt))

			select {
			case <-time.After(rateLimitErr.RetryAfter):
				continue
			case <-ctx.Done():
				return fmt.Errorf("context canceled during rate limit backoff: %w", ctx.Err())
			}
		}

		if !isRetryableError(err) {
			slog.Error("contact webhook failed with non-retryable error",
				slog.String("request_id", requestID),
				slog.Any("error", err),
				slog.Int("attempt", attempt))
			return err
		}

		if attempt < maxAttempts {
			delay := baseDelay * time.Duration(attempt)
			slog.Warn("contact webhook failed, retrying",
				slog.String("request_id", requestID),
				slog.Any("error", err),
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay))

			select {
			case <-time.After(delay):
				continue
			case <-ctx.Done():
				return fmt.Errorf("context canceled during retry backoff: %w", ctx.Err())
			}
		}
	}

	slog.Error("contact webhook failed after all retries",
		slog.String("request_id", requestID),
		slog.Any("error", lastErr),
		slog.Int("max_attempts", maxAttempts))

	return fmt.Errorf("webhook notification failed after %d attempts: %w", maxAttempts, lastErr)
}

// NotifyContact delivers a contact message through the webhook.
// It generates a request ID for tracing, applies rate limiting, then posts
// with retry. Implements the Notifier interface.
func (w *WebhookNotifier) NotifyContact(ctx context.Context, msg *entity.ContactMessage) error {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	slog.Info("delivering contact webhook",
		slog.String("request_id", requestID),
		slog.String("subject", msg.Subject))

	if err := w.rateLimiter.Allow(ctx); err != nil {
		slog.Error("contact webhook rate limiter error",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return fmt.Errorf("rate limiter error: %w", err)
	}

	return w.sendWithRetry(ctx, msg)
}
