package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
)

func testMessage() *entity.ContactMessage {
	return &entity.ContactMessage{
		Name:        "Jane Visitor",
		Email:       "jane@example.com",
		Subject:     "Collaboration inquiry",
		Body:        "Hi, I saw your portfolio and would like to talk.",
		SubmittedAt: time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC),
	}
}

func newTestWebhookNotifier(url string) *WebhookNotifier {
	return NewWebhookNotifier(WebhookConfig{
		Enabled: true,
		URL:     url,
		Timeout: 2 * time.Second,
	})
}

func TestWebhookNotifier_Delivers(t *testing.T) {
	var got webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := newTestWebhookNotifier(server.URL)
	err := n.NotifyContact(context.Background(), testMessage())
	require.NoError(t, err)

	require.Len(t, got.Embeds, 1)
	embed := got.Embeds[0]
	assert.Equal(t, "Contact: Collaboration inquiry", embed.Title)
	assert.Equal(t, "Hi, I saw your portfolio and would like to talk.", embed.Description)
	assert.Equal(t, "Jane Visitor <jane@example.com>", embed.Footer.Text)
	assert.Equal(t, "2025-07-01T09:30:00Z", embed.Timestamp)
}

func TestWebhookNotifier_ClientErrorNoRetry(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "invalid payload", "code": 50006}`))
	}))
	defer server.Close()

	n := newTestWebhookNotifier(server.URL)
	err := n.NotifyContact(context.Background(), testMessage())

	require.Error(t, err)
	var clientErr *ClientError
	assert.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	assert.Equal(t, 1, attempts, "4xx responses must not be retried")
}

func TestSendWebhookRequest_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		checkError func(t *testing.T, err error)
	}{
		{
			name:   "429 yields RateLimitError with retry_after",
			status: http.StatusTooManyRequests,
			body:   `{"message": "rate limited", "retry_after": 2.5}`,
			checkError: func(t *testing.T, err error) {
				var rlErr *RateLimitError
				require.ErrorAs(t, err, &rlErr)
				assert.Equal(t, 2500*time.Millisecond, rlErr.RetryAfter)
			},
		},
		{
			name:   "404 yields ClientError",
			status: http.StatusNotFound,
			body:   `{"message": "unknown webhook"}`,
			checkError: func(t *testing.T, err error) {
				var clientErr *ClientError
				require.ErrorAs(t, err, &clientErr)
				assert.False(t, isRetryableError(err))
			},
		},
		{
			name:   "503 yields ServerError",
			status: http.StatusServiceUnavailable,
			body:   "upstream down",
			checkError: func(t *testing.T, err error) {
				var serverErr *ServerError
				require.ErrorAs(t, err, &serverErr)
				assert.True(t, isRetryableError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			n := newTestWebhookNotifier(server.URL)
			err := n.sendWebhookRequest(context.Background(), testMessage())
			require.Error(t, err)
			tt.checkError(t, err)
		})
	}
}

func TestBuildEmbedPayload_Truncation(t *testing.T) {
	n := newTestWebhookNotifier("http://example.invalid")

	msg := testMessage()
	msg.Subject = strings.Repeat("s", 400)
	msg.Body = strings.Repeat("b", 5000)

	payload := n.buildEmbedPayload(msg)
	require.Len(t, payload.Embeds, 1)

	assert.Len(t, payload.Embeds[0].Title, maxEmbedTitleLength)
	assert.True(t, strings.HasSuffix(payload.Embeds[0].Title, truncationSuffix))
	assert.Len(t, payload.Embeds[0].Description, maxEmbedDescriptionLength)
	assert.True(t, strings.HasSuffix(payload.Embeds[0].Description, truncationSuffix))
}

func TestExtractRetryAfter_HeaderFallback(t *testing.T) {
	resp := &http.Response{Header: http.Header{"Retry-After": []string{"7"}}}
	assert.Equal(t, 7*time.Second, extractRetryAfter(resp, []byte("not json")))

	resp = &http.Response{Header: http.Header{}}
	assert.Equal(t, 5*time.Second, extractRetryAfter(resp, nil))
}
