package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimipash/portfolio-api/internal/analytics"
	"github.com/dimipash/portfolio-api/internal/config"
	"github.com/dimipash/portfolio-api/internal/infra/assistant"
	"github.com/dimipash/portfolio-api/internal/infra/content"
	"github.com/dimipash/portfolio-api/internal/infra/github"
	"github.com/dimipash/portfolio-api/internal/infra/notifier"
	"github.com/dimipash/portfolio-api/internal/observability/logging"
	"github.com/dimipash/portfolio-api/pkg/security/csp"

	chatUC "github.com/dimipash/portfolio-api/internal/usecase/chat"
	contactUC "github.com/dimipash/portfolio-api/internal/usecase/contact"
	feedUC "github.com/dimipash/portfolio-api/internal/usecase/feed"
	portfolioUC "github.com/dimipash/portfolio-api/internal/usecase/portfolio"

	hhttp "github.com/dimipash/portfolio-api/internal/handler/http"
	hchat "github.com/dimipash/portfolio-api/internal/handler/http/chat"
	hcontact "github.com/dimipash/portfolio-api/internal/handler/http/contact"
	hfeed "github.com/dimipash/portfolio-api/internal/handler/http/feed"
	hportfolio "github.com/dimipash/portfolio-api/internal/handler/http/portfolio"
	"github.com/dimipash/portfolio-api/internal/handler/http/requestid"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	handler, err := setupServer(cfg, logger)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(cfg, handler, logger)
}

// setupServer wires the services and returns the HTTP handler with all
// routes and middleware applied.
func setupServer(cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	store, err := content.NewStoreFromFile(cfg.Content.Path)
	if err != nil {
		return nil, fmt.Errorf("load portfolio content: %w", err)
	}

	ghClient, err := github.NewClient(github.Config{
		Token:   cfg.Feed.Token,
		Timeout: cfg.Feed.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create github client: %w", err)
	}

	tracker := analytics.NewTracker()

	feedSvc := feedUC.NewService(ghClient, logger)
	portfolioSvc := portfolioUC.NewService(store, cfg.Content.ResumePath)
	contactSvc := contactUC.NewService(buildNotifiers(cfg, logger), cfg.Contact.HourlyLimit, tracker, logger)

	var answerer chatUC.Answerer
	if cfg.Chat.OpenAIAPIKey != "" {
		answerer = assistant.NewClient(cfg.Chat.OpenAIBaseURL, cfg.Chat.OpenAIAPIKey, cfg.Chat.OpenAIModel)
		logger.Info("chat assistant enabled", slog.String("model", cfg.Chat.OpenAIModel))
	} else {
		logger.Info("chat assistant disabled, knowledge base only")
	}
	chatSvc := chatUC.NewService(store, answerer, tracker, logger)

	mux := http.NewServeMux()
	hfeed.Register(mux, feedSvc, cfg.Feed.Account, cfg.Feed.DefaultLimit, logger)
	hportfolio.Register(mux, portfolioSvc, tracker, logger)
	hchat.Register(mux, chatSvc, logger)

	// Contact submissions get their own per-IP limiter on top of the
	// service-level hourly cap.
	contactLimiter := hhttp.NewRateLimiter(cfg.Contact.HourlyLimit, time.Hour)
	hcontact.Register(mux, contactSvc, contactLimiter.Limit, logger)

	mux.Handle("GET /resume", hhttp.ResumeHandler{Svc: portfolioSvc, Logger: logger})
	mux.Handle("GET /healthz", hhttp.HealthHandler{Version: cfg.Version, ResumePath: cfg.Content.ResumePath})
	mux.HandleFunc("GET /livez", hhttp.LivenessHandler)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(cfg, mux, logger), nil
}

// buildNotifiers assembles the contact delivery channels from configuration.
func buildNotifiers(cfg *config.Config, logger *slog.Logger) []notifier.Notifier {
	var notifiers []notifier.Notifier

	if cfg.Contact.SMTPEnabled {
		notifiers = append(notifiers, notifier.NewSMTPNotifier(notifier.SMTPConfig{
			Enabled:  true,
			Host:     cfg.Contact.SMTPHost,
			Port:     cfg.Contact.SMTPPort,
			Username: cfg.Contact.SMTPUsername,
			Password: cfg.Contact.SMTPPassword,
			To:       cfg.Contact.SMTPTo,
		}))
		logger.Info("contact email delivery enabled", slog.String("host", cfg.Contact.SMTPHost))
	}

	if cfg.Contact.WebhookURL != "" {
		notifiers = append(notifiers, notifier.NewWebhookNotifier(notifier.WebhookConfig{
			Enabled: true,
			URL:     cfg.Contact.WebhookURL,
			Timeout: cfg.Contact.WebhookTimeout,
		}))
		logger.Info("contact webhook delivery enabled")
	}

	if len(notifiers) == 0 {
		logger.Warn("no contact delivery configured, submissions are accepted and dropped")
		notifiers = append(notifiers, notifier.NewNoOpNotifier())
	}

	return notifiers
}

// applyMiddleware builds the middleware chain around the mux.
//
// Order (outermost first): request ID, panic recovery, logging, body size
// limit, CSP headers, metrics.
func applyMiddleware(cfg *config.Config, handler http.Handler, logger *slog.Logger) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.ContentSecurityPolicy(csp.PortfolioPolicy())(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(cfg *config.Config, handler http.Handler, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", cfg.Version),
			slog.String("feed_account", cfg.Feed.Account))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
