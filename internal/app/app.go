// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/srmist/campus-chat-go/internal/bot"
	"github.com/srmist/campus-chat-go/internal/buildinfo"
	"github.com/srmist/campus-chat-go/internal/config"
	"github.com/srmist/campus-chat-go/internal/fuzzy"
	"github.com/srmist/campus-chat-go/internal/knowledge"
	"github.com/srmist/campus-chat-go/internal/logger"
	"github.com/srmist/campus-chat-go/internal/metrics"
	"github.com/srmist/campus-chat-go/internal/modules"
	"github.com/srmist/campus-chat-go/internal/ratelimit"
	"github.com/srmist/campus-chat-go/internal/sentry"
	"github.com/srmist/campus-chat-go/internal/storage"
	"github.com/srmist/campus-chat-go/internal/translate"
)

// Application manages the application lifecycle and dependencies.
type Application struct {
	cfg         *config.Config
	logger      *logger.Logger
	db          *storage.DB
	metrics     *metrics.Metrics
	registry    *prometheus.Registry
	processor   *bot.Processor
	translator  *translate.ReplyTranslator // nil when translation is disabled
	chatLimiter *ratelimit.KeyedLimiter
	server      *http.Server
}

// Initialize creates and initializes a new application with all dependencies.
func Initialize(ctx context.Context, cfg *config.Config) (*Application, error) {
	log := logger.NewWithOptions(logger.Options{
		Level:               cfg.LogLevel,
		Writer:              os.Stdout,
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})

	log = log.WithField("service", "campus-chat-go")
	if host, err := os.Hostname(); err == nil && host != "" {
		log = log.WithField("instance_id", host)
	}

	// Package-level slog.*Context() calls pick up request_id and client_ip
	// through the ContextHandler.
	slog.SetDefault(log.Logger)

	log.WithField("release", buildinfo.Release()).Info("Initializing application...")
	if cfg.BetterStackToken != "" {
		log.WithField("endpoint", cfg.BetterStackEndpoint).Info("Better Stack logging enabled")
	}

	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Release(),
	}); err != nil {
		log.WithError(err).Warn("Sentry initialization failed")
	} else if sentry.IsEnabled() {
		log.WithField("environment", cfg.SentryEnvironment).Info("Sentry error tracking enabled")
	}

	db, err := storage.New(ctx, cfg.SQLitePath(), config.DatabaseBusyTimeout)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	log.WithField("path", cfg.SQLitePath()).Info("Database connected")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m := metrics.New(registry)

	base := knowledge.Default()
	if err := base.Validate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("knowledge: %w", err)
	}

	scorer, err := fuzzy.ScorerByName(cfg.MatchScorer)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("matcher: %w", err)
	}

	cascade := modules.Build(modules.Deps{
		Base:     base,
		Matcher:  fuzzy.NewMatcher(scorer, cfg.FuzzyCutoff),
		Location: cfg.Location(),
		Logger:   log,
		Metrics:  m,
	})
	log.WithField("handlers", cascade.Registry.String()).
		WithField("scorer", cfg.MatchScorer).
		WithField("cutoff", cfg.FuzzyCutoff).
		Info("Reply cascade assembled")

	translator, err := translate.New(ctx, cfg.Translate, log, m)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("translate: %w", err)
	}
	if translator != nil {
		log.WithField("providers", cfg.Translate.Providers).
			WithField("target", cfg.Translate.Target).
			Info("Reply translation enabled")
	}

	processorCfg := bot.ProcessorConfig{
		Registry:         cascade.Registry,
		Fallback:         cascade.FallbackFunc(),
		Logger:           log,
		Metrics:          m,
		Timeout:          cfg.Chat.RequestTimeout,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
	}
	// A typed nil would defeat the processor's nil check.
	if translator != nil {
		processorCfg.Translator = translator
	}

	chatLimiter := ratelimit.NewKeyedLimiter(ratelimit.KeyedConfig{
		Name:          "chat",
		Burst:         cfg.Chat.RateBurst,
		RefillRate:    cfg.Chat.RateRefillPerSec,
		CleanupPeriod: config.RateLimiterCleanupInterval,
		IdleTTL:       config.RateLimiterIdleTTL,
		Metrics:       m,
	})

	app := &Application{
		cfg:         cfg,
		logger:      log,
		db:          db,
		metrics:     m,
		registry:    registry,
		processor:   bot.NewProcessor(processorCfg),
		translator:  translator,
		chatLimiter: chatLimiter,
	}

	gin.SetMode(gin.ReleaseMode)
	router, err := app.newRouter()
	if err != nil {
		_ = app.close()
		return nil, err
	}

	app.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           gzhttp.GzipHandler(router),
		ReadHeaderTimeout: config.HTTPReadHeader,
		ReadTimeout:       config.HTTPRead,
		WriteTimeout:      config.HTTPWrite,
		IdleTimeout:       config.HTTPIdle,
	}

	log.Info("Initialization complete")
	return app, nil
}

// newRouter registers middleware and routes on a fresh gin engine.
func (a *Application) newRouter() (*gin.Engine, error) {
	router := gin.New()
	// ClientIP keys the chat limiter; only listed proxies may set it.
	if err := router.SetTrustedProxies(a.cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	corsHandler, err := newCORS(a.cfg.CORSAllowOrigins)
	if err != nil {
		return nil, err
	}

	router.Use(gin.Recovery())
	router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	router.Use(loggingMiddleware(a.logger, a.metrics))
	router.Use(securityHeadersMiddleware())
	router.Use(corsHandler)

	if err := a.registerPages(router); err != nil {
		return nil, fmt.Errorf("pages: %w", err)
	}

	router.POST("/chat", a.chat)
	router.GET("/livez", a.livenessCheck)
	router.HEAD("/livez", a.livenessCheck)
	router.GET("/readyz", a.readinessCheck)
	router.HEAD("/readyz", a.readinessCheck)
	router.GET("/metrics",
		metricsAuth(a.cfg.MetricsUsername, a.cfg.MetricsPassword),
		gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	return router, nil
}

func (a *Application) livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

func (a *Application) getFeatures() map[string]bool {
	return map[string]bool{
		"translation":    a.translator != nil,
		"error_tracking": sentry.IsEnabled(),
		"metrics_auth":   a.cfg.MetricsPassword != "",
	}
}

func (a *Application) readinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), config.ReadinessCheck)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.WithError(err).Warn("Readiness check failed: database unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "database unavailable",
		})
		return
	}

	stats := gin.H{"rate_limited_clients": a.chatLimiter.GetActiveCount()}
	if count, err := a.db.CountUsers(ctx); err == nil {
		stats["users"] = count
	} else {
		a.logger.WithError(err).Warn("Failed to count users in readiness stats")
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"database": "connected",
		"release":  buildinfo.Release(),
		"stats":    stats,
		"features": a.getFeatures(),
	})
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (a *Application) Run() error {
	errCh := make(chan error, 1)
	a.startHTTPServer(errCh)

	select {
	case sig := <-a.waitForShutdownSignal():
		a.logger.WithField("signal", sig.String()).Info("Received shutdown signal")
	case err := <-errCh:
		a.logger.WithError(err).Error("HTTP server error")
		_ = a.shutdown()
		return err
	}

	return a.shutdown()
}

// startHTTPServer starts the HTTP server in a goroutine.
func (a *Application) startHTTPServer(errCh chan<- error) {
	go func() {
		a.logger.WithField("port", a.cfg.Port).Info("Starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
}

// waitForShutdownSignal returns a channel that receives SIGINT/SIGTERM.
func (a *Application) waitForShutdownSignal() <-chan os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return quit
}

// shutdown stops accepting requests, waits for in-flight chats, then
// closes resources.
func (a *Application) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	a.logger.Info("Stopping HTTP server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Error("HTTP server shutdown error")
	}

	a.logger.Info("Closing resources...")
	if err := a.close(); err != nil {
		a.logger.WithError(err).Error("Component close error")
	}

	if sentry.IsEnabled() && !sentry.Flush(config.LogFlushTimeout) {
		a.logger.Warn("Sentry flush timed out")
	}

	a.logger.Info("Shutdown complete")

	flushCtx, flushCancel := context.WithTimeout(context.Background(), config.LogFlushTimeout)
	defer flushCancel()
	if err := a.logger.Shutdown(flushCtx); err != nil {
		a.logger.WithError(err).Warn("Logger shutdown timed out")
	}
	return nil
}

// close releases the translator, the rate limiter and the database.
func (a *Application) close() error {
	var firstErr error
	if a.translator != nil {
		if err := a.translator.Close(); err != nil {
			a.logger.WithError(err).WithField("component", "translator").Error("Component close error")
			firstErr = err
		}
	}
	if a.chatLimiter != nil {
		a.chatLimiter.Stop()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.WithError(err).WithField("component", "database").Error("Component close error")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

