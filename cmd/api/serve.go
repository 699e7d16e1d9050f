package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/bryanwahyu/health-agent/internal/application"
	appchat "github.com/bryanwahyu/health-agent/internal/application/chat"
	"github.com/bryanwahyu/health-agent/internal/domain/agent"
	"github.com/bryanwahyu/health-agent/internal/infra/ai/openai"
	"github.com/bryanwahyu/health-agent/internal/infra/httpserver"
	"github.com/bryanwahyu/health-agent/internal/infra/session"
	"github.com/bryanwahyu/health-agent/internal/logging"
	"github.com/bryanwahyu/health-agent/internal/middleware"
)

var cmdServe = &cli.Command{
	Name:    "serve",
	Aliases: []string{"start"},
	Usage:   "Start the HTTP API",
	Action:  serve,
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.SetDebug(cfg.Server.Debug)
	appLog := logging.Logger(logging.SourceApp)

	src, closer, checkers, err := buildSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	appLog.Info("dataset source ready", "source", src.Name())

	var platform agent.Platform
	if cfg.AgentEnabled() {
		platform = openai.NewClient(cfg.Agent.APIKey, cfg.Agent.BaseURL, cfg.Agent.Model)
	} else {
		appLog.Warn("PINAI_API_KEY not set; unmatched messages get the default reply")
	}

	metrics := middleware.NewMetrics()
	limiter := middleware.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)
	defer limiter.Close()

	svc := &appchat.Service{
		Sessions: session.NewMemoryStore(),
		Delegate: appchat.NewDelegate(platform, cfg.Agent.AgentID, cfg.Agent.Timeout, logging.Logger(logging.SourceAgent)),
		Clock:    application.SystemClock{},
		Metrics:  metrics,
		Log:      logging.Logger(logging.SourceChat),
	}

	handler := httpserver.NewRouter(svc, src, httpserver.Options{
		Logger:   logging.Logger(logging.SourceHTTP),
		Metrics:  metrics,
		Limiter:  limiter,
		Checkers: checkers,
	})

	addr := cfg.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Agent.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     logging.StdLogger(logging.SourceHTTP),
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("server listening", "addr", addr, "debug", cfg.Server.Debug)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	case <-stop:
	}
	appLog.Info("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		appLog.Error("shutdown error", "err", err)
	}
	return nil
}
