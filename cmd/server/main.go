package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ErlanBelekov/accounts/config"
	"github.com/ErlanBelekov/accounts/internal/email"
	"github.com/ErlanBelekov/accounts/internal/health"
	"github.com/ErlanBelekov/accounts/internal/infrastructure/store"
	ctxlog "github.com/ErlanBelekov/accounts/internal/log"
	"github.com/ErlanBelekov/accounts/internal/metrics"
	"github.com/ErlanBelekov/accounts/internal/password"
	"github.com/ErlanBelekov/accounts/internal/token"
	httptransport "github.com/ErlanBelekov/accounts/internal/transport/http"
	"github.com/ErlanBelekov/accounts/internal/transport/http/handler"
	"github.com/ErlanBelekov/accounts/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := ctxlog.New(os.Stdout, cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The service does not start without its store.
	userRepo, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		stop()
		log.Fatalf("store: %v", err)
	}
	defer closeStore()
	logger.Info("store ready", "driver", cfg.StoreDriver)

	hasher := password.NewHasher(cfg.BcryptCost)
	tokens := token.NewService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	sender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)
	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, tokens, sender, logger)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	metrics.Register(prometheus.DefaultRegisterer)
	checker := health.NewChecker(userRepo, cfg.StoreDriver, logger, prometheus.DefaultRegisterer)

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: httptransport.NewRouter(
			httptransport.RouterConfig{Development: cfg.Env == "local", CORSOrigins: cfg.CORSAllowedOrigins},
			logger,
			authHandler,
			handler.NewHealthHandler(checker),
			tokens,
		),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}
	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, prometheus.DefaultGatherer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", "error", err)
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server", "error", err)
		closeStore()
		os.Exit(1)
	}
}
