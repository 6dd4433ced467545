package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tinoosan/social/internal/config"
	"github.com/tinoosan/social/internal/errs"
	"github.com/tinoosan/social/internal/httpapi"
	"github.com/tinoosan/social/internal/service/account"
	"github.com/tinoosan/social/internal/service/message"
	"github.com/tinoosan/social/internal/social"
	"github.com/tinoosan/social/internal/storage/memory"
	pgstore "github.com/tinoosan/social/internal/storage/postgres"
	sqlitestore "github.com/tinoosan/social/internal/storage/sqlite"
)

// backend is what every bundled store provides.
type backend interface {
	account.Store
	message.Store
	httpapi.ReadyChecker
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := buildLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	store, closeFn, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "backend", cfg.Store(), "err", err)
		os.Exit(1)
	}
	defer closeFn()

	policy, _ := cfg.PosterPolicy()
	accounts := account.New(store)
	messages := message.New(store, message.WithPosterPolicy(policy))

	if cfg.DevSeed {
		if err := devSeed(ctx, logger, policy, accounts, messages); err != nil {
			logger.Error("dev seed failed", "err", err)
		}
	}

	api := httpapi.New(accounts, messages, logger,
		httpapi.WithReadyChecker(store),
		httpapi.WithAuthRateLimit(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst),
	)
	defer api.Close()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("social service listening", "addr", srv.Addr, "posted_by_policy", policy)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}
}

// openStore selects postgres, sqlite or memory and applies migrations for
// the SQL backends.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (backend, func(), error) {
	switch cfg.Store() {
	case config.StorePostgres:
		pg, err := pgstore.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("storage backend: postgres")
		return pg, pg.Close, nil
	case config.StoreSQLite:
		lite, err := sqlitestore.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := lite.Migrate(ctx); err != nil {
			_ = lite.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("storage backend: sqlite", "path", cfg.SQLitePath)
		return lite, func() { _ = lite.Close() }, nil
	default:
		logger.Info("storage backend: memory")
		return memory.New(), func() {}, nil
	}
}

// devSeed registers a demo account and, when the poster policy allows a first
// post, one message. Reruns against a persistent store find the account
// already present and skip.
func devSeed(ctx context.Context, l *slog.Logger, policy message.PosterPolicy, accounts account.Service, messages message.Service) error {
	demo, err := accounts.Register(ctx, social.Account{Username: "demo", Password: "demo1234"})
	if errors.Is(err, errs.ErrConflict) {
		l.Info("DEV seed skipped, demo account exists")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println("==================== DEV SEED ====================")
	fmt.Printf("username: %s\npassword: %s\n", demo.Username, demo.Password)
	fmt.Printf("account_id: %s\n", demo.ID)
	if policy == message.PosterPolicyPriorMessage {
		// nobody has posted yet, so no account may post under this policy
		l.Info("DEV seed", "account_id", demo.ID.String(), "message", "skipped", "posted_by_policy", policy)
		fmt.Println("==================================================")
		return nil
	}
	msg, err := messages.Create(ctx, social.Message{PostedBy: demo.ID, MessageText: "hello from the dev seed"})
	if err != nil {
		return fmt.Errorf("seed message: %w", err)
	}
	l.Info("DEV seed", "account_id", demo.ID.String(), "message_id", msg.ID.String())
	fmt.Printf("message_id: %s\n", msg.ID)
	fmt.Println("==================================================")
	return nil
}

// parseLogLevel maps env values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLogger(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(level)}
	if strings.EqualFold(strings.TrimSpace(format), "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	// default to JSON
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
