package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/letsssgooo/testBot/internal/auth"
	"github.com/letsssgooo/testBot/internal/bot"
	"github.com/letsssgooo/testBot/internal/client"
	"github.com/letsssgooo/testBot/internal/events/fetcher"
	"github.com/letsssgooo/testBot/internal/events/sender"
	"github.com/letsssgooo/testBot/internal/lib/slogcustom"
	"github.com/letsssgooo/testBot/internal/quiz"
	"github.com/letsssgooo/testBot/internal/storage"
	"github.com/letsssgooo/testBot/internal/storage/postgres"
	"github.com/spf13/pflag"
)

func main() {
	_ = godotenv.Load()

	flagToken := pflag.String("token", os.Getenv("BOT_TOKEN"), "token of telegram bot")
	flagDSN := pflag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "postgres connection string; empty runs in-memory storage")
	flagDebug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Parse()

	log := setupLogger(*flagDebug)
	slog.SetDefault(log)
	slog.Info("starting test bot...")

	if *flagToken == "" {
		slog.Error("telegram token is not set, use --token or BOT_TOKEN")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := setupStorage(ctx, *flagDSN)
	if err != nil {
		slog.Error("can not setup storage", "err", err)
		os.Exit(1)
	}

	httpClient := client.NewHTTPClient(*flagToken)
	engine := quiz.NewEngine(st)
	registry := auth.NewRegistry(st)

	b := bot.NewBot(
		fetcher.NewTelegramFetcher(httpClient),
		sender.NewTelegramSender(httpClient),
		engine,
		registry,
	)

	if err = b.Run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("bot stopped with error", "err", err)
		os.Exit(1)
	}

	slog.Info("bot stopped")
}

func setupStorage(ctx context.Context, dsn string) (storage.Storage, error) {
	if dsn == "" {
		slog.Info("no postgres dsn, using in-memory storage")
		return storage.NewMemoryStorage(), nil
	}

	st, err := postgres.NewStorage(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err = st.Bootstrap(ctx); err != nil {
		return nil, err
	}

	return st, nil
}

func setupLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slogcustom.NewCustomHandler(os.Stdout, level))
}
