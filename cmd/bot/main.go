package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/subosito/gotenv"

	"github.com/Spok95/cfo-bot/internal/bot"
	"github.com/Spok95/cfo-bot/internal/config"
	"github.com/Spok95/cfo-bot/internal/dialog"
	httpx "github.com/Spok95/cfo-bot/internal/infra/http"
	"github.com/Spok95/cfo-bot/internal/infra/logger"
	"github.com/Spok95/cfo-bot/internal/infra/metrics"
)

func main() {
	_ = gotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/example.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram auth failed", "err", err)
		return
	}

	states := dialog.NewStore()
	flow := dialog.NewMachine(states, log)
	b := bot.New(api, log, flow)

	log.Info("bot started", "username", api.Self.UserName)
	if err := b.Run(ctx, cfg.Telegram.PollTimeoutSec); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("bot stopped", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
