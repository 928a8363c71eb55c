package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"kitten-shop/internal/adapters/catalogsource/static"
	"kitten-shop/internal/adapters/telegram"
	"kitten-shop/internal/config"
	"kitten-shop/internal/domain/catalog"
	"kitten-shop/internal/domain/orders"
	"kitten-shop/internal/platform/logger"
	"kitten-shop/internal/router"
)

// @title kitten-shop API
// @version 1.0
// @description Catalog and submission intake for the kitten shop Mini App.
// @BasePath /
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "kitten-shop-api",
	})

	store := catalog.NewStore(static.New())
	if err := store.Load(context.Background()); err != nil {
		log.Error("catalog load failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	var notifier orders.AdminNotifier
	tg, err := telegram.NewClient(telegram.Config{
		BotToken:    cfg.Bot.Token,
		AdminChatID: cfg.Bot.AdminChatID,
		GroupChatID: cfg.Bot.GroupChatID,
	}, log)
	if err != nil {
		log.Error("telegram client", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if tg.IsConfigured() {
		notifier = tg
		log.Info("telegram notifications enabled", nil)
	} else {
		log.Warn("telegram not configured, staff notifications disabled", nil)
	}

	handler := router.NewRouter(router.Options{
		Catalog:  store,
		Secret:   cfg.HTTP.Secret,
		Notifier: notifier,
		Logger:   log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.TimeoutRead,
		WriteTimeout: cfg.HTTP.TimeoutWrite,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.AppEnv})
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("shutting down", map[string]any{"signal": sig.String()})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}
}
