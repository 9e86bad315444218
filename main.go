package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tableside/api"
	"tableside/configs"
	"tableside/repository"
	"tableside/services"
	"tableside/utils"
	"tableside/ws"

	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// local cart storage
	db, err := configs.OpenCartDB(cfg.CartDB)
	if err != nil {
		logger.Fatal("open cart db failed", zap.String("path", cfg.CartDB), zap.Error(err))
	}
	cart := services.NewCartStore(repository.NewCartRepository(db), logger)
	if cfg.TableNumber != "" {
		cart.Load(cfg.TableNumber)
		logger.Info("cart restored",
			zap.String("table", cfg.TableNumber),
			zap.Int("items", cart.ItemCount()),
			zap.Float64("total", cart.Total()))
	}

	// backend API
	client, err := api.NewClient(cfg.APIBaseURL, logger)
	if err != nil {
		logger.Fatal("api client failed", zap.Error(err))
	}
	if cfg.AdminToken != "" {
		if utils.TokenExpired(cfg.AdminToken, time.Now()) {
			logger.Warn("admin token expired, ignoring")
		} else {
			client.SetAuthToken(cfg.AdminToken)
		}
	}
	client.OnUnauthorized(func() {
		logger.Warn("session expired, admin login required")
	})

	board := services.NewOrderBoard(client, logger)

	// one live connection for the whole process
	live := ws.NewLiveOrderSync(cfg.SocketURL, logger)
	defer live.Shutdown()

	live.On(ws.EventConnect, func(json.RawMessage) {
		logger.Info("live channel connected")
		// subscriptions don't survive a reconnect, re-issue here
		if cfg.TableNumber != "" {
			live.JoinTable(cfg.TableNumber)
		}
	})
	live.On(ws.EventDisconnect, func(json.RawMessage) {
		logger.Warn("live channel disconnected")
	})
	live.On(ws.EventOrderUpdated, board.HandleEvent)
	live.Connect()

	ctx := context.Background()
	if err := board.Refresh(ctx); err != nil {
		logger.Warn("initial order fetch failed", zap.Error(err))
	} else {
		logger.Info("orders loaded", zap.Int("count", len(board.Orders())))
	}

	// push keeps the board fresh; the ticker is the fallback for anything
	// missed while the channel was down
	ticker := time.NewTicker(cfg.RefreshInterval)
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			if err := board.Refresh(ctx); err != nil {
				logger.Warn("order refresh failed", zap.Error(err))
				continue
			}
			logger.Info("orders refreshed",
				zap.Int("count", len(board.Orders())),
				zap.Bool("live", live.Connected()))
		case <-quit:
			logger.Info("shutting down")
			return
		}
	}
}
