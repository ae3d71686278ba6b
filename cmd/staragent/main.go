package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/staragent/staragent-go/pkg/core"
	"github.com/staragent/staragent-go/pkg/logger"
	"github.com/staragent/staragent-go/pkg/server"
)

func main() {
	cfg, err := core.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Server.LogMode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := core.NewApp(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("init app", "error", err)
	}
	defer func() { _ = app.Close() }()

	srv, err := server.New(zlog, app.Agent, app.Store(), cfg.Server.Port)
	if err != nil {
		zlog.Fatal("init server", "error", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	zlog.Info("celebrity agent started", "celebrity", cfg.Celebrity, "port", cfg.Server.Port)

	select {
	case err := <-errCh:
		if err != nil {
			zlog.Fatal("server failed", "error", err)
		}
	case <-ctx.Done():
		zlog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zlog.Error("shutdown failed", "error", err)
		}
	}
}
