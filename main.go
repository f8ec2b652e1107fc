package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"antena/config"
	"antena/di"
	"antena/rest"
	"antena/utils/logger"
)

const shutdownGrace = 10 * time.Second

func main() {
	logger.InitLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	components := di.NewApplicationComponents(cfg)
	e := rest.NewRouter(cfg, components)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Logger.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error("server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Logger.Info("server stopped")
}
