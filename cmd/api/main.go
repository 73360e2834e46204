package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"postboard/cmd/app"
	"postboard/internal/config"
	handlers "postboard/internal/handler"
	"postboard/internal/logger"
	"postboard/internal/middleware"
	"postboard/internal/telemetry"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	shutdownTelemetry, err := telemetry.Setup(cfg.Telemetry, os.Stdout)
	if err != nil {
		zlog.Fatal("failed to set up telemetry", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			zlog.Error("failed to flush telemetry", zap.Error(err))
		}
	}()

	db, _, services, err := app.App(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to start application", zap.Error(err))
	}
	defer func() {
		if err := db.CloseDB(); err != nil {
			zlog.Error("failed to close database", zap.Error(err))
		}
	}()

	handler := handlers.NewHandlers(services, db, zlog)

	handlerChain := middleware.Chain(
		handler.Routes(),
		middleware.RecoveryMiddleware(zlog),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(zlog),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      handlerChain,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		zlog.Info("server started",
			zap.String("addr", srv.Addr),
			zap.String("driver", cfg.DB.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if ok {
			zlog.Error("server stopped", zap.Error(err))
			return
		}
	case sig := <-quit:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
