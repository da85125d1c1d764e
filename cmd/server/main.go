// Package main provides a local HTTP server for development and testing.
// It serves the eligibility API and Prometheus metrics.
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
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"visa-eligibility-engine/internal/config"
	"visa-eligibility-engine/internal/handlers"
	"visa-eligibility-engine/internal/metrics"
	"visa-eligibility-engine/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()
	logger := utils.GetLogger()

	m := metrics.New(prometheus.DefaultRegisterer)

	rt, err := handlers.Bootstrap(context.Background(), cfg, m)
	if err != nil {
		logger.Fatal("Failed to start engine", zap.Error(err))
	}
	defer rt.Close()

	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(rt.API),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("Visa Eligibility Engine API Server",
		zap.String("addr", addr),
		zap.String("catalog", rt.Source.Name()),
		zap.String("stage", cfg.Stage),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// newRouter wires the API routes, CORS and the metrics endpoint.
func newRouter(api *handlers.API) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	handlers.NewHTTPHandler(api).Register(r)
	r.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(r)
}
