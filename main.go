package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreybb/storyboard/api"
	"github.com/coreybb/storyboard/config"
	"github.com/coreybb/storyboard/ebook"
	"github.com/coreybb/storyboard/generation"
	"github.com/coreybb/storyboard/processing"
	rh "github.com/coreybb/storyboard/route-handlers"
	"github.com/coreybb/storyboard/storage"
	"github.com/coreybb/storyboard/webhooks"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	// Initialize generation and export
	pipeline := generation.NewGenerationPipeline().WithLogger(logger)
	packageGenerator := ebook.NewPackageGenerator()
	packageStorer := storage.NewLocalFileStorer(cfg.ExportDir)
	packageProcessor := processing.NewPackageProcessor(pipeline, packageGenerator, packageStorer)

	generateHandler := rh.NewGenerateHandler(packageProcessor, cfg.MaxBodyBytes)
	packageHandler := rh.NewPackageHandler(packageProcessor)
	inboundBriefHandler := webhooks.NewInboundBriefHandler(packageProcessor)

	router := api.SetupRoutes(generateHandler, packageHandler, inboundBriefHandler, cfg.RequestTimeout)

	startServer(cfg.Port, router, cfg.ShutdownTimeout)
}

func startServer(port string, router http.Handler, shutdownTimeout time.Duration) {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownSignal // Block until signal received
	log.Println("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server gracefully stopped")
}
