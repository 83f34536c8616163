package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dhimasank/ngobrol/internal/config"
	httpHandler "github.com/dhimasank/ngobrol/internal/delivery/http"
	"github.com/dhimasank/ngobrol/internal/delivery/ws"
	"github.com/dhimasank/ngobrol/internal/middleware"
)

func main() {
	// Load .env file (ignore error if not exists, e.g. in production)
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()

	if cfg.LogLevel == "silent" || cfg.LogLevel == "off" {
		log.SetOutput(io.Discard)
	}

	// Initialize dependencies
	hub := ws.NewHub(cfg.MaxHistorySize, cfg.RecentMessages)
	hub.SeedDefaultRooms()
	handler := httpHandler.NewHandler(hub, cfg)

	apiLimiter := middleware.NewIPRateLimiter(cfg.RateLimitAPI, 20)
	wsLimiter := middleware.NewIPRateLimiter(cfg.RateLimitWS, 10)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", middleware.RateLimitFunc(wsLimiter, handler.HandleWebSocket))
	mux.HandleFunc("/healthz", handler.HandleHealth)
	mux.HandleFunc("/api/stats", middleware.RateLimitFunc(apiLimiter, handler.HandleStats))
	mux.HandleFunc("/api/rooms", middleware.RateLimitFunc(apiLimiter, handler.HandleRooms))

	securedHandler := middleware.SecurityHeaders(mux)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      securedHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Chat relay running at http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
