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

	"auction-house/internal/api/handlers"
	"auction-house/internal/config"
	"auction-house/internal/domain"
	"auction-house/internal/infrastructure/redis"
	"auction-house/internal/infrastructure/websocket"
	"auction-house/internal/services"
	"auction-house/pkg/banner"
	"auction-house/pkg/logger"

	redisClient "github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log := logger.New()
	log.Info("Starting Auction House Service")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	banner.Fprint(os.Stdout, "Welcome to "+cfg.House.Name)

	// Initialize the house
	house := services.NewHouseService(cfg.House.Name, cfg.House.MaxParticipants, cfg.House.MaxAuctions, log)
	if cfg.House.SeedDemoData {
		if err := services.SeedDemoData(house); err != nil {
			log.Error("Failed to seed demo data", "error", err)
			os.Exit(1)
		}
		log.Info("Seeded demo data")
	}

	// Initialize connection manager and event fanout
	connManager := websocket.NewConnectionManager(log)
	notifier := websocket.NewNotifier(connManager)
	fanout := services.NewEventFanout(notifier, notifier, connManager, log)

	subscriberCtx, stopSubscriber := context.WithCancel(context.Background())
	defer stopSubscriber()

	// With Redis enabled, events flow through the pub/sub channel and the
	// subscriber fans them out; otherwise the fanout is invoked directly.
	var eventPublisher domain.EventPublisher
	if cfg.Redis.Enabled {
		rdb := redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			cancel()
			log.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		cancel()
		log.Info("Connected to Redis", "address", cfg.Redis.Address)

		eventPublisher = redis.NewEventPublisher(rdb)
		subscriber := redis.NewRedisEventSubscriber(rdb, log)

		go func() {
			if err := fanout.Start(subscriberCtx, subscriber); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("Event fanout stopped", "error", err)
			}
		}()
	}

	bidService := services.NewBidService(house, fanout, eventPublisher, log)

	// Scheduled end-of-day summary
	var scheduler *services.SummaryScheduler
	if cfg.Summary.Enabled {
		scheduler = services.NewSummaryScheduler(house, os.Stdout, log)
		if err := scheduler.Start(cfg.Summary.CronSpec); err != nil {
			log.Error("Failed to start summary scheduler", "error", err)
			os.Exit(1)
		}
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize handlers
	houseHandler := handlers.NewHouseHandler(house, bidService, log)
	wsHandler := handlers.NewWebSocketHandler(house, bidService, connManager, log)

	// API routes
	api := e.Group("/api/v1")
	api.POST("/participants", houseHandler.CreateParticipant)
	api.GET("/participants", houseHandler.ListParticipants)
	api.POST("/auctions", houseHandler.CreateAuction)
	api.GET("/auctions", houseHandler.ListAuctions)
	api.POST("/auctions/:id/bids", houseHandler.PlaceBid)
	api.POST("/auctions/:id/close", houseHandler.CloseAuction)
	api.GET("/reports/end-of-day", houseHandler.EndOfDaySummary)

	// WebSocket feed
	e.GET("/ws/auctions/:id", wsHandler.HandleConnection)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   "auction-house",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Start server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting auction house server", "address", serverAddr)

	go func() {
		if err := e.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down auction house service...")

	stopSubscriber()
	if scheduler != nil {
		scheduler.Stop()
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Auction house service stopped")
}
