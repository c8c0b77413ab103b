package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/delivermi/rider-app/internal/pkg/config"
	"github.com/delivermi/rider-app/internal/pkg/database"
	"github.com/delivermi/rider-app/internal/pkg/health"
	"github.com/delivermi/rider-app/internal/pkg/logger"
	"github.com/delivermi/rider-app/internal/pkg/middleware"
	natspkg "github.com/delivermi/rider-app/internal/pkg/nats"
	"github.com/delivermi/rider-app/internal/pkg/server"
	wspkg "github.com/delivermi/rider-app/internal/pkg/websocket"
	gatewayHTTP "github.com/delivermi/rider-app/services/rider/gateway/http"
	gatewayNATS "github.com/delivermi/rider-app/services/rider/gateway/nats"
	"github.com/delivermi/rider-app/services/rider/handler"
	httpHandler "github.com/delivermi/rider-app/services/rider/handler/http"
	wsHandler "github.com/delivermi/rider-app/services/rider/handler/websocket"
	"github.com/delivermi/rider-app/services/rider/repository"
	"github.com/delivermi/rider-app/services/rider/usecase"
)

func main() {
	appName := "rider-app"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/rider.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("rider_id", configs.Rider.ID),
	)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	stateRepo := repository.NewStateRepo(redisClient, configs.Rider.ID)

	// Initialize gateways
	ridesGW := gatewayHTTP.NewRideServiceGateway(configs.RideService, configs.Rider.AuthToken)
	realtimeGW := gatewayNATS.NewRealtimeGateway(natsClient)

	// Handlers for WebSocket
	manager := wspkg.NewManager(configs.JWT)
	pushHandler := wsHandler.NewWebSocketHandler(manager)

	// Initialize UseCase
	riderUC, err := usecase.NewRiderUC(configs, stateRepo, ridesGW, realtimeGW, pushHandler, pushHandler.PublishSnapshot)
	if err != nil {
		zapLogger.Fatal("Failed to initialize rider use case", zap.Error(err))
	}
	pushHandler.SetSnapshotSource(riderUC.Snapshot)

	// Re-adopt a persisted ride reference before serving traffic
	resumeCtx, cancelResume := context.WithTimeout(context.Background(), 10*time.Second)
	if err := riderUC.Resume(resumeCtx); err != nil {
		zapLogger.Error("Failed to resume persisted ride state", zap.Error(err))
	}
	cancelResume()

	// Handlers for HTTP
	rideHandler := httpHandler.NewRideHandler(riderUC)

	// Initialize handlers
	h := handler.NewHandler(rideHandler, pushHandler)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Register component cleanup
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		riderUC.Shutdown()
		return nil
	})

	// Start server with graceful shutdown
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", zap.Error(err))
	}
}
