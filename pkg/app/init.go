package app

import (
	"context"
	"log"
	"log/slog"

	"go-datasvc/pkg/config"
	"go-datasvc/pkg/database"
	"go-datasvc/pkg/logging"

	"github.com/joho/godotenv"
)

// AppContext holds the shared application context and dependencies
type AppContext struct {
	Config           *config.Config
	Redis            *database.Redis
	TelemetryManager *logging.TelemetryManager
	ServiceName      string
	shutdownFuncs    []func(context.Context) error
}

// InitializeApp initializes common application dependencies
func InitializeApp(serviceName string) (*AppContext, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	ctx := context.Background()

	cfg := config.Load()

	telemetryManager := logging.NewTelemetryManager(serviceName)
	if err := telemetryManager.Initialize(ctx); err != nil {
		log.Printf("Warning: Failed to initialize telemetry: %v", err)
		// Continue without telemetry rather than failing
	}

	// The session store is optional; the service keeps answering SOAP
	// requests when redis is down, it just stops tracking sessions.
	rdb, err := database.NewRedis(ctx)
	if err != nil {
		slog.Error("Failed to connect to Redis, sessions disabled", "error", err)
	} else {
		slog.Info("Connected to Redis")
	}

	appCtx := &AppContext{
		Config:           cfg,
		Redis:            rdb,
		TelemetryManager: telemetryManager,
		ServiceName:      serviceName,
	}

	if rdb != nil {
		appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, func(ctx context.Context) error {
			return rdb.Close()
		})
	}
	if telemetryManager != nil {
		appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, telemetryManager.Shutdown)
	}

	return appCtx, nil
}

// Shutdown gracefully shuts down all application dependencies
func (a *AppContext) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application", "service", a.ServiceName)

	for _, shutdown := range a.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}

	slog.Info("Application shutdown completed", "service", a.ServiceName)
	return nil
}
