package health

import (
	"context"
	"log/slog"

	"go-datasvc/internal/health/routes"
	"go-datasvc/internal/health/services"
	"go-datasvc/pkg/config"
	"go-datasvc/pkg/database"
	"go-datasvc/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module exposes the JSON health and diagnostics API
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

// New creates the health module
func New(redis *database.Redis, cfg *config.Config) *Module {
	service := services.NewService(redis)
	moduleRoutes := routes.NewRoutes(service, "datasvc", cfg.Environment)

	return &Module{
		BaseModule: module.NewBaseModule("health", redis),
		service:    service,
		routes:     moduleRoutes,
	}
}

// Routes implements the module interface; health uses unified Huma routes
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// RegisterUnifiedRoutes registers the health endpoints with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	m.routes.RegisterUnifiedRoutes(api, basePath)
	slog.Info("Health module routes registered", "base_path", basePath)
}

// StartBackgroundTasks runs the scheduled runtime sampler until shutdown
func (m *Module) StartBackgroundTasks(ctx context.Context) {
	if err := m.service.Start(); err != nil {
		slog.Error("Failed to start runtime sampler", "error", err)
		return
	}

	select {
	case <-ctx.Done():
		slog.Info("Health background tasks stopped due to context cancellation")
	case <-m.StopChannel():
		slog.Info("Health background tasks stopped")
	}
	m.service.Stop()
}

// Ensure Module implements the module interface
var _ module.Module = (*Module)(nil)
