package getdata

import (
	"log/slog"
	"strings"

	"go-datasvc/internal/getdata/routes"
	"go-datasvc/internal/getdata/services"
	"go-datasvc/pkg/config"
	"go-datasvc/pkg/database"
	"go-datasvc/pkg/module"

	"github.com/go-chi/chi/v5"
)

// Module exposes the legacy GetDataService SOAP contract
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
	path    string
}

// New creates the GetDataService module
func New(redis *database.Redis, cfg *config.Config) *Module {
	service := services.NewService(cfg.GuestFallback)

	endpointURL := strings.TrimRight(cfg.PublicURL, "/") + cfg.SOAPPath
	moduleRoutes := routes.NewRoutes(service, cfg.IsDevelopment(), endpointURL)

	return &Module{
		BaseModule: module.NewBaseModule("getdata", redis),
		service:    service,
		routes:     moduleRoutes,
		path:       cfg.SOAPPath,
	}
}

// Routes mounts the SOAP endpoint. The WCF-era .svc alias is registered
// alongside the .asmx path for clients migrated at different times.
func (m *Module) Routes(r chi.Router) {
	handler := m.routes.Handler()
	r.Handle(m.path, handler)

	if alias := svcAlias(m.path); alias != "" {
		r.Handle(alias, handler)
	}

	slog.Info("SOAP endpoint registered", "path", m.path)
}

// Service returns the operation implementation for other modules
func (m *Module) Service() *services.Service {
	return m.service
}

func svcAlias(path string) string {
	if strings.HasSuffix(path, ".asmx") {
		return strings.TrimSuffix(path, ".asmx") + ".svc"
	}
	return ""
}

// Ensure Module implements the module interface
var _ module.Module = (*Module)(nil)
