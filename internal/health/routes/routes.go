package routes

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"go-datasvc/internal/health/dto"
	"go-datasvc/internal/health/services"
	"go-datasvc/pkg/version"

	"github.com/danielgtaylor/huma/v2"
)

// Routes handles health endpoint definitions
type Routes struct {
	service     *services.Service
	serviceName string
	environment string
}

func NewRoutes(service *services.Service, serviceName, environment string) *Routes {
	return &Routes{
		service:     service,
		serviceName: serviceName,
		environment: environment,
	}
}

// RegisterUnifiedRoutes registers all health routes with the Huma API
func (r *Routes) RegisterUnifiedRoutes(api huma.API, basePath string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        basePath,
		Summary:     "Basic health check",
		Description: "Returns liveness of the service",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*dto.HealthOutput, error) {
		return &dto.HealthOutput{
			Body: dto.HealthBody{
				Status:  dto.StatusHealthy,
				Service: r.serviceName,
				Version: version.GetVersionString(),
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-health-status",
		Method:      http.MethodGet,
		Path:        basePath + "/status",
		Summary:     "Component status",
		Description: "Returns aggregated status of the service components",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*dto.StatusOutput, error) {
		components := r.service.ComponentStatuses(ctx)

		statuses := make([]string, 0, len(components))
		for _, c := range components {
			statuses = append(statuses, c.Status)
		}

		return &dto.StatusOutput{
			Body: dto.StatusBody{
				Timestamp:     time.Now().UTC(),
				OverallStatus: services.OverallStatus(statuses),
				Components:    components,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-health-detailed",
		Method:      http.MethodGet,
		Path:        basePath + "/detailed",
		Summary:     "Detailed health",
		Description: "Returns build information and process vitals",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*dto.DetailedOutput, error) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		uptime := r.service.Uptime()

		return &dto.DetailedOutput{
			Body: dto.DetailedBody{
				Status:          dto.StatusHealthy,
				Environment:     r.environment,
				Version:         version.Get(),
				UptimeSeconds:   int64(uptime.Seconds()),
				UptimeFormatted: services.FormatUptime(uptime),
				Goroutines:      runtime.NumGoroutine(),
				HeapBytes:       m.HeapAlloc,
				TotalBytes:      m.Sys,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-health-dependencies",
		Method:      http.MethodGet,
		Path:        basePath + "/dependencies",
		Summary:     "Dependency health",
		Description: "Probes external dependencies and reports their status",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*dto.DependenciesOutput, error) {
		dependencies := r.service.CheckDependencies(ctx)

		statuses := make([]string, 0, len(dependencies))
		for _, d := range dependencies {
			statuses = append(statuses, d.Status)
		}

		return &dto.DependenciesOutput{
			Body: dto.DependenciesBody{
				Timestamp:     time.Now().UTC(),
				OverallStatus: services.OverallStatus(statuses),
				Dependencies:  dependencies,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-health-diagnostics",
		Method:      http.MethodGet,
		Path:        basePath + "/diagnostics",
		Summary:     "Runtime diagnostics",
		Description: "Returns the rolling window of scheduled runtime samples",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*dto.DiagnosticsOutput, error) {
		return &dto.DiagnosticsOutput{
			Body: dto.DiagnosticsBody{
				Timestamp: time.Now().UTC(),
				Samples:   r.service.Samples(),
			},
		}, nil
	})
}
