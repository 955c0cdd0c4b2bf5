package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"go-datasvc/internal/getdata"
	"go-datasvc/internal/health"
	"go-datasvc/pkg/app"
	"go-datasvc/pkg/config"
	"go-datasvc/pkg/handlers"
	datasvcMiddleware "go-datasvc/pkg/middleware"
	"go-datasvc/pkg/module"
	"go-datasvc/pkg/version"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	_ "go.uber.org/automaxprocs"
)

// corsMiddleware adds CORS headers for the configured origins
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && (allowAll || allowed[origin]) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, SOAPAction, X-Correlation-ID")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func main() {
	log.Printf("datasvc %s | build %s", version.GetVersionString(), version.Get().BuildDate)
	log.Printf("CPUs: %d | GOMAXPROCS: %d", runtime.NumCPU(), runtime.GOMAXPROCS(0))

	ctx := context.Background()

	appCtx, err := app.InitializeApp("datasvc")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	cfg := appCtx.Config

	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware(cfg.CORSAllowedOrigins))
	r.Use(datasvcMiddleware.CorrelationID)
	r.Use(datasvcMiddleware.TracingMiddleware)

	// Legacy Global.asax lifecycle, as an explicit per-request pipeline
	pipeline := datasvcMiddleware.NewPipeline(
		datasvcMiddleware.NewRequestLogger(cfg.APIPrefix+"/health"),
		datasvcMiddleware.NewSessionInterceptor(appCtx.Redis, cfg.SessionCookieName, cfg.SessionIdleTimeout),
	)
	r.Use(pipeline.Middleware)

	// Initialize modules
	getdataModule := getdata.New(appCtx.Redis, cfg)
	healthModule := health.New(appCtx.Redis, cfg)
	modules := []module.Module{getdataModule, healthModule}

	for _, mod := range modules {
		mod.Routes(r)
	}

	// Root service page, the counterpart of the legacy ASMX landing page
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		handlers.SuccessResponse(w, map[string]string{
			"service":  "GetDataService",
			"version":  version.GetVersionString(),
			"soap":     cfg.SOAPPath,
			"wsdl":     cfg.SOAPPath + "?wsdl",
			"health":   cfg.APIPrefix + "/health",
		}, http.StatusOK)
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		handlers.NotFoundResponse(w, "")
	})

	// JSON health API under the configurable prefix
	humaConfig := huma.DefaultConfig("GetData Service", "1.0.0")
	humaConfig.Info.Description = "Legacy GetDataService SOAP contract with a JSON health surface"
	humaConfig.Servers = []*huma.Server{
		{URL: cfg.PublicURL + cfg.APIPrefix, Description: "Service API"},
	}

	r.Route(cfg.APIPrefix, func(prefixRouter chi.Router) {
		api := humachi.New(prefixRouter, humaConfig)
		healthModule.RegisterUnifiedRoutes(api, "/health")
	})

	// Start background services for all modules
	for _, mod := range modules {
		go mod.StartBackgroundTasks(ctx)
	}

	var handler http.Handler = r
	if config.GetBoolEnv("ENABLE_TELEMETRY", false) {
		handler = otelhttp.NewHandler(r, "datasvc")
	}

	srv := &http.Server{
		Addr:         cfg.Host + ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting datasvc server",
			slog.String("addr", srv.Addr),
			slog.String("soap_path", cfg.SOAPPath),
			slog.String("api_prefix", cfg.APIPrefix),
			slog.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Received shutdown signal, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	for _, mod := range modules {
		mod.Stop()
	}

	appCtx.Shutdown(shutdownCtx)

	slog.Info("datasvc shutdown completed successfully")
}
