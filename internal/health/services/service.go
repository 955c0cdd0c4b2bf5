package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"go-datasvc/internal/health/dto"
	"go-datasvc/pkg/database"

	"github.com/robfig/cron/v3"
)

// maxSamples bounds the diagnostics window to roughly an hour of history
const maxSamples = 60

// Service aggregates health and diagnostics for the REST surface. A cron
// schedule keeps a rolling window of runtime samples for the diagnostics
// endpoint.
type Service struct {
	redis     *database.Redis
	startTime time.Time
	scheduler *cron.Cron

	mu      sync.RWMutex
	samples []dto.RuntimeSample
}

func NewService(redis *database.Redis) *Service {
	return &Service{
		redis:     redis,
		startTime: time.Now(),
		scheduler: cron.New(),
	}
}

// Start begins the scheduled runtime sampling
func (s *Service) Start() error {
	// First sample immediately so diagnostics never starts empty.
	s.sample()

	if _, err := s.scheduler.AddFunc("@every 1m", s.sample); err != nil {
		return fmt.Errorf("failed to schedule runtime sampler: %w", err)
	}
	s.scheduler.Start()

	slog.Info("Runtime sampler started", "interval", "1m", "window", maxSamples)
	return nil
}

// Stop halts the sampler; already-running samples complete
func (s *Service) Stop() {
	ctx := s.scheduler.Stop()
	<-ctx.Done()
}

func (s *Service) sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	entry := dto.RuntimeSample{
		Timestamp:  time.Now().UTC(),
		HeapBytes:  m.HeapAlloc,
		TotalBytes: m.Sys,
		Goroutines: runtime.NumGoroutine(),
		GCCycles:   m.NumGC,
	}

	s.mu.Lock()
	s.samples = append(s.samples, entry)
	if len(s.samples) > maxSamples {
		s.samples = s.samples[len(s.samples)-maxSamples:]
	}
	s.mu.Unlock()
}

// Samples returns a copy of the current diagnostics window
func (s *Service) Samples() []dto.RuntimeSample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dto.RuntimeSample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Uptime returns how long the service has been running
func (s *Service) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// ComponentStatuses reports per-component health. The SOAP service itself
// is stateless, so it is healthy whenever the process answers; the session
// store depends on redis.
func (s *Service) ComponentStatuses(ctx context.Context) map[string]dto.ComponentStatus {
	now := time.Now().UTC()

	components := map[string]dto.ComponentStatus{
		"getdata": {
			Component:   "getdata",
			Status:      dto.StatusHealthy,
			LastChecked: now,
		},
	}

	sessionStore := dto.ComponentStatus{
		Component:   "session_store",
		LastChecked: now,
	}
	switch {
	case s.redis == nil:
		sessionStore.Status = dto.StatusDegraded
		sessionStore.Message = "session store not configured; sessions disabled"
	case s.redis.HealthCheck(ctx) != nil:
		sessionStore.Status = dto.StatusUnhealthy
		sessionStore.Message = "session store unreachable"
	default:
		sessionStore.Status = dto.StatusHealthy
	}
	components["session_store"] = sessionStore

	return components
}

// CheckDependencies probes each external dependency and reports results
func (s *Service) CheckDependencies(ctx context.Context) []dto.DependencyStatus {
	now := time.Now().UTC()

	redisStatus := dto.DependencyStatus{
		Name:        "redis",
		LastChecked: now,
	}
	if s.redis == nil {
		redisStatus.Status = dto.StatusDegraded
		redisStatus.Message = "not configured"
	} else {
		start := time.Now()
		if err := s.redis.HealthCheck(ctx); err != nil {
			redisStatus.Status = dto.StatusUnhealthy
			redisStatus.Message = err.Error()
		} else {
			redisStatus.Status = dto.StatusHealthy
		}
		redisStatus.ResponseTime = time.Since(start).String()
	}

	return []dto.DependencyStatus{redisStatus}
}

// OverallStatus folds component statuses into one value: any unhealthy
// component wins, then degraded, then healthy.
func OverallStatus(statuses []string) string {
	overall := dto.StatusHealthy
	for _, status := range statuses {
		switch status {
		case dto.StatusUnhealthy:
			return dto.StatusUnhealthy
		case dto.StatusDegraded:
			overall = dto.StatusDegraded
		}
	}
	return overall
}

// FormatUptime renders a duration as the legacy "1d 2h 3m 4s" style
func FormatUptime(d time.Duration) string {
	d = d.Round(time.Second)

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := d - minutes*time.Minute

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds/time.Second)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds/time.Second)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds/time.Second)
}
