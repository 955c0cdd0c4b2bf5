package dto

import (
	"time"

	"go-datasvc/pkg/version"
)

// Status values reported by the health endpoints
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthBody is the basic liveness payload
type HealthBody struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// HealthOutput wraps the basic health response
type HealthOutput struct {
	Body HealthBody
}

// ComponentStatus is the health of one service component
type ComponentStatus struct {
	Component   string    `json:"component"`
	Status      string    `json:"status"`
	Message     string    `json:"message,omitempty"`
	LastChecked time.Time `json:"last_checked"`
}

// StatusBody aggregates component health
type StatusBody struct {
	Timestamp     time.Time                  `json:"timestamp"`
	OverallStatus string                     `json:"overall_status"`
	Components    map[string]ComponentStatus `json:"components"`
}

// StatusOutput wraps the aggregated status response
type StatusOutput struct {
	Body StatusBody
}

// DetailedBody carries build and runtime detail
type DetailedBody struct {
	Status          string       `json:"status"`
	Environment     string       `json:"environment"`
	Version         version.Info `json:"version"`
	UptimeSeconds   int64        `json:"uptime_seconds"`
	UptimeFormatted string       `json:"uptime_formatted"`
	Goroutines      int          `json:"goroutines"`
	HeapBytes       uint64       `json:"heap_bytes"`
	TotalBytes      uint64       `json:"total_bytes"`
}

// DetailedOutput wraps the detailed health response
type DetailedOutput struct {
	Body DetailedBody
}

// DependencyStatus is the probe result for one external dependency
type DependencyStatus struct {
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	Message      string    `json:"message,omitempty"`
	ResponseTime string    `json:"response_time,omitempty"`
	LastChecked  time.Time `json:"last_checked"`
}

// DependenciesBody lists every probed dependency
type DependenciesBody struct {
	Timestamp     time.Time          `json:"timestamp"`
	OverallStatus string             `json:"overall_status"`
	Dependencies  []DependencyStatus `json:"dependencies"`
}

// DependenciesOutput wraps the dependency probe response
type DependenciesOutput struct {
	Body DependenciesBody
}

// RuntimeSample is one scheduled snapshot of process vitals
type RuntimeSample struct {
	Timestamp  time.Time `json:"timestamp"`
	HeapBytes  uint64    `json:"heap_bytes"`
	TotalBytes uint64    `json:"total_bytes"`
	Goroutines int       `json:"goroutines"`
	GCCycles   uint32    `json:"gc_cycles"`
}

// DiagnosticsBody carries the recent runtime sample window
type DiagnosticsBody struct {
	Timestamp time.Time       `json:"timestamp"`
	Samples   []RuntimeSample `json:"samples"`
}

// DiagnosticsOutput wraps the diagnostics response
type DiagnosticsOutput struct {
	Body DiagnosticsBody
}
