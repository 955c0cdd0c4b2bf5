package services

import (
	"context"
	"testing"
	"time"

	"go-datasvc/internal/health/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{
			name:     "all healthy",
			statuses: []string{dto.StatusHealthy, dto.StatusHealthy},
			want:     dto.StatusHealthy,
		},
		{
			name:     "degraded wins over healthy",
			statuses: []string{dto.StatusHealthy, dto.StatusDegraded},
			want:     dto.StatusDegraded,
		},
		{
			name:     "unhealthy wins over everything",
			statuses: []string{dto.StatusDegraded, dto.StatusUnhealthy, dto.StatusHealthy},
			want:     dto.StatusUnhealthy,
		},
		{
			name:     "empty defaults to healthy",
			statuses: nil,
			want:     dto.StatusHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverallStatus(tt.statuses))
		})
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{
			name: "seconds only",
			d:    42 * time.Second,
			want: "0m 42s",
		},
		{
			name: "minutes and seconds",
			d:    3*time.Minute + 5*time.Second,
			want: "3m 5s",
		},
		{
			name: "hours",
			d:    2*time.Hour + 3*time.Minute + 4*time.Second,
			want: "2h 3m 4s",
		},
		{
			name: "days",
			d:    26*time.Hour + 5*time.Minute,
			want: "1d 2h 5m 0s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUptime(tt.d))
		})
	}
}

func TestService_SampleWindow(t *testing.T) {
	service := NewService(nil)

	for i := 0; i < maxSamples+10; i++ {
		service.sample()
	}

	samples := service.Samples()
	assert.Len(t, samples, maxSamples)

	for _, s := range samples {
		assert.False(t, s.Timestamp.IsZero())
		assert.Positive(t, s.Goroutines)
		assert.Positive(t, s.HeapBytes)
	}
}

func TestService_SamplesReturnsCopy(t *testing.T) {
	service := NewService(nil)
	service.sample()

	samples := service.Samples()
	require.Len(t, samples, 1)
	samples[0].Goroutines = -1

	assert.NotEqual(t, -1, service.Samples()[0].Goroutines)
}

func TestService_ComponentStatuses_NoSessionStore(t *testing.T) {
	service := NewService(nil)

	components := service.ComponentStatuses(context.Background())

	require.Contains(t, components, "getdata")
	assert.Equal(t, dto.StatusHealthy, components["getdata"].Status)

	require.Contains(t, components, "session_store")
	assert.Equal(t, dto.StatusDegraded, components["session_store"].Status)
	assert.Contains(t, components["session_store"].Message, "not configured")
}

func TestService_CheckDependencies_NoRedis(t *testing.T) {
	service := NewService(nil)

	deps := service.CheckDependencies(context.Background())
	require.Len(t, deps, 1)

	assert.Equal(t, "redis", deps[0].Name)
	assert.Equal(t, dto.StatusDegraded, deps[0].Status)
}

func TestService_Uptime(t *testing.T) {
	service := NewService(nil)
	time.Sleep(10 * time.Millisecond)
	assert.Positive(t, service.Uptime())
}
