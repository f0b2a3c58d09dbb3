package provider

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/metrics"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

// platformNames match what users expect to hear ("Linux", not "linux")
var platformNames = map[string]string{
	"linux":   "Linux",
	"darwin":  "Darwin",
	"windows": "Windows",
	"freebsd": "FreeBSD",
}

// Telemetry samples CPU, memory and disk usage of the host
type Telemetry struct {
	interval time.Duration
	diskPath string
	logger   *zap.Logger
}

// NewTelemetry creates a sampler. The CPU reading blocks for interval.
func NewTelemetry(interval time.Duration, logger *zap.Logger) *Telemetry {
	diskPath := "/"
	if runtime.GOOS == "windows" {
		diskPath = `C:\`
	}
	return &Telemetry{
		interval: interval,
		diskPath: diskPath,
		logger:   logger.With(zap.String("component", "provider.telemetry")),
	}
}

// Fetch takes one sample
func (t *Telemetry) Fetch(ctx context.Context) (*model.SystemStats, error) {
	percents, err := cpu.PercentWithContext(ctx, t.interval, false)
	if err != nil {
		return nil, fmt.Errorf("cpu percent: %w", err)
	}
	if len(percents) == 0 {
		return nil, fmt.Errorf("cpu percent: %w", ErrNoData)
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("virtual memory: %w", err)
	}

	du, err := disk.UsageWithContext(ctx, t.diskPath)
	if err != nil {
		return nil, fmt.Errorf("disk usage: %w", err)
	}

	stats := &model.SystemStats{
		CPUPercent:    percents[0],
		MemoryTotal:   vm.Total,
		MemoryUsed:    vm.Used,
		MemoryPercent: vm.UsedPercent,
		DiskTotal:     du.Total,
		DiskUsed:      du.Used,
		DiskFree:      du.Free,
		Platform:      PlatformName(runtime.GOOS),
	}
	if info, err := host.InfoWithContext(ctx); err == nil {
		stats.PlatformVersion = info.PlatformVersion
	}
	return stats, nil
}

// Lookup is Fetch with failures degraded to absence
func (t *Telemetry) Lookup(ctx context.Context) (*model.SystemStats, bool) {
	started := time.Now()
	s, err := t.Fetch(ctx)
	if err != nil {
		metrics.ObserveProvider(NameTelemetry, metrics.OutcomeUnavailable, started)
		t.logger.Warn("system telemetry failed", zap.Error(err))
		return nil, false
	}
	metrics.ObserveProvider(NameTelemetry, metrics.OutcomeOK, started)
	return s, true
}

// PlatformName returns the display name for a GOOS value
func PlatformName(goos string) string {
	if name, ok := platformNames[goos]; ok {
		return name
	}
	return goos
}
