package metrics

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
	"marketplace/pkg/logger"
)

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "Host memory usage in bytes",
		},
	)

	ProcessCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_cpu_usage_percent",
			Help: "CPU usage of this process, percent of one core",
		},
	)

	ProcessResidentMemory = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_resident_memory_bytes",
			Help: "Resident set size of this process",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Go heap allocation in bytes",
		},
	)

	ApplicationGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_goroutines",
			Help: "Number of live goroutines",
		},
	)
)

const (
	systemMetricsInterval = 5 * time.Second
	cpuSampleWindow       = time.Second
)

// StartSystemMetricsCollector снимает метрики хоста и процесса, пока ctx не отменен.
// Если процесс недоступен gopsutil (например, в песочнице), собираются только метрики хоста и рантайма.
func StartSystemMetricsCollector(ctx context.Context, log logger.Logger) {
	self, err := process.NewProcessWithContext(ctx, int32(os.Getpid())) //nolint:gosec // pid помещается в int32
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Warn("process metrics disabled")
		self = nil
	}

	go func() {
		ticker := time.NewTicker(systemMetricsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx, self)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, self *process.Process) {
	cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	if self != nil {
		if percent, err := self.CPUPercentWithContext(ctx); err == nil {
			ProcessCPUUsage.Set(percent)
		}
		if memInfo, err := self.MemoryInfoWithContext(ctx); err == nil {
			ProcessResidentMemory.Set(float64(memInfo.RSS))
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	ApplicationMemoryUsage.Set(float64(m.Alloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))
}
