package utils

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

var (
	cpuUsageGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Current CPU usage percentage",
	})

	memUsageGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_usage_percent",
		Help: "Current memory usage percentage",
	})
)

// StartSystemMetrics samples CPU and memory usage into Prometheus
// gauges until the interval loop is stopped with the returned func.
func StartSystemMetrics(interval time.Duration) func() {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if percentage, err := cpu.Percent(0, false); err == nil && len(percentage) > 0 {
					cpuUsageGauge.Set(percentage[0])
				}
				if vm, err := mem.VirtualMemory(); err == nil {
					memUsageGauge.Set(vm.UsedPercent)
				}
			}
		}
	}()

	return func() { close(done) }
}
