package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry returns a registry with the runtime and process collectors, a
// gymmetrics_version_info gauge labelled with version, and any extra collectors
// (the db pool collector, when postgres is used).
func NewRegistry(version string, extra ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	versionInfo := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "gymmetrics_version_info",
		Help:        "Always 1; the version label carries the running build.",
		ConstLabels: prometheus.Labels{"version": version},
	})
	versionInfo.Set(1)

	promRegistry.MustRegister(
		versionInfo,
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promRegistry.MustRegister(extra...)

	return promRegistry
}
