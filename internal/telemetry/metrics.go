// Package telemetry exposes Prometheus metrics for the MCP file server.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors on a private registry so
// tests can run side by side without default-registry collisions.
type Metrics struct {
	registry *prometheus.Registry

	operationsTotal  *prometheus.CounterVec
	operationSeconds *prometheus.HistogramVec
	bytesRead        prometheus.Counter
	bytesWritten     prometheus.Counter
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mcp_file_server",
				Name:      "operations_total",
				Help:      "Total tool calls by tool name and outcome.",
			},
			[]string{"tool", "outcome"},
		),
		operationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "mcp_file_server",
				Name:      "operation_duration_seconds",
				Help:      "Tool call latency by tool name.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		bytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mcp_file_server",
			Name:      "bytes_read_total",
			Help:      "Total bytes returned by read_file calls.",
		}),
		bytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mcp_file_server",
			Name:      "bytes_written_total",
			Help:      "Total bytes written by create_file calls.",
		}),
	}

	registry.MustRegister(
		m.operationsTotal,
		m.operationSeconds,
		m.bytesRead,
		m.bytesWritten,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveToolCall records one completed tool call.
func (m *Metrics) ObserveToolCall(tool, outcome string, d time.Duration) {
	m.operationsTotal.WithLabelValues(tool, outcome).Inc()
	m.operationSeconds.WithLabelValues(tool).Observe(d.Seconds())
}

// AddBytesRead accounts file content returned to clients.
func (m *Metrics) AddBytesRead(n int) {
	m.bytesRead.Add(float64(n))
}

// AddBytesWritten accounts file content written for clients.
func (m *Metrics) AddBytesWritten(n int) {
	m.bytesWritten.Add(float64(n))
}

// Handler returns the HTTP handler serving the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
