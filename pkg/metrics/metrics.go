package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pesquisa"

// 参与者操作结果标签
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	once     sync.Once
	registry *prometheus.Registry

	// HTTPRequestsTotal 按方法、路由、状态码统计请求数
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTPRequestDurationSeconds 请求耗时分布
	HTTPRequestDurationSeconds *prometheus.HistogramVec
	// ParticipantOperationsTotal 参与者关联/停用操作计数
	ParticipantOperationsTotal *prometheus.CounterVec
)

// Init 初始化指标注册表（幂等）
func Init() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		HTTPRequestsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		)
		HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "endpoint"},
		)
		ParticipantOperationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "participant_operations_total",
				Help:      "Participant association and deactivation operations",
			},
			[]string{"role", "operation", "outcome"},
		)

		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			ParticipantOperationsTotal,
		)
	})
	return registry
}

// ObserveParticipantOp 记录一次参与者操作
func ObserveParticipantOp(role, operation, outcome string) {
	Init()
	ParticipantOperationsTotal.WithLabelValues(role, operation, outcome).Inc()
}

// Handler 暴露 /metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(Init(), promhttp.HandlerOpts{EnableOpenMetrics: true})
}
