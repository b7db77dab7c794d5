package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "projecthall"

// MetricsBuilder 两个 server 共用一份指标，用 server 标签区分
type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := []string{"server", "method", "path", "status_code"}
	summaryVec := factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		labels,
	)

	counterVec := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		labels,
	)

	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

// Build server 是 web 或者 admin
func (a *MetricsBuilder) Build(server string) gin.HandlerFunc {
	serverLabel := prometheus.Labels{"server": server}
	summary := a.summaryVec.MustCurryWith(serverLabel)
	counter := a.counterVec.MustCurryWith(serverLabel)
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		duration := time.Since(start).Seconds()

		method := ctx.Request.Method
		// 没有匹配上路由的请求统一记成一个 path，避免标签爆炸
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())

		summary.WithLabelValues(method, path, statusCode).Observe(duration)
		counter.WithLabelValues(method, path, statusCode).Inc()
	}
}
