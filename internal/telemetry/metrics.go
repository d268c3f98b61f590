package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики HTTP-запросов к Pollination API.
var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pollination_api_requests_total",
		Help: "Total number of requests sent to the Pollination API",
	}, []string{"method", "status"})

	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pollination_api_request_duration_seconds",
		Help:    "Duration of Pollination API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

// ObserveAPIRequest регистрирует один выполненный запрос к API.
// status == 0 означает транспортную ошибку (ответ не получен).
func ObserveAPIRequest(method string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	apiRequestsTotal.WithLabelValues(method, label).Inc()
	apiRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// MetricsHandler возвращает mux с /healthz и /metrics.
// Используется долгоживущими командами (watch, quickstart).
func MetricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
