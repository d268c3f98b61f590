// Package telemetry обеспечивает наблюдаемость клиента.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики HTTP-запросов к API
//
// Короткоживущие команды пишут только логи; долгоживущие (watch,
// quickstart) дополнительно экспортируют метрики на /metrics endpoint,
// если задан POLLINATION_METRICS_ADDR.
package telemetry
