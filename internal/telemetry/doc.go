// Package telemetry обеспечивает наблюдаемость системы.
//
// Включает:
//   - logging.go — structured logging через slog
//
// Все бинарники используют единый формат логирования;
// Prometheus метрики экспортируются на /metrics endpoint.
package telemetry
