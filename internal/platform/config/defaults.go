package config

const (
	defaultServerPort = 4000

	defaultMaxOpenConns = 50
	defaultMaxIdleConns = 10

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultClientWorkers = 4
	defaultCORSMaxAge    = 300
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "5s",

		"log.level":             "info",
		"log.format":            "json",
		"log.file.path":         "",
		"log.file.max_size_mb":  100,
		"log.file.max_backups":  3,
		"log.file.max_age_days": 28,
		"log.file.compress":     false,

		"database.driver":            "sqlite",
		"database.dsn":               "file:todoapp.db?_pragma=busy_timeout(5000)",
		"database.max_open_conns":    defaultMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": "60m",
		"database.auto_migrate":      true,
		"database.slow_threshold":    "200ms",
		"database.log_level":         "warn",

		"cors.allowed_origins": []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://action.playsoft.io",
			"https://action.playsoft.io",
		},
		"cors.allowed_methods": []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		"cors.allowed_headers": []string{"Accept", "Content-Type", "X-Request-ID", "X-Correlation-ID"},
		"cors.max_age":         defaultCORSMaxAge,

		"metrics.enabled": true,
		"metrics.path":    "/metrics",

		"client.base_url":                        "http://localhost:4000",
		"client.timeout":                         "10s",
		"client.workers":                         defaultClientWorkers,
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todoapp",
	}
}
