package config

const (
	defaultServerPort = 8080

	defaultDBMaxOpenConns = 1
	defaultDBMaxIdleConns = 1

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":                          DriverSQLite,
		"database.dsn":                             "data/todos.db",
		"database.max_open_conns":                  defaultDBMaxOpenConns,
		"database.max_idle_conns":                  defaultDBMaxIdleConns,
		"database.conn_max_lifetime":               "0s",
		"database.slow_query_threshold":            "200ms",
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-service",

		"metrics.enabled": true,
		"metrics.path":    "/metrics",
	}
}
