package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
)

// Validate reports every invalid setting at once, joined with errors.Join.
// Each message starts with the dotted koanf key of the offending value.
func (c *Config) Validate() error {
	var v validator

	v.check(c.Server.Port >= 1 && c.Server.Port <= 65535,
		"server.port must be between 1 and 65535, got %d", c.Server.Port)
	v.check(c.Server.ReadTimeout > 0, "server.read_timeout must be positive, got %s", c.Server.ReadTimeout)
	v.check(c.Server.WriteTimeout > 0, "server.write_timeout must be positive, got %s", c.Server.WriteTimeout)

	_, levelErr := logging.ParseLevel(c.Log.Level)
	v.check(levelErr == nil, "log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	v.oneOf("log.format", c.Log.Format, logging.FormatJSON, logging.FormatText)

	c.Database.validate(&v)

	if c.Telemetry.Enabled {
		v.oneOf("telemetry.exporter", c.Telemetry.Exporter, telemetry.ExporterStdout, telemetry.ExporterOTLP)
		v.check(c.Telemetry.Exporter != telemetry.ExporterOTLP || c.Telemetry.Endpoint != "",
			"telemetry.endpoint is required when the exporter is %s", telemetry.ExporterOTLP)
	}

	if c.Metrics.Enabled {
		v.check(strings.HasPrefix(c.Metrics.Path, "/"), "metrics.path must start with '/', got %q", c.Metrics.Path)
	}

	return v.err()
}

func (d *DatabaseConfig) validate(v *validator) {
	v.oneOf("database.driver", d.Driver, DriverSQLite, DriverPostgres)
	v.check(strings.TrimSpace(d.DSN) != "", "database.dsn must not be blank")
	v.check(d.MaxOpenConns >= 0, "database.max_open_conns must not be negative, got %d", d.MaxOpenConns)
	v.check(d.MaxIdleConns >= 0, "database.max_idle_conns must not be negative, got %d", d.MaxIdleConns)

	cb := d.CircuitBreaker
	v.check(cb.MaxFailures >= 1, "database.circuit_breaker.max_failures must be at least 1, got %d", cb.MaxFailures)
	v.check(cb.Timeout > 0, "database.circuit_breaker.timeout must be positive, got %s", cb.Timeout)
}

// validator accumulates failed checks.
type validator struct {
	errs []error
}

func (v *validator) check(ok bool, format string, args ...any) {
	if !ok {
		v.errs = append(v.errs, fmt.Errorf(format, args...))
	}
}

func (v *validator) oneOf(key, got string, allowed ...string) {
	v.check(slices.Contains(allowed, got), "%s must be one of %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (v *validator) err() error {
	return errors.Join(v.errs...)
}
