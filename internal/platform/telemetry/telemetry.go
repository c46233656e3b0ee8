// Package telemetry wires OpenTelemetry tracing and metrics for the service.
//
// Setup builds both providers from one Options value and installs them as the
// global providers:
//
//	p, err := telemetry.Setup(ctx, telemetry.Options{
//		ServiceName: "todo-service",
//		Exporter:    telemetry.ExporterOTLP,
//		Endpoint:    "http://otel-collector:4318",
//	})
//	defer p.Shutdown(ctx)
//
// The instruments in p.Metrics are shared by the HTTP middleware and the
// storage repository.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted in Options.Exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

const meterScope = "github.com/jsamuelsen11/todo-service"

// Metric label keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrDBOperation = attribute.Key("db.operation")
	AttrDBSystem    = attribute.Key("db.system")
	AttrResult      = attribute.Key("result")
)

var (
	errUnsupportedExporter = errors.New("unsupported exporter")
	errMissingEndpoint     = errors.New("otlp exporter requires an endpoint")
)

// Options selects where telemetry is sent.
type Options struct {
	ServiceName string
	// Exporter is ExporterStdout or ExporterOTLP.
	Exporter string
	// Endpoint is the OTLP/HTTP collector URL. An https scheme enables TLS.
	Endpoint string
}

// Providers owns the tracer and meter providers built by Setup. A zero
// Providers is valid and shuts down as a no-op.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup builds the tracer provider, the meter provider and the service
// instruments. On failure everything already started is shut down.
func Setup(ctx context.Context, opts Options) (*Providers, error) {
	p := &Providers{}

	var err error
	if p.Tracer, err = InitTracer(ctx, opts); err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	if p.Meter, err = InitMeter(ctx, opts); err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	if p.Metrics, err = NewMetrics(p.Meter, opts.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return p, nil
}

// Shutdown flushes and stops whichever providers were started.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// InitTracer builds a batching TracerProvider and installs it globally along
// with the W3C trace-context and baggage propagators.
func InitTracer(ctx context.Context, opts Options) (*sdktrace.TracerProvider, error) {
	res, err := serviceResource(opts.ServiceName)
	if err != nil {
		return nil, err
	}

	var exp sdktrace.SpanExporter
	switch opts.Exporter {
	case ExporterStdout:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		var c collector
		if c, err = parseCollector(opts.Endpoint); err == nil {
			exp, err = otlptracehttp.New(ctx, c.traceOptions()...)
		}
	default:
		err = fmt.Errorf("%w: %q", errUnsupportedExporter, opts.Exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter builds a MeterProvider with a periodic reader and installs it
// globally.
func InitMeter(ctx context.Context, opts Options) (*sdkmetric.MeterProvider, error) {
	res, err := serviceResource(opts.ServiceName)
	if err != nil {
		return nil, err
	}

	var exp sdkmetric.Exporter
	switch opts.Exporter {
	case ExporterStdout:
		exp, err = stdoutmetric.New()
	case ExporterOTLP:
		var c collector
		if c, err = parseCollector(opts.Endpoint); err == nil {
			exp, err = otlpmetrichttp.New(ctx, c.metricOptions()...)
		}
	default:
		err = fmt.Errorf("%w: %q", errUnsupportedExporter, opts.Exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// Metrics holds the service's metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	DBOperationDuration   metric.Float64Histogram
	DBOperationTotal      metric.Int64Counter
}

// NewMetrics registers the service instruments on mp.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(meterScope,
		metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)),
	)

	m := &Metrics{}
	var errs []error
	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal = counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}")
	m.DBOperationDuration = histogram("db.operation.duration", "Duration of database transactions")
	m.DBOperationTotal = counter("db.operation.total", "Total number of database transactions", "{operation}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordDBOperation records the duration and outcome of one repository
// operation. result is "success", "not_found" or "error". No-op on a nil
// receiver so the repository can run without telemetry.
func (m *Metrics) RecordDBOperation(ctx context.Context, operation, system, result string, start time.Time) {
	if m == nil {
		return
	}
	set := metric.WithAttributes(
		AttrDBOperation.String(operation),
		AttrDBSystem.String(system),
		AttrResult.String(result),
	)
	m.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), set)
	m.DBOperationTotal.Add(ctx, 1, set)
}

func serviceResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

// collector is a parsed OTLP/HTTP endpoint.
type collector struct {
	host     string
	insecure bool
}

// parseCollector accepts a URL ("https://otel:4318") or a bare host:port.
// Anything other than an https URL is dialed without TLS.
func parseCollector(endpoint string) (collector, error) {
	if endpoint == "" {
		return collector{}, errMissingEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return collector{host: endpoint, insecure: true}, nil
	}
	return collector{host: u.Host, insecure: u.Scheme != "https"}, nil
}

func (c collector) traceOptions() []otlptracehttp.Option {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(c.host)}
	if c.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

func (c collector) metricOptions() []otlpmetrichttp.Option {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(c.host)}
	if c.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return opts
}
