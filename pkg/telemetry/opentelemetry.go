package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/goto/salt/log"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/contrib/samplers/probability/consistent"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
	"google.golang.org/grpc/encoding/gzip"
)

type OpenTelemetryConfig struct {
	Enabled                bool          `yaml:"enabled" mapstructure:"enabled" default:"false"`
	CollectorAddr          string        `yaml:"collector_addr" mapstructure:"collector_addr" default:"localhost:4317"`
	Compress               bool          `yaml:"compress" mapstructure:"compress" default:"true"`
	PeriodicReadInterval   time.Duration `yaml:"periodic_read_interval" mapstructure:"periodic_read_interval" default:"15s"`
	TraceSampleProbability float64       `yaml:"trace_sample_probability" mapstructure:"trace_sample_probability" default:"1"`
}

// shutdownFunc flushes and stops one provider
type shutdownFunc func(ctx context.Context) error

func initOTLP(ctx context.Context, cfg Config, logger log.Logger) (func(), error) {
	if !cfg.OpenTelemetry.Enabled {
		logger.Info("opentelemetry is disabled, searches are not traced")
		return noOp, nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var shutdowns []shutdownFunc
	cleanUp := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracePeriod)
		defer cancel()
		// reverse order of initialization
		for i := len(shutdowns) - 1; i >= 0; i-- {
			if err := shutdowns[i](shutdownCtx); err != nil {
				logger.Error("opentelemetry provider failed to shutdown", "err", err)
			}
		}
	}

	meterShutdown, err := initGlobalMeter(ctx, res, cfg.OpenTelemetry)
	if err != nil {
		return nil, err
	}
	shutdowns = append(shutdowns, meterShutdown)

	tracerShutdown, err := initGlobalTracer(ctx, res, cfg.OpenTelemetry)
	if err != nil {
		cleanUp()
		return nil, err
	}
	shutdowns = append(shutdowns, tracerShutdown)

	if err := host.Start(); err != nil {
		cleanUp()
		return nil, fmt.Errorf("start host instrumentation: %w", err)
	}
	if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(cfg.OpenTelemetry.PeriodicReadInterval)); err != nil {
		cleanUp()
		return nil, fmt.Errorf("start runtime instrumentation: %w", err)
	}

	logger.Info("opentelemetry is enabled", "collector", cfg.OpenTelemetry.CollectorAddr,
		"sample_probability", sampleProbability(cfg.OpenTelemetry.TraceSampleProbability))
	return cleanUp, nil
}

func newResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.AppName),
			semconv.ServiceVersion(cfg.AppVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return res, nil
}

func initGlobalMeter(ctx context.Context, res *resource.Resource, cfg OpenTelemetryConfig) (shutdownFunc, error) {
	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.CollectorAddr),
		otlpmetricgrpc.WithInsecure(),
	}
	if cfg.Compress {
		opts = append(opts, otlpmetricgrpc.WithCompressor(gzip.Name))
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.PeriodicReadInterval))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)
	return provider.Shutdown, nil
}

func initGlobalTracer(ctx context.Context, res *resource.Resource, cfg OpenTelemetryConfig) (shutdownFunc, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(cfg.CollectorAddr),
		otlptracegrpc.WithInsecure(),
	}
	if cfg.Compress {
		opts = append(opts, otlptracegrpc.WithCompressor(gzip.Name))
	}
	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(newSampler(cfg.TraceSampleProbability)),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return provider.Shutdown, nil
}

// newSampler honours the caller's sampling decision and samples root spans
// with the given probability
func newSampler(probability float64) sdktrace.Sampler {
	return sdktrace.ParentBased(consistent.ProbabilityBased(sampleProbability(probability)))
}

func sampleProbability(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

func noOp() {}
