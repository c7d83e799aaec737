// Package telemetry records journal activity as OpenTelemetry metrics.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	mindmirror "github.com/unowned-ai/mindmirror/pkg"
	"github.com/unowned-ai/mindmirror/pkg/journal"
)

const serviceName = "mindmirror"

type Config struct {
	// Endpoint of an OTLP gRPC collector. Empty disables export.
	Endpoint string
	Insecure bool
}

// Metrics holds the journal instruments. A nil *Metrics records nothing.
type Metrics struct {
	provider        *sdkmetric.MeterProvider
	entriesRecorded metric.Int64Counter
	intensity       metric.Int64Histogram
	rejections      metric.Int64Counter
}

// New builds a meter provider exporting to cfg.Endpoint, if set, and to any
// extra readers (tests pass a manual reader).
func New(ctx context.Context, cfg Config, readers ...sdkmetric.Reader) (*Metrics, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(mindmirror.Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, r := range readers {
		opts = append(opts, sdkmetric.WithReader(r))
	}

	if cfg.Endpoint != "" {
		expOpts := []otlpmetricgrpc.Option{
			otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
		}
		if cfg.Insecure {
			expOpts = append(expOpts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
			expOpts = append(expOpts, otlpmetricgrpc.WithInsecure())
		}
		exp, err := otlpmetricgrpc.New(ctx, expOpts...)
		if err != nil {
			return nil, fmt.Errorf("creating OTLP exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)))
	}

	provider := sdkmetric.NewMeterProvider(opts...)
	meter := provider.Meter(serviceName)

	entriesRecorded, err := meter.Int64Counter(
		"mindmirror_entries_recorded_total",
		metric.WithDescription("Journal entries built and stored"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating entries counter: %w", err)
	}

	intensity, err := meter.Int64Histogram(
		"mindmirror_entry_intensity",
		metric.WithDescription("Emotional intensity of recorded entries"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating intensity histogram: %w", err)
	}

	rejections, err := meter.Int64Counter(
		"mindmirror_builder_rejections_total",
		metric.WithDescription("Entries rejected before reaching the store"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rejections counter: %w", err)
	}

	return &Metrics{
		provider:        provider,
		entriesRecorded: entriesRecorded,
		intensity:       intensity,
		rejections:      rejections,
	}, nil
}

// RecordEntry counts a stored entry by valence and records its intensity.
func (m *Metrics) RecordEntry(ctx context.Context, entry journal.Entry) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("valence", string(entry.Emotions.Valence)))
	m.entriesRecorded.Add(ctx, 1, attrs)
	m.intensity.Record(ctx, int64(entry.Emotions.Intensity), attrs)
}

// RecordRejection counts an entry that failed validation or insertion.
func (m *Metrics) RecordRejection(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.rejections.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// Shutdown flushes pending exports.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}
