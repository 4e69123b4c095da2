package observe

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records request executor activity.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordRequest records one logical request: total duration across
	// all attempts, the attempt count, the final HTTP status (0 when no
	// response was received) and the final error, if any.
	RecordRequest(ctx context.Context, meta RequestMeta, duration time.Duration, attempts, status int, err error)
}

type metricsImpl struct {
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	retryCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates a Metrics backed by the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"brokerage.request.total",
		metric.WithDescription("Total number of brokerage requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"brokerage.request.errors",
		metric.WithDescription("Total number of failed brokerage requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	retryCount, err := meter.Int64Counter(
		"brokerage.request.retries",
		metric.WithDescription("Total number of retry attempts beyond the first"),
		metric.WithUnit("{retry}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"brokerage.request.duration_ms",
		metric.WithDescription("Brokerage request duration in milliseconds, retries included"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		totalCount:   totalCount,
		errorCount:   errorCount,
		retryCount:   retryCount,
		durationHist: durationHist,
	}, nil
}

func (m *metricsImpl) RecordRequest(ctx context.Context, meta RequestMeta, duration time.Duration, attempts, status int, err error) {
	// Path is deliberately excluded: it embeds account and order IDs and
	// would explode attribute cardinality.
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", meta.Method),
		attribute.String("server.address", meta.Host),
		attribute.String("brokerage.auth", meta.Auth),
	}
	if status != 0 {
		attrs = append(attrs, attribute.String("http.response.status_code", strconv.Itoa(status)))
	}
	opt := metric.WithAttributes(attrs...)

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	if attempts > 1 {
		m.retryCount.Add(ctx, int64(attempts-1), opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// NewNoopMetrics returns a Metrics that records nothing.
func NewNoopMetrics() Metrics {
	return noopMetrics{}
}

type noopMetrics struct{}

func (noopMetrics) RecordRequest(context.Context, RequestMeta, time.Duration, int, int, error) {}

var _ Metrics = (*metricsImpl)(nil)
