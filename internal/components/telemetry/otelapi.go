package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OtelAPI forwards every report to an inner API and additionally records
// counts and broken/warning occurrences as otel metrics.
type OtelAPI struct {
	inner   API
	counts  metric.Int64Gauge
	reports metric.Int64Counter
}

// NewOtelAPI creates an OtelAPI using the global meter provider, so it should be
// called after Setup.
func NewOtelAPI(meterName string, inner API) (OtelAPI, error) {
	meter := otel.Meter(meterName)
	counts, err := meter.Int64Gauge("report_count")
	if err != nil {
		return OtelAPI{}, err
	}
	reports, err := meter.Int64Counter("reports")
	if err != nil {
		return OtelAPI{}, err
	}
	return OtelAPI{inner: inner, counts: counts, reports: reports}, nil
}

func (o OtelAPI) ReportBroken(id string, params ...any) {
	o.reports.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("id", id),
		attribute.String("severity", "broken"),
	))
	o.inner.ReportBroken(id, params...)
}

func (o OtelAPI) ReportWarning(id string, params ...any) {
	o.reports.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("id", id),
		attribute.String("severity", "warning"),
	))
	o.inner.ReportWarning(id, params...)
}

func (o OtelAPI) ReportDebug(msg string, params ...any) {
	o.inner.ReportDebug(msg, params...)
}

func (o OtelAPI) ReportCount(id string, count int64) {
	o.counts.Record(context.Background(), count, metric.WithAttributes(
		attribute.String("id", id),
	))
	o.inner.ReportCount(id, count)
}
