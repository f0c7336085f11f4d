package record

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const MeterName = "github.com/GPA-Gruppo-Progetti-Avanzati-SRL/go-strsafe/record"

type Metrics struct {
	FieldsWritten   metric.Int64Counter
	FieldsTruncated metric.Int64Counter
	FieldsFailed    metric.Int64Counter
	CreateArea      metric.Int64Counter
	DestroyArea     metric.Int64Counter
	ActiveArea      metric.Int64UpDownCounter
	MarshalDuration metric.Int64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	var err error
	m := &Metrics{}
	if m.FieldsWritten, err = meter.Int64Counter("strsafe_record_fields_written",
		metric.WithDescription("Number of record fields written into their slot.")); err != nil {
		return nil, err
	}
	if m.FieldsTruncated, err = meter.Int64Counter("strsafe_record_fields_truncated",
		metric.WithDescription("Number of record fields truncated to fit their slot.")); err != nil {
		return nil, err
	}
	if m.FieldsFailed, err = meter.Int64Counter("strsafe_record_fields_failed",
		metric.WithDescription("Number of record fields rejected.")); err != nil {
		return nil, err
	}
	if m.CreateArea, err = meter.Int64Counter("strsafe_record_create_area_count",
		metric.WithDescription("Number of record areas created")); err != nil {
		return nil, err
	}
	if m.DestroyArea, err = meter.Int64Counter("strsafe_record_destroy_area_count",
		metric.WithDescription("Number of record areas destroyed")); err != nil {
		return nil, err
	}
	if m.ActiveArea, err = meter.Int64UpDownCounter("strsafe_record_active_area_count",
		metric.WithDescription("Number of record areas borrowed from the pool")); err != nil {
		return nil, err
	}
	if m.MarshalDuration, err = meter.Int64Histogram("strsafe_record_marshal_duration",
		metric.WithDescription("Duration of record marshalling"),
		metric.WithUnit("us")); err != nil {
		return nil, err
	}
	return m, nil
}

func GlobalMeter() metric.Meter {
	return otel.Meter(MeterName)
}

func noopMetrics() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider().Meter(MeterName))
	return m
}
