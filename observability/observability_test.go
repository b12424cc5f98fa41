package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/guard/check"
	"github.com/kbukum/guard/invariant"
	"github.com/kbukum/guard/logger"
	"github.com/kbukum/guard/validation"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	return m, reader
}

// failureCounts collects check.failures data points keyed by "taxonomy/kind".
func failureCounts(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != MetricFailures {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("expected Sum[int64], got %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				taxonomy, _ := dp.Attributes.Value(AttrTaxonomy)
				kind, _ := dp.Attributes.Value(AttrKind)
				counts[taxonomy.AsString()+"/"+kind.AsString()] += dp.Value
			}
		}
	}
	return counts
}

func TestNewMetrics_Noop(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.RecordFailure(context.Background(), TaxonomyStandard, check.KindArgument)
}

func TestMetrics_RecordFailure(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordFailure(ctx, TaxonomyStandard, check.KindArgument)
	m.RecordFailure(ctx, TaxonomyStandard, check.KindArgument)
	m.RecordFailure(ctx, TaxonomyInvariant, check.KindState)

	counts := failureCounts(t, reader)
	if counts["standard/argument"] != 2 {
		t.Errorf("expected 2 standard/argument failures, got %d", counts["standard/argument"])
	}
	if counts["invariant/state"] != 1 {
		t.Errorf("expected 1 invariant/state failure, got %d", counts["invariant/state"])
	}
}

func TestMetrics_Observer(t *testing.T) {
	m, reader := newTestMetrics(t)
	f := check.Observed(validation.Factory(), m.Observer(TaxonomyStandard))

	if _, err := check.NotNil[*int](f, nil); err == nil {
		t.Fatal("expected failure")
	}
	if _, err := check.ValidIndex(f, []int{1}, 3); err == nil {
		t.Fatal("expected failure")
	}
	if _, err := check.NotNil(f, new(int)); err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}

	counts := failureCounts(t, reader)
	if counts["standard/null"] != 1 || counts["standard/index"] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}
	if len(counts) != 2 {
		t.Errorf("passing checks must not be counted, got %v", counts)
	}
}

func TestSpanObserver(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	ctx, span := tp.Tracer("test").Start(context.Background(), "handle")
	f := check.Observed(invariant.Factory(), SpanObserver(ctx, TaxonomyInvariant))
	if err := check.ValidState(f, false, check.Msg("Cache must be warm")); err == nil {
		t.Fatal("expected failure")
	}
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	events := spans[0].Events()
	if len(events) != 1 || events[0].Name != EventFailure {
		t.Fatalf("expected one %s event, got %v", EventFailure, events)
	}

	want := map[attribute.Key]string{
		AttrTaxonomy: "invariant",
		AttrKind:     "state",
		AttrMessage:  "Cache must be warm",
	}
	for _, kv := range events[0].Attributes {
		if w, ok := want[kv.Key]; ok && kv.Value.AsString() != w {
			t.Errorf("%s = %q, want %q", kv.Key, kv.Value.AsString(), w)
		}
		delete(want, kv.Key)
	}
	if len(want) != 0 {
		t.Errorf("missing attributes %v", want)
	}
}

func TestSpanObserver_NoSpan(t *testing.T) {
	f := check.Observed(invariant.Factory(), SpanObserver(context.Background(), TaxonomyInvariant))
	if err := check.IsTrue(f, false); err == nil {
		t.Fatal("expected failure")
	}
}

func TestDefaultExportConfig(t *testing.T) {
	cfg := DefaultExportConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func shutdownQuickly(t *testing.T, shutdown func(context.Context) error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	// Nothing listens on the endpoint; only the code path matters.
	_ = shutdown(ctx)
}

func TestInitMeter(t *testing.T) {
	for _, insecure := range []bool{true, false} {
		cfg := DefaultExportConfig("test")
		cfg.Insecure = insecure

		mp, err := InitMeter(context.Background(), cfg, logger.Nop())
		if err != nil {
			t.Fatalf("InitMeter(insecure=%v): %v", insecure, err)
		}
		shutdownQuickly(t, mp.Shutdown)
	}
}

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
	}{
		{"always sample", 1.0},
		{"never sample", 0.0},
		{"ratio based", 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultExportConfig("test")
			cfg.SampleRate = tc.sampleRate

			tp, err := InitTracer(context.Background(), cfg, nil)
			if err != nil {
				t.Fatalf("InitTracer: %v", err)
			}
			shutdownQuickly(t, tp.Shutdown)
		})
	}
}
