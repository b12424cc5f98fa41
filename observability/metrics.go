package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/guard/check"
)

// Taxonomy names used as the taxonomy attribute.
const (
	TaxonomyStandard     = "standard"
	TaxonomyInvariant    = "invariant"
	TaxonomyNonRetryable = "nonretryable"
)

// Attribute keys shared by metrics and span events.
const (
	AttrTaxonomy = attribute.Key("taxonomy")
	AttrKind     = attribute.Key("kind")
	AttrMessage  = attribute.Key("message")
)

// MetricFailures is the name of the failure counter.
const MetricFailures = "check.failures"

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recording check failures.
type Metrics struct {
	failures metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	failures, err := meter.Int64Counter(MetricFailures,
		metric.WithDescription("Number of failed checks by taxonomy and kind"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricFailures, err)
	}
	return &Metrics{failures: failures}, nil
}

// RecordFailure counts one failure.
func (m *Metrics) RecordFailure(ctx context.Context, taxonomy string, kind check.Kind) {
	m.failures.Add(ctx, 1, metric.WithAttributes(
		AttrTaxonomy.String(taxonomy),
		AttrKind.String(kind.String()),
	))
}

// Observer returns a check.Observer counting every failure it sees under
// the given taxonomy.
func (m *Metrics) Observer(taxonomy string) check.Observer {
	return check.ObserverFunc(func(err error) {
		kind, _ := check.KindOf(err)
		m.RecordFailure(context.Background(), taxonomy, kind)
	})
}
