// Package observability exports check failures through OpenTelemetry.
//
// Metrics counts failures per taxonomy and kind:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultExportConfig("billing"), log)
//	defer mp.Shutdown(ctx)
//
//	m, err := observability.NewMetrics(observability.Meter("billing"))
//	f := check.Observed(validation.Factory(), m.Observer(observability.TaxonomyStandard))
//
// SpanObserver records each failure as an event on the span carried by a
// request context:
//
//	f := check.Observed(invariant.Factory(), observability.SpanObserver(ctx, observability.TaxonomyInvariant))
package observability
