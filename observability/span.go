package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/guard/check"
)

// EventFailure is the span event name used by SpanObserver.
const EventFailure = "check.failure"

// SpanObserver returns a check.Observer adding an event to the span in ctx
// for every failure. Nothing is recorded when ctx carries no recording span.
func SpanObserver(ctx context.Context, taxonomy string) check.Observer {
	span := trace.SpanFromContext(ctx)
	return check.ObserverFunc(func(err error) {
		if !span.IsRecording() {
			return
		}
		kind, _ := check.KindOf(err)
		msg, ok := check.MessageOf(err)
		if !ok {
			msg = err.Error()
		}
		span.AddEvent(EventFailure, trace.WithAttributes(
			AttrTaxonomy.String(taxonomy),
			AttrKind.String(kind.String()),
			AttrMessage.String(msg),
		))
	})
}
