package invariant

import (
	"errors"
	"runtime/debug"

	"github.com/kbukum/guard/check"
	"github.com/kbukum/guard/config"
	"github.com/kbukum/guard/logger"
)

//go:generate go run ../internal/facadegen --package=invariant --out=checks.go

var factory = check.Taxonomy[*Violation](newViolation)

// Factory returns the non-reporting factory behind this package's checks.
func Factory() check.Factory { return factory }

func newViolation(kind check.Kind, msg string, cause error) *Violation {
	return &Violation{Kind: kind, Message: msg, Cause: cause}
}

// Option configures a reporting factory built by New.
type Option func(*options)

type options struct {
	logger    *logger.Logger
	stack     bool
	observers []check.Observer
}

// WithLogger logs every violation at error level.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStack captures the goroutine stack into each Violation.
func WithStack(enabled bool) Option {
	return func(o *options) { o.stack = enabled }
}

// WithObservers forwards every violation to the given observers.
func WithObservers(observers ...check.Observer) Option {
	return func(o *options) { o.observers = append(o.observers, observers...) }
}

// WithConfig applies loaded invariant settings. Logging goes to l only when
// cfg.Log is set.
func WithConfig(cfg config.InvariantConfig, l *logger.Logger) Option {
	return func(o *options) {
		o.stack = cfg.Stack
		if cfg.Log {
			o.logger = l
		}
	}
}

// New builds a reporting invariant factory. The returned factory is
// immutable and safe for concurrent use.
func New(opts ...Option) check.Factory {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var base check.Factory = factory
	if o.stack {
		base = check.Taxonomy[*Violation](func(kind check.Kind, msg string, cause error) *Violation {
			v := newViolation(kind, msg, cause)
			v.Stack = debug.Stack()
			return v
		})
	}

	observers := make([]check.Observer, 0, len(o.observers)+1)
	if o.logger != nil {
		observers = append(observers, logObserver(o.logger.WithComponent("invariant")))
	}
	observers = append(observers, o.observers...)

	return check.Observed(base, observers...)
}

func logObserver(l *logger.Logger) check.Observer {
	return check.ObserverFunc(func(err error) {
		fields := logger.Fields(logger.FieldTaxonomy, "invariant")
		if kind, ok := check.KindOf(err); ok {
			fields[logger.FieldKind] = kind.String()
		}
		var v *Violation
		if errors.As(err, &v) && len(v.Stack) > 0 {
			fields[logger.FieldStack] = string(v.Stack)
		}
		l.WithError(err).Error("invariant violated", fields)
	})
}
