package check

// Observer is notified of every failure built by an observed factory.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveFailure(err error)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(err error)

// ObserveFailure calls fn(err).
func (fn ObserverFunc) ObserveFailure(err error) { fn(err) }

// Observed returns a Factory that builds failures with f and hands each one
// to observers before returning it. Observers run only on the failure path.
func Observed(f Factory, observers ...Observer) Factory {
	if len(observers) == 0 {
		return f
	}
	return &observedFactory{next: f, observers: observers}
}

type observedFactory struct {
	next      Factory
	observers []Observer
}

func (o *observedFactory) ArgumentError(msg string, cause error) error {
	return o.notify(o.next.ArgumentError(msg, cause))
}

func (o *observedFactory) NullError(msg string, cause error) error {
	return o.notify(o.next.NullError(msg, cause))
}

func (o *observedFactory) IndexError(msg string, cause error) error {
	return o.notify(o.next.IndexError(msg, cause))
}

func (o *observedFactory) StateError(msg string, cause error) error {
	return o.notify(o.next.StateError(msg, cause))
}

func (o *observedFactory) notify(err error) error {
	for _, obs := range o.observers {
		obs.ObserveFailure(err)
	}
	return err
}
