package resilience

import (
	"errors"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// State represents the circuit breaker state.
type State int

const (
	// StateClosed allows requests to pass through.
	StateClosed State = iota
	// StateOpen blocks all requests.
	StateOpen
	// StateHalfOpen allows limited requests to test recovery.
	StateHalfOpen
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

func fromGoBreaker(s gobreaker.State) State {
	switch s {
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateClosed
	}
}

// Common errors.
var (
	ErrCircuitOpen     = errors.New("circuit breaker is open")
	ErrTooManyRequests = errors.New("circuit breaker is half-open: too many requests")
)

// CircuitBreakerConfig configures a circuit breaker.
type CircuitBreakerConfig struct {
	// Name identifies this circuit breaker for metrics/logging.
	Name string
	// MaxFailures is the number of consecutive failures before opening the circuit.
	MaxFailures int
	// Timeout is how long to wait before transitioning from open to half-open.
	Timeout time.Duration
	// HalfOpenMaxCalls is the number of calls allowed in half-open state.
	HalfOpenMaxCalls int
	// IsSuccessful decides whether an error returned by the protected call
	// counts against the breaker. Defaults to DefaultIsSuccessful.
	IsSuccessful func(err error) bool
	// OnStateChange is called when state changes.
	OnStateChange func(name string, from, to State)
}

// DefaultCircuitBreakerConfig returns sensible defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxFailures:      5,
		Timeout:          30 * time.Second,
		HalfOpenMaxCalls: 1,
		IsSuccessful:     DefaultIsSuccessful,
	}
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	if c.MaxFailures <= 0 {
		c.MaxFailures = 5
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.HalfOpenMaxCalls <= 0 {
		c.HalfOpenMaxCalls = 1
	}
	if c.IsSuccessful == nil {
		c.IsSuccessful = DefaultIsSuccessful
	}
	return c
}

// Settings converts the config into gobreaker settings, filling defaults.
func (c CircuitBreakerConfig) Settings() gobreaker.Settings {
	c = c.withDefaults()
	maxFailures := uint32(c.MaxFailures)

	settings := gobreaker.Settings{
		Name:        c.Name,
		MaxRequests: uint32(c.HalfOpenMaxCalls),
		Timeout:     c.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: c.IsSuccessful,
	}
	if c.OnStateChange != nil {
		onChange := c.OnStateChange
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			onChange(name, fromGoBreaker(from), fromGoBreaker(to))
		}
	}
	return settings
}

// GoBreakerSettings returns default gobreaker settings for callers that use
// gobreaker directly. Non-retryable errors do not trip the breaker.
func GoBreakerSettings(name string) gobreaker.Settings {
	return DefaultCircuitBreakerConfig(name).Settings()
}

// CircuitBreaker implements the circuit breaker pattern on top of gobreaker.
// It prevents cascading failures by failing fast when a service is unhealthy.
//
// States:
//   - Closed: Normal operation, requests pass through
//   - Open: Service is unhealthy, requests fail immediately
//   - Half-Open: Testing if service recovered, limited requests allowed
//
// Errors the config's IsSuccessful accepts are returned to the caller
// unchanged but never open the circuit.
type CircuitBreaker struct {
	settings gobreaker.Settings

	mu      sync.RWMutex
	breaker *gobreaker.CircuitBreaker
}

// NewCircuitBreaker creates a new circuit breaker.
func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	settings := config.Settings()
	return &CircuitBreaker{
		settings: settings,
		breaker:  gobreaker.NewCircuitBreaker(settings),
	}
}

// Execute runs the given function through the circuit breaker.
// Returns ErrCircuitOpen if the circuit is open and ErrTooManyRequests when
// the half-open probe budget is spent.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	_, err := cb.current().Execute(func() (interface{}, error) {
		return nil, fn()
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		return ErrCircuitOpen
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		return ErrTooManyRequests
	}
	return err
}

// State returns the current circuit breaker state.
func (cb *CircuitBreaker) State() State {
	return fromGoBreaker(cb.current().State())
}

// Reset returns the circuit breaker to the closed state with cleared counters.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.breaker = gobreaker.NewCircuitBreaker(cb.settings)
}

// Failures returns the current consecutive failure count.
func (cb *CircuitBreaker) Failures() int {
	return int(cb.current().Counts().ConsecutiveFailures)
}

func (cb *CircuitBreaker) current() *gobreaker.CircuitBreaker {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.breaker
}
