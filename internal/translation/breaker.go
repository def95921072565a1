package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sony/gobreaker"
)

// ErrBreakerOpen is returned while the breaker rejects calls
var ErrBreakerOpen = errors.New("translation service unavailable, circuit breaker open")

// Breaker stops calling a backend after a run of consecutive failures.
// Words rejected while it is open fail like any other translation error.
type Breaker struct {
	backend Backend
	cb      *gobreaker.CircuitBreaker
}

// NewBreaker wraps backend with a breaker that opens after maxFailures
// consecutive failures
func NewBreaker(backend Backend, name string, maxFailures uint32, logger *slog.Logger) *Breaker {
	log := logger.With("adapter", "breaker")
	settings := gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("breaker state change",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &Breaker{
		backend: backend,
		cb:      gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate calls the wrapped backend unless the breaker is open
func (b *Breaker) Translate(ctx context.Context, word string) (Result, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.backend.Translate(ctx, word)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return Result{Word: word, Outcome: OutcomeFailed}, fmt.Errorf("%w: %v", ErrBreakerOpen, err)
	}
	if err != nil {
		if result, ok := out.(Result); ok {
			return result, err
		}
		return Result{Word: word, Outcome: OutcomeFailed}, err
	}
	return out.(Result), nil
}

// State returns the current breaker state
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Close closes the wrapped backend
func (b *Breaker) Close() error {
	return Close(b.backend)
}
