package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/scry-relay/internal/domain"
)

// DefaultTimeout bounds a single upstream call when none is configured.
const DefaultTimeout = 60 * time.Second

// Observer records the outcome of upstream calls.
type Observer interface {
	ObserveCompletion(provider domain.Provider, model, outcome string, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveCompletion(domain.Provider, string, string, time.Duration) {}

// Relay routes a request to the provider serving its model and performs
// exactly one completion call. It never retries.
type Relay struct {
	catalog   *Catalog
	providers map[domain.Provider]Completer
	timeout   time.Duration
	logger    *slog.Logger
	observer  Observer
}

// RelayOption customizes a Relay.
type RelayOption func(*Relay)

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) RelayOption {
	return func(r *Relay) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithObserver sets the Observer notified after every call.
func WithObserver(observer Observer) RelayOption {
	return func(r *Relay) {
		if observer != nil {
			r.observer = observer
		}
	}
}

// NewRelay creates a Relay. Every provider in the catalog must have a completer.
func NewRelay(
	catalog *Catalog,
	providers map[domain.Provider]Completer,
	logger *slog.Logger,
	opts ...RelayOption,
) (*Relay, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: catalog cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	for _, model := range catalog.Models() {
		provider, _ := catalog.Provider(model)
		if providers[provider] == nil {
			return nil, fmt.Errorf("%w: %s serves %q", ErrUnknownProvider, provider, model)
		}
	}

	r := &Relay{
		catalog:   catalog,
		providers: providers,
		timeout:   DefaultTimeout,
		logger:    logger,
		observer:  noopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Generate performs the upstream call for req. Failures are always returned
// as *RelayError.
func (r *Relay) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	provider, ok := r.catalog.Provider(req.Model)
	if !ok {
		return nil, NewRelayError(KindInternal, "", 0,
			fmt.Errorf("%w: model %q is not in the catalog", ErrUnknownProvider, req.Model))
	}
	completer := r.providers[provider]

	log := r.logger.With("provider", provider.String(), "model", req.Model)
	log.DebugContext(ctx, "calling upstream completion",
		"prompt_length", len(req.Prompt),
		"max_tokens", req.MaxTokens,
		"temperature", req.Temperature)

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	result, err := completer.Complete(callCtx, req)
	elapsed := time.Since(start)

	if err != nil {
		var relayErr *RelayError
		if !errors.As(err, &relayErr) {
			relayErr = NewRelayError(Classify(0, err), provider, 0, err)
		}
		r.observer.ObserveCompletion(provider, req.Model, relayErr.Kind.String(), elapsed)
		log.WarnContext(ctx, "upstream completion failed",
			"kind", relayErr.Kind.String(),
			"status_code", relayErr.StatusCode,
			"elapsed_ms", elapsed.Milliseconds())
		return nil, relayErr
	}

	if result == nil {
		r.observer.ObserveCompletion(provider, req.Model, KindInternal.String(), elapsed)
		return nil, NewRelayError(KindInternal, provider, 0,
			fmt.Errorf("%w: nil result", ErrInvalidResponse))
	}

	result.Provider = provider
	r.observer.ObserveCompletion(provider, req.Model, "success", elapsed)
	log.InfoContext(ctx, "upstream completion succeeded",
		"elapsed_ms", elapsed.Milliseconds(),
		"content_length", len(result.Content),
		"total_tokens", result.Usage.TotalTokens)

	return result, nil
}
