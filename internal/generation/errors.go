package generation

import (
	"errors"
	"fmt"

	"github.com/phrazzld/scry-relay/internal/domain"
)

// Common errors returned by the generation package
var (
	// ErrInvalidResponse is returned when an upstream success payload cannot be used
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when a provider or relay configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrUnknownProvider is returned when no client is registered for a model's provider
	ErrUnknownProvider = errors.New("no completer registered for provider")
)

// Kind classifies a relay failure.
type Kind int

// Relay failure kinds. The zero value is KindInternal so that an
// unclassified failure never looks like an upstream verdict.
const (
	KindInternal Kind = iota
	KindTimeout
	KindUnauthorized
	KindBadUpstreamRequest
	KindRateLimited
	KindUpstreamError
)

// String returns a short label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindUnauthorized:
		return "unauthorized"
	case KindBadUpstreamRequest:
		return "bad_upstream_request"
	case KindRateLimited:
		return "rate_limited"
	case KindUpstreamError:
		return "upstream_error"
	default:
		return "internal"
	}
}

// RelayError is the tagged failure of an upstream call.
type RelayError struct {
	// Kind is the failure classification.
	Kind Kind
	// Provider is the upstream that was called.
	Provider domain.Provider
	// StatusCode is the upstream HTTP status, or 0 when no response arrived.
	StatusCode int
	// Err is the underlying error. It may contain upstream text and must
	// not be shown to clients.
	Err error
}

// NewRelayError creates a RelayError.
func NewRelayError(kind Kind, provider domain.Provider, statusCode int, err error) *RelayError {
	return &RelayError{
		Kind:       kind,
		Provider:   provider,
		StatusCode: statusCode,
		Err:        err,
	}
}

// Error implements the error interface.
func (e *RelayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s relay %s (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s relay %s: %v", e.Provider, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *RelayError) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of a RelayError anywhere in err's chain, or
// KindInternal if there is none.
func KindOf(err error) Kind {
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		return relayErr.Kind
	}
	return KindInternal
}
