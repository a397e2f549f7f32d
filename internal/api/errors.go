package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/scry-relay/internal/api/shared"
	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/generation"
)

// Client-facing error messages. Upstream error text never reaches a client.
const (
	MsgRequestMustBeJSON = "Request must be JSON"
	MsgBodyTooLarge      = "Request body too large"
	MsgUnauthorized      = "Authentication failed"
	MsgRateLimited       = "Rate limit exceeded. Please try again later."
	MsgBadUpstream       = "Invalid request to upstream API"
	MsgTimeout           = "Upstream API request timed out"
	MsgUpstreamError     = "Upstream API request error"
	MsgInternal          = "Internal server error"
	MsgNotFound          = "Endpoint not found"
	MsgMethodNotAllowed  = "Method not allowed"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	if errors.Is(err, domain.ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, shared.ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	var relayErr *generation.RelayError
	if !errors.As(err, &relayErr) {
		return http.StatusInternalServerError
	}

	switch relayErr.Kind {
	case generation.KindUnauthorized:
		return http.StatusUnauthorized
	case generation.KindRateLimited:
		return http.StatusTooManyRequests
	case generation.KindBadUpstreamRequest:
		return http.StatusBadRequest
	case generation.KindTimeout:
		return http.StatusGatewayTimeout
	case generation.KindUpstreamError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Validation errors carry their own message.
func GetSafeErrorMessage(err error) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	if errors.Is(err, shared.ErrBodyTooLarge) {
		return MsgBodyTooLarge
	}

	switch generation.KindOf(err) {
	case generation.KindUnauthorized:
		return MsgUnauthorized
	case generation.KindRateLimited:
		return MsgRateLimited
	case generation.KindBadUpstreamRequest:
		return MsgBadUpstream
	case generation.KindTimeout:
		return MsgTimeout
	case generation.KindUpstreamError:
		return MsgUpstreamError
	default:
		return MsgInternal
	}
}

// HandleAPIError writes the error response for err. The client receives the
// safe message; the redacted error detail is logged.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
