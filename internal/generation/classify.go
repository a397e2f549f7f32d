package generation

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// Classify maps the outcome of an upstream call to a Kind.
//
// statusCode is the upstream HTTP status, or 0 if no response was received.
// Checks run in priority order: timeouts first, then authentication, request
// shape, rate limiting, and finally any other upstream or transport failure.
func Classify(statusCode int, err error) Kind {
	if err != nil && IsTimeout(err) {
		return KindTimeout
	}

	switch statusCode {
	case 0:
		if err == nil {
			return KindInternal
		}
		return KindUpstreamError
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
		return KindBadUpstreamRequest
	case http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindUpstreamError
	}
}

// IsTimeout reports whether err is a deadline or network timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
