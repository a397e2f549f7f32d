// Package service contains the application's use cases. It orchestrates the
// generation pipeline so that the HTTP layer stays a thin adapter: an inbound
// body is normalized, relayed to the upstream model exactly once, and the raw
// completion is parsed into flashcards.
//
// Error handling principles:
//  1. Validation failures are returned as *domain.ValidationError
//  2. Upstream failures are returned as *generation.RelayError
//  3. Anything else is wrapped with the failing operation for context
//  4. The API layer maps these to HTTP status codes with errors.As
package service
