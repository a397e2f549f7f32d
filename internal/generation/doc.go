// Package generation holds the request pipeline between the HTTP layer and
// the upstream LLM providers: the Normalizer that validates and defaults
// inbound requests, the model Catalog that decides which provider serves a
// model, and the Relay that performs the single outbound completion call and
// classifies its failures.
//
// Provider clients live under internal/platform and implement the Completer
// interface defined here, so the rest of the application never depends on a
// specific upstream API.
package generation
