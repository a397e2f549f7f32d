// Package openrouter implements generation.Completer against the OpenRouter
// chat-completions API using a resty HTTP client.
//
// OpenRouter speaks the OpenAI wire format, authenticates with a bearer key,
// and attributes traffic to the calling app through the HTTP-Referer header.
// Every upstream failure is returned as a *generation.RelayError so the relay
// never needs to know OpenRouter's error shapes.
package openrouter
