// Package openai implements generation.Completer against the OpenAI
// chat-completions API using the go-openai client.
package openai
