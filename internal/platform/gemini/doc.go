// Package gemini provides an implementation of the generation.Completer
// interface that uses Google's Gemini API through the google.golang.org/genai
// client.
//
// This package is an infrastructure adapter. It translates the relay's
// two-message exchange into a Gemini generateContent call (the system
// instruction travels in the request config) and maps Gemini's responses and
// API errors back into domain results and tagged relay errors.
//
// Key responsibilities:
//
//  1. Client construction from the LLM configuration, with the request
//     timeout applied to the underlying HTTP client.
//  2. Response processing: text parts of the first candidate are joined and
//     usage metadata is passed through unchanged.
//  3. Error handling: genai API errors are classified by HTTP status, and
//     safety blocks are reported as bad upstream requests.
//
// The completer is only constructed when a Gemini API key is configured.
package gemini
