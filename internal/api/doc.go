// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the flashcard service to HTTP: handlers
// read the body, hand it to the service, and map the outcome to the JSON
// envelope and status code clients expect.
package api
