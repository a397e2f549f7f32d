// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Every handler built here redacts error values and
// upstream payload fields before they are written, and attaches the request's
// trace id when one is present in the context.
package logger
