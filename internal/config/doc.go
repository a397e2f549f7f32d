// Package config handles configuration loading, parsing, and validation
// from the process environment. It provides type-safe access to the settings
// needed by the server and the upstream clients while keeping configuration
// details separate from request handling.
package config
