package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrContentBlocked is returned when Gemini refuses the prompt or stops
	// generating because of its safety filters.
	ErrContentBlocked = errors.New("content blocked by gemini safety filters")
)
