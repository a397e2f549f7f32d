package api

import "github.com/phrazzld/scry-relay/internal/domain"

// ServiceName identifies this service in health responses.
const ServiceName = "flashcard-backend"

// GenerateResponse is the success body of POST /generate.
type GenerateResponse struct {
	Success    bool               `json:"success"`
	Flashcards []domain.Flashcard `json:"flashcards"`
	// Content is the raw completion text the flashcards were parsed from.
	Content string       `json:"content"`
	Model   string       `json:"model"`
	Usage   domain.Usage `json:"usage"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}
