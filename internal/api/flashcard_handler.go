package api

import (
	"net/http"

	"github.com/phrazzld/scry-relay/internal/api/shared"
	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/platform/logger"
	"github.com/phrazzld/scry-relay/internal/service"
)

// FlashcardHandler handles flashcard generation requests
type FlashcardHandler struct {
	flashcardService service.FlashcardService
}

// NewFlashcardHandler creates a new FlashcardHandler
func NewFlashcardHandler(flashcardService service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{flashcardService: flashcardService}
}

// Generate handles POST /generate requests
func (h *FlashcardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if !shared.IsJSONContentType(r) {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgRequestMustBeJSON)
		return
	}

	body, err := shared.ReadBody(w, r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	set, err := h.flashcardService.Generate(r.Context(), body)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context()).InfoContext(r.Context(), "flashcards generated",
		"model", set.Model,
		"provider", set.Provider,
		"flashcards", len(set.Flashcards),
		"total_tokens", set.Usage.TotalTokens)

	flashcards := set.Flashcards
	if flashcards == nil {
		flashcards = []domain.Flashcard{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{
		Success:    true,
		Flashcards: flashcards,
		Content:    set.Content,
		Model:      set.Model,
		Usage:      set.Usage,
	})
}
