package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/scry-relay/internal/api/shared"
	"github.com/phrazzld/scry-relay/internal/domain"
	"github.com/phrazzld/scry-relay/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	relay := func(kind generation.Kind) error {
		return fmt.Errorf("generate: %w", generation.NewRelayError(kind, domain.ProviderOpenAI, 0, errors.New("x")))
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", domain.NewValidationError(domain.CodeEmptyPrompt, "Prompt is required and cannot be empty"),
			http.StatusBadRequest, "Prompt is required and cannot be empty"},
		{"body too large", shared.ErrBodyTooLarge, http.StatusRequestEntityTooLarge, MsgBodyTooLarge},
		{"unauthorized", relay(generation.KindUnauthorized), http.StatusUnauthorized, MsgUnauthorized},
		{"rate limited", relay(generation.KindRateLimited), http.StatusTooManyRequests, MsgRateLimited},
		{"bad upstream request", relay(generation.KindBadUpstreamRequest), http.StatusBadRequest, MsgBadUpstream},
		{"timeout", relay(generation.KindTimeout), http.StatusGatewayTimeout, MsgTimeout},
		{"upstream error", relay(generation.KindUpstreamError), http.StatusBadGateway, MsgUpstreamError},
		{"internal", relay(generation.KindInternal), http.StatusInternalServerError, MsgInternal},
		{"unknown", errors.New("something else"), http.StatusInternalServerError, MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.wantMsg, GetSafeErrorMessage(tt.err))
		})
	}
}
