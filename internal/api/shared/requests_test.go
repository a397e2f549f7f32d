package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsJSONContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"Application/JSON", true},
		{"application/vnd.api+json", true},
		{"text/plain", false},
		{"application/x-www-form-urlencoded", false},
		{"", false},
		{"not a media type;;", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/generate", nil)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			assert.Equal(t, tt.want, IsJSONContentType(req))
		})
	}
}

func TestReadBody(t *testing.T) {
	t.Parallel()

	t.Run("reads body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{"prompt":"x"}`))
		body, err := ReadBody(httptest.NewRecorder(), req)
		require.NoError(t, err)
		assert.Equal(t, `{"prompt":"x"}`, string(body))
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/generate",
			strings.NewReader(strings.Repeat("a", MaxBodyBytes+1)))
		_, err := ReadBody(httptest.NewRecorder(), req)
		assert.ErrorIs(t, err, ErrBodyTooLarge)
	})
}
