package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServiceError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewServiceError("generate", nil))

	cause := errors.New("boom")
	err := NewServiceError("generate", cause)
	assert.EqualError(t, err, "flashcard service generate failed: boom")
	assert.True(t, errors.Is(err, cause))
}
