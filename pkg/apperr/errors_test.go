package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode_ThroughWrapping(t *testing.T) {
	base := errors.New("connection refused")
	err := fmt.Errorf("ask: %w", Upstream("chat completion failed", base))

	assert.True(t, HasCode(err, CodeUpstream))
	assert.False(t, HasCode(err, CodeDataLoad))
	assert.ErrorIs(t, err, base)
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "CONFIGURATION_MISSING: PERPLEXITY_API_KEY not configured",
		Configuration("PERPLEXITY_API_KEY").Error())
	assert.Equal(t, "VALIDATION_FAILED: invalid request (query: too long)",
		Validation("invalid request", "query: too long").Error())
	assert.False(t, HasCode(errors.New("plain"), CodeValidation))
}
