package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNilIsNil(t *testing.T) {
	assert.NoError(t, New(Upstream, "fetch", nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	base := errors.New("connection refused")
	err := fmt.Errorf("recommend: %w", New(Upstream, "fetch jobs", base))

	require.Error(t, err)
	assert.True(t, Is(err, Upstream))
	assert.False(t, Is(err, InputValidation))
	assert.Equal(t, Upstream, KindOf(err))
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "upstream: fetch jobs: connection refused")
}

func TestInvalid(t *testing.T) {
	err := Invalid("upload", "file too large: %d bytes", 10)

	assert.True(t, Is(err, InputValidation))
	assert.Equal(t, "input_validation: upload: file too large: 10 bytes", err.Error())
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}
