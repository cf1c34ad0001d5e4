package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := Validation("duplicate image")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNetwork))

	wrapped := fmt.Errorf("add image: %w", err)
	assert.True(t, errors.Is(wrapped, ErrValidation))
}

func TestNetwork_CarriesStatusAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Network("get boards", 0, cause)

	assert.Equal(t, "get boards: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, 0, err.Status)

	err = Network("get boards", 502, nil)
	assert.Equal(t, 502, err.Status)
	assert.Equal(t, "get boards", err.Error())
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "x"))

	coded := Validation("bad")
	assert.Same(t, coded, Wrap(coded, "ignored"))

	plain := errors.New("boom")
	got := Wrap(plain, "decode")
	assert.ErrorIs(t, got, ErrInternal)
	assert.ErrorIs(t, got, plain)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeValidation, CodeOf(fmt.Errorf("x: %w", Validation("y"))))
	assert.Equal(t, CodeNetwork, CodeOf(Network("z", 500, nil)))
	assert.Equal(t, CodeNotFound, CodeOf(NotFound("gone")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}

func TestWithDetails_PreservesCode(t *testing.T) {
	err := ErrValidation.WithDetails(map[string]string{"url": "is required"})
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, map[string]string{"url": "is required"}, err.Details)
}
