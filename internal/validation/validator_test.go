package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoboard/internal/apperr"
)

type draft struct {
	Title string `json:"title" validate:"required,max=5"`
	URL   string `json:"url,omitempty" validate:"omitempty,http_url"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(draft{Title: "cats", URL: "https://x.png"}))
}

func TestValidate_UsesJSONNames(t *testing.T) {
	v := New()
	err := v.Validate(draft{Title: "", URL: "not a url"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var coded *apperr.Error
	require.ErrorAs(t, err, &coded)
	details, ok := coded.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["title"])
	assert.Equal(t, "must be a valid URL", details["url"])
	assert.Equal(t, "title is required; url must be a valid URL", coded.Message)
}

func TestValidate_Max(t *testing.T) {
	v := New()
	err := v.Validate(draft{Title: "too long"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title must not exceed 5 characters")
}
