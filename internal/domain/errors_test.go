package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundMatchesSentinel(t *testing.T) {
	id := uuid.New()
	err := fmt.Errorf("load: %w", NotFound("opportunity", id))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "load: opportunity "+id.String()+" not found", err.Error())

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "opportunity", nf.Entity)
}

func TestValidateUsesJSONNames(t *testing.T) {
	type input struct {
		Title string `json:"title" validate:"required"`
		Date  string `json:"date" validate:"required,datetime=2006-01-02"`
		Count int    `json:"volunteers_needed" validate:"min=1"`
	}

	err := Validate(input{Date: "2024-13-40"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, map[string]string{
		"title":             "is required",
		"date":              "must match layout 2006-01-02",
		"volunteers_needed": "must be at least 1",
	}, ve.Fields)

	assert.NoError(t, Validate(input{Title: "x", Date: "2024-05-01", Count: 2}))
}

func TestFromValidatorPassesOtherErrors(t *testing.T) {
	other := errors.New("boom")
	assert.Same(t, other, FromValidator(other))
}

func TestValidationErrorMessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "bad", "a": "worse"}}
	assert.Equal(t, "validation failed: a: worse; b: bad", err.Error())
	assert.Equal(t, "validation failed", (&ValidationError{}).Error())
}
