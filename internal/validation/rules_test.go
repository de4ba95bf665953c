package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/tlias/tlias/internal/errors"
)

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("songjiang"))
	assert.Error(t, NotBlank.Validate(""))
	assert.Error(t, NotBlank.Validate("   "))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, NoWhitespace.Validate("songjiang"))
	assert.Error(t, NoWhitespace.Validate(" songjiang"))
	assert.Error(t, NoWhitespace.Validate("songjiang "))
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone.Validate("13812345678"))
	assert.Error(t, Phone.Validate("1381234567"))
	assert.Error(t, Phone.Validate("138123456789"))
	assert.Error(t, Phone.Validate("1381234567a"))
	assert.Error(t, Phone.Validate(""))
}

func TestWrapValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil))

	err := WrapValidationError(assert.AnError)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), assert.AnError.Error())
}
