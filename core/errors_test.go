package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeZeroAmount, CodeOf(ErrZeroAmount))
	assert.Equal(t, ErrCodeInsufficientCollateral, CodeOf(ErrInsufficientCollateral))
	assert.Equal(t, ErrCodeClockRegression, CodeOf(fmt.Errorf("accrue: %w", ErrClockRegression)))
	assert.Equal(t, ErrCodeUnknown, CodeOf(errors.New("boom")))
}
