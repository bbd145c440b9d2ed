package actuator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenstem/irrigator/internal/hal"
)

func TestApplyIdempotent(t *testing.T) {
	line := hal.NewMemoryLine(nil)
	d := NewDriver(line)

	require.NoError(t, d.Apply(true))
	require.NoError(t, d.Apply(true))
	assert.True(t, line.High())

	require.NoError(t, d.Apply(false))
	require.NoError(t, d.Apply(false))
	assert.False(t, line.High())
}

type failingLine struct{}

func (failingLine) Write(bool) error { return errors.New("gpio write failed") }

func TestApplyPropagatesLineError(t *testing.T) {
	d := NewDriver(failingLine{})
	assert.Error(t, d.Apply(true))
}
