package id

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDFrom(t *testing.T) {
	a := TraceIDFrom("asset-user-supply-100-1700000000")
	b := TraceIDFrom("asset-user-supply-100-1700000000")
	c := TraceIDFrom("asset-user-supply-100-1700000001")

	assert.Equal(t, a, b, "same input must map to the same trace")
	assert.NotEqual(t, a, c)

	_, err := uuid.FromString(a)
	require.NoError(t, err)
}

func TestGenTraceID(t *testing.T) {
	assert.NotEqual(t, GenTraceID(), GenTraceID())
}
