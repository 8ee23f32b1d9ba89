package core

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigIntScan(t *testing.T) {
	var b BigInt
	require.NoError(t, b.Scan("1020000000000000000"))
	assert.Equal(t, "1020000000000000000", b.String())

	require.NoError(t, b.Scan([]byte("-5")))
	assert.Equal(t, "-5", b.String())

	require.NoError(t, b.Scan(nil))
	assert.Zero(t, b.Sign())

	assert.Error(t, b.Scan("not a number"))
	assert.Error(t, b.Scan(3.14))
}

func TestBigIntValue(t *testing.T) {
	b := NewBigInt(big.NewInt(42))
	v, err := b.Value()
	require.NoError(t, err)
	assert.Equal(t, "42", v)
}

func TestBigIntJSON(t *testing.T) {
	type wrapper struct {
		Amount BigInt `json:"amount"`
	}

	data, err := json.Marshal(wrapper{Amount: NewBigInt(big.NewInt(1000000))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"1000000"}`, string(data))

	var decoded wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"740000000000000000"}`), &decoded))
	assert.Equal(t, "740000000000000000", decoded.Amount.String())

	// bare numbers are accepted too
	require.NoError(t, json.Unmarshal([]byte(`{"amount":7}`), &decoded))
	assert.Equal(t, "7", decoded.Amount.String())
}

func TestNewBigIntCopies(t *testing.T) {
	v := big.NewInt(10)
	b := NewBigInt(v)
	v.SetInt64(99)
	assert.Equal(t, "10", b.String())
}
