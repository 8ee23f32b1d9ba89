package ledger

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bi(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad int literal: " + s)
	}
	return v
}

func TestAccrue(t *testing.T) {
	oneUnit := bi("1000000000000000000")
	year := int64(365 * 24 * 60 * 60)

	t.Run("full year at 2%", func(t *testing.T) {
		interest := Accrue(oneUnit, DefaultSupplyRatePerYear, year)
		assert.Equal(t, bi("20000000000000000"), interest)
	})

	t.Run("full year at 5%", func(t *testing.T) {
		interest := Accrue(oneUnit, DefaultBorrowRatePerYear, year)
		assert.Equal(t, bi("50000000000000000"), interest)
	})

	t.Run("never negative", func(t *testing.T) {
		assert.True(t, Accrue(oneUnit, DefaultSupplyRatePerYear, 1).Sign() >= 0)
		assert.True(t, Accrue(big.NewInt(1), DefaultSupplyRatePerYear, 1).Sign() >= 0)
	})

	t.Run("zero inputs yield zero", func(t *testing.T) {
		assert.Zero(t, Accrue(nil, DefaultSupplyRatePerYear, year).Sign())
		assert.Zero(t, Accrue(big.NewInt(0), DefaultSupplyRatePerYear, year).Sign())
		assert.Zero(t, Accrue(oneUnit, big.NewInt(0), year).Sign())
		assert.Zero(t, Accrue(oneUnit, DefaultSupplyRatePerYear, 0).Sign())
		assert.Zero(t, Accrue(oneUnit, DefaultSupplyRatePerYear, -5).Sign())
	})

	t.Run("truncates toward zero", func(t *testing.T) {
		// 3 base units over one second rounds down to zero interest
		interest := Accrue(big.NewInt(3), DefaultSupplyRatePerYear, 1)
		assert.Zero(t, interest.Sign())
	})

	t.Run("idempotent for fixed inputs", func(t *testing.T) {
		a := Accrue(oneUnit, DefaultBorrowRatePerYear, 86400)
		b := Accrue(oneUnit, DefaultBorrowRatePerYear, 86400)
		assert.Equal(t, a, b)
	})
}

func TestAccrueSplitIntervals(t *testing.T) {
	balance := bi("123456789012345678901")
	rate := DefaultBorrowRatePerYear
	total := int64(365 * 24 * 60 * 60)

	for _, cut := range []int64{1, 3600, 86400, total / 3, total - 1} {
		split := new(big.Int).Add(Accrue(balance, rate, cut), Accrue(balance, rate, total-cut))
		whole := Accrue(balance, rate, total)

		diff := new(big.Int).Sub(whole, split)
		require.True(t, diff.Sign() >= 0, "split accrual must not exceed whole-interval accrual")
		require.True(t, diff.Cmp(big.NewInt(2)) <= 0, "truncation tolerance exceeded: %s", diff)
	}
}

func TestUSDValue(t *testing.T) {
	oneUnit := bi("1000000000000000000")
	price := bi("200000000000") // $2000 at 1e8

	assert.Equal(t, bi("2000000000000000000000"), USDValue(oneUnit, price))
	assert.Zero(t, USDValue(nil, price).Sign())
	assert.Zero(t, USDValue(oneUnit, big.NewInt(0)).Sign())
}

func TestBorrowAllowed(t *testing.T) {
	oneUnit := bi("1000000000000000000")
	price := bi("200000000000") // $2000 at 1e8
	zero := big.NewInt(0)

	t.Run("0.74 units allowed", func(t *testing.T) {
		assert.True(t, BorrowAllowed(oneUnit, zero, bi("740000000000000000"), price, DefaultCollateralFactorBps))
	})

	t.Run("exactly at the limit allowed", func(t *testing.T) {
		assert.True(t, BorrowAllowed(oneUnit, zero, bi("750000000000000000"), price, DefaultCollateralFactorBps))
	})

	t.Run("0.76 units denied", func(t *testing.T) {
		assert.False(t, BorrowAllowed(oneUnit, zero, bi("760000000000000000"), price, DefaultCollateralFactorBps))
	})

	t.Run("existing debt counts against the limit", func(t *testing.T) {
		existing := bi("500000000000000000")
		assert.True(t, BorrowAllowed(oneUnit, existing, bi("250000000000000000"), price, DefaultCollateralFactorBps))
		assert.False(t, BorrowAllowed(oneUnit, existing, bi("260000000000000000"), price, DefaultCollateralFactorBps))
	})

	t.Run("no collateral denies any borrow", func(t *testing.T) {
		assert.False(t, BorrowAllowed(zero, zero, big.NewInt(1), price, DefaultCollateralFactorBps))
	})

	t.Run("zero factor denies any borrow", func(t *testing.T) {
		assert.False(t, BorrowAllowed(oneUnit, zero, big.NewInt(1), price, 0))
	})
}
