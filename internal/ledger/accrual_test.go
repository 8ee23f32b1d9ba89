package ledger

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendpool/core"
)

func newTestMarket() *core.Market {
	return &core.Market{
		AssetID:             "asset",
		Symbol:              "COIN",
		SupplyRatePerYear:   core.NewBigInt(DefaultSupplyRatePerYear),
		BorrowRatePerYear:   core.NewBigInt(DefaultBorrowRatePerYear),
		CollateralFactorBps: DefaultCollateralFactorBps,
	}
}

func TestApplyAccrualFirstTouch(t *testing.T) {
	market := newTestMarket()
	account := &core.Account{
		AssetID:       market.AssetID,
		UserID:        "user",
		SupplyBalance: core.NewBigInt(bi("1000000000000000000")),
	}

	// lastAccrualTime starts unset, so no interest accrues regardless of
	// how much wall-clock time passed before the first touch
	now := time.Unix(1700000000, 0)
	require.NoError(t, ApplyAccrual(account, market, now))

	assert.Equal(t, bi("1000000000000000000"), account.SupplyBalance.ToInt())
	assert.Zero(t, market.TotalSupply.Sign())
	require.True(t, account.LastAccrualAt.Valid)
	assert.Equal(t, now, account.LastAccrualAt.Time)
}

func TestApplyAccrualClockRegression(t *testing.T) {
	market := newTestMarket()
	account := &core.Account{
		SupplyBalance: core.NewBigInt(bi("1000000000000000000")),
	}

	now := time.Unix(1700000000, 0)
	require.NoError(t, ApplyAccrual(account, market, now))

	err := ApplyAccrual(account, market, now.Add(-time.Second))
	assert.ErrorIs(t, err, core.ErrClockRegression)
	// balances untouched on failure
	assert.Equal(t, bi("1000000000000000000"), account.SupplyBalance.ToInt())
	assert.Equal(t, now, account.LastAccrualAt.Time)
}

func TestApplyAccrualOneYear(t *testing.T) {
	market := newTestMarket()
	account := &core.Account{
		SupplyBalance: core.NewBigInt(bi("1000000000000000000")),
		BorrowBalance: core.NewBigInt(bi("500000000000000000")),
	}
	market.TotalSupply = core.NewBigInt(account.SupplyBalance.ToInt())
	market.TotalBorrow = core.NewBigInt(account.BorrowBalance.ToInt())

	start := time.Unix(1700000000, 0)
	require.NoError(t, ApplyAccrual(account, market, start))
	require.NoError(t, ApplyAccrual(account, market, start.Add(365*24*time.Hour)))

	// 2% on 1 unit supplied, 5% on 0.5 units borrowed
	assert.Equal(t, bi("1020000000000000000"), account.SupplyBalance.ToInt())
	assert.Equal(t, bi("525000000000000000"), account.BorrowBalance.ToInt())

	// market totals advance in lockstep with the account
	assert.Equal(t, account.SupplyBalance.ToInt(), market.TotalSupply.ToInt())
	assert.Equal(t, account.BorrowBalance.ToInt(), market.TotalBorrow.ToInt())
}

func TestApplyAccrualZeroBalances(t *testing.T) {
	market := newTestMarket()
	account := &core.Account{}

	start := time.Unix(1700000000, 0)
	require.NoError(t, ApplyAccrual(account, market, start))
	require.NoError(t, ApplyAccrual(account, market, start.Add(24*time.Hour)))

	assert.Zero(t, account.SupplyBalance.Sign())
	assert.Zero(t, account.BorrowBalance.Sign())
	assert.Equal(t, start.Add(24*time.Hour), account.LastAccrualAt.Time)
}

func TestApplyAccrualSameInstant(t *testing.T) {
	market := newTestMarket()
	account := &core.Account{
		SupplyBalance: core.NewBigInt(bi("1000000000000000000")),
	}

	now := time.Unix(1700000000, 0)
	require.NoError(t, ApplyAccrual(account, market, now))
	require.NoError(t, ApplyAccrual(account, market, now))

	assert.Equal(t, bi("1000000000000000000"), account.SupplyBalance.ToInt())
}

func TestApplyAccrualBorrowOnly(t *testing.T) {
	market := newTestMarket()
	account := &core.Account{
		BorrowBalance: core.NewBigInt(bi("1000000000000000000")),
	}
	market.TotalBorrow = core.NewBigInt(account.BorrowBalance.ToInt())

	start := time.Unix(1700000000, 0)
	require.NoError(t, ApplyAccrual(account, market, start))
	require.NoError(t, ApplyAccrual(account, market, start.Add(365*24*time.Hour)))

	assert.Equal(t, bi("1050000000000000000"), account.BorrowBalance.ToInt())
	assert.Zero(t, account.SupplyBalance.Sign())
	assert.Zero(t, market.TotalSupply.Sign())
}

func TestApplyAccrualTotalsAcrossAccounts(t *testing.T) {
	market := newTestMarket()

	accounts := []*core.Account{
		{UserID: "a", SupplyBalance: core.NewBigInt(bi("3000000000000000000"))},
		{UserID: "b", SupplyBalance: core.NewBigInt(bi("1000000000000000000")), BorrowBalance: core.NewBigInt(bi("700000000000000000"))},
		{UserID: "c", BorrowBalance: core.NewBigInt(bi("10000000000000"))},
	}

	supplySum := big.NewInt(0)
	borrowSum := big.NewInt(0)
	for _, acc := range accounts {
		supplySum.Add(supplySum, acc.SupplyBalance.ToInt())
		borrowSum.Add(borrowSum, acc.BorrowBalance.ToInt())
	}
	market.TotalSupply = core.NewBigInt(supplySum)
	market.TotalBorrow = core.NewBigInt(borrowSum)

	start := time.Unix(1700000000, 0)
	for _, acc := range accounts {
		require.NoError(t, ApplyAccrual(acc, market, start))
	}
	for i, acc := range accounts {
		require.NoError(t, ApplyAccrual(acc, market, start.Add(time.Duration(i+1)*31*24*time.Hour)))
	}

	wantSupply := big.NewInt(0)
	wantBorrow := big.NewInt(0)
	for _, acc := range accounts {
		wantSupply.Add(wantSupply, acc.SupplyBalance.ToInt())
		wantBorrow.Add(wantBorrow, acc.BorrowBalance.ToInt())
	}

	assert.Equal(t, wantSupply, market.TotalSupply.ToInt())
	assert.Equal(t, wantBorrow, market.TotalBorrow.ToInt())
}
