package views

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"lendpool/core"
)

func TestNewMarket(t *testing.T) {
	market := &core.Market{
		AssetID:             "asset",
		Symbol:              "COIN",
		TotalSupply:         core.NewBigInt(big.NewInt(1020000000000000000)),
		TotalBorrow:         core.NewBigInt(big.NewInt(500000000000000000)),
		SupplyRatePerYear:   core.NewBigInt(big.NewInt(20000000000000000)),
		BorrowRatePerYear:   core.NewBigInt(big.NewInt(50000000000000000)),
		CollateralFactorBps: 7500,
	}
	price := &core.Price{
		AssetID: "asset",
		Price:   core.NewBigInt(big.NewInt(200000000000)),
	}

	view := NewMarket(market, price)
	assert.Equal(t, "1.02", view.TotalSupply.String())
	assert.Equal(t, "0.5", view.TotalBorrow.String())
	assert.Equal(t, "0.02", view.SupplyRatePerYear.String())
	assert.Equal(t, "0.05", view.BorrowRatePerYear.String())
	assert.Equal(t, "0.75", view.CollateralFactor.String())
	assert.Equal(t, "2000", view.Price.String())
}

func TestNewAccount(t *testing.T) {
	account := &core.Account{
		AssetID:       "asset",
		UserID:        "user",
		SupplyBalance: core.NewBigInt(big.NewInt(740000000000000000)),
	}

	view := NewAccount(account)
	assert.Equal(t, "0.74", view.SupplyBalance.String())
	assert.Equal(t, "0", view.BorrowBalance.String())
	assert.Nil(t, view.LastAccrualAt)
}
