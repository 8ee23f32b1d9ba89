// Package ledger holds the pure accounting arithmetic: simple interest
// accrual, USD valuation and the collateral admission rule. All amounts are
// unsigned integers in asset base units; rates and prices are fixed-point.
package ledger

import "math/big"

var (
	// SecondsPerYear fixed at 365 days, no leap-year adjustment
	SecondsPerYear = big.NewInt(365 * 24 * 60 * 60)
	// RateScale fixed-point scale for annual rate fractions
	RateScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	// PriceScale fixed-point scale for USD prices
	PriceScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(8), nil)
	// MaxBps full collateral factor, 10000 = 100%
	MaxBps uint64 = 10000
)

// Accrue returns the simple interest earned by balance at the given annual
// rate (1e18 scale) over elapsed seconds:
//
//	floor(balance * rate * elapsed / (SecondsPerYear * RateScale))
//
// Division truncates toward zero, so rounding can only under-accrue.
func Accrue(balance, annualRate *big.Int, elapsed int64) *big.Int {
	if balance == nil || balance.Sign() <= 0 ||
		annualRate == nil || annualRate.Sign() <= 0 ||
		elapsed <= 0 {
		return big.NewInt(0)
	}

	interest := new(big.Int).Mul(balance, annualRate)
	interest.Mul(interest, big.NewInt(elapsed))
	interest.Quo(interest, new(big.Int).Mul(SecondsPerYear, RateScale))
	return interest
}

// USDValue converts an amount of base units to its USD value at the given
// 1e8-scaled price, truncating toward zero.
func USDValue(amount, price *big.Int) *big.Int {
	if amount == nil || amount.Sign() <= 0 || price == nil || price.Sign() <= 0 {
		return big.NewInt(0)
	}

	value := new(big.Int).Mul(amount, price)
	value.Quo(value, PriceScale)
	return value
}

// BorrowAllowed reports whether a proposed borrow keeps the account within
// the loan-to-value limit. Existing debt and the proposed amount are valued
// at the current price, then both sides of the comparison are scaled by
// MaxBps so no intermediate division loses precision:
//
//	borrowValue * 10000 <= collateralValue * collateralFactorBps
func BorrowAllowed(supplyBalance, borrowBalance, proposed, price *big.Int, collateralFactorBps uint64) bool {
	borrowValue := USDValue(borrowBalance, price)
	borrowValue.Add(borrowValue, USDValue(proposed, price))
	borrowValue.Mul(borrowValue, new(big.Int).SetUint64(MaxBps))

	collateralValue := USDValue(supplyBalance, price)
	collateralValue.Mul(collateralValue, new(big.Int).SetUint64(collateralFactorBps))

	return borrowValue.Cmp(collateralValue) <= 0
}
