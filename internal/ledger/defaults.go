package ledger

import "math/big"

// Default market parameters established at system initialization. They are
// immutable for the market's lifetime; only the price may change afterwards.
var (
	// DefaultCollateralFactorBps 75%
	DefaultCollateralFactorBps uint64 = 7500
	// DefaultSupplyRatePerYear 2% annual, 1e18 scale
	DefaultSupplyRatePerYear = new(big.Int).Mul(big.NewInt(2), new(big.Int).Exp(big.NewInt(10), big.NewInt(16), nil))
	// DefaultBorrowRatePerYear 5% annual, 1e18 scale
	DefaultBorrowRatePerYear = new(big.Int).Mul(big.NewInt(5), new(big.Int).Exp(big.NewInt(10), big.NewInt(16), nil))
	// DefaultInitialPrice 2000 USD, 1e8 scale
	DefaultInitialPrice = new(big.Int).Mul(big.NewInt(2000), new(big.Int).Set(PriceScale))
)
