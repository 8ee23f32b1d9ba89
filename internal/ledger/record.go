package ledger

import (
	"math/big"

	"lendpool/core"
)

// RecordSupply credits amount to the account's supply balance and the
// market total.
func RecordSupply(market *core.Market, account *core.Account, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrZeroAmount
	}

	addTo(account.SupplyBalance.ToInt(), amount)
	addTo(market.TotalSupply.ToInt(), amount)
	return nil
}

// RecordWithdraw debits amount from the account's supply balance and the
// market total. It enforces the balance bound only: remaining collateral is
// not re-checked against outstanding borrows, so a withdrawal can leave the
// account under-collateralized. That limitation is inherited deliberately.
func RecordWithdraw(market *core.Market, account *core.Account, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrZeroAmount
	}
	if account.SupplyBalance.Cmp(amount) < 0 {
		return core.ErrInsufficientBalance
	}

	account.SupplyBalance.Sub(account.SupplyBalance.ToInt(), amount)
	market.TotalSupply.Sub(market.TotalSupply.ToInt(), amount)
	return nil
}

// RecordBorrow debits the pool against the account after the collateral
// check passes on post-accrual balances at the given price.
func RecordBorrow(market *core.Market, account *core.Account, amount, price *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return core.ErrZeroAmount
	}
	if !BorrowAllowed(account.SupplyBalance.ToInt(), account.BorrowBalance.ToInt(), amount, price, market.CollateralFactorBps) {
		return core.ErrInsufficientCollateral
	}

	addTo(account.BorrowBalance.ToInt(), amount)
	addTo(market.TotalBorrow.ToInt(), amount)
	return nil
}

// RecordRepay applies sentAmount to the account's debt, clamped at the
// outstanding balance. It returns the repaid amount and the overpayment to
// be refunded by the external transfer collaborator.
func RecordRepay(market *core.Market, account *core.Account, sentAmount *big.Int) (repaid, refund *big.Int, err error) {
	if sentAmount == nil || sentAmount.Sign() <= 0 {
		return nil, nil, core.ErrZeroAmount
	}

	repaid = new(big.Int).Set(sentAmount)
	if repaid.Cmp(account.BorrowBalance.ToInt()) > 0 {
		repaid.Set(account.BorrowBalance.ToInt())
	}
	refund = new(big.Int).Sub(sentAmount, repaid)

	account.BorrowBalance.Sub(account.BorrowBalance.ToInt(), repaid)
	market.TotalBorrow.Sub(market.TotalBorrow.ToInt(), repaid)
	return repaid, refund, nil
}
