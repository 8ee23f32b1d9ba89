package ledger

import (
	"database/sql"
	"math/big"
	"time"

	"lendpool/core"
)

// ApplyAccrual adds the interest earned since the account's last accrual to
// both balances and advances the market totals by the same amounts, keeping
// the conservation invariant intact. It must run before any balance is read
// for a solvency decision or a withdraw/repay limit check.
//
// On the very first touch there is no elapsed time to measure against: the
// timestamp is stamped and no interest accrues.
func ApplyAccrual(account *core.Account, market *core.Market, now time.Time) error {
	if !account.LastAccrualAt.Valid {
		account.LastAccrualAt = sql.NullTime{Time: now, Valid: true}
		return nil
	}

	elapsed := now.Unix() - account.LastAccrualAt.Time.Unix()
	if elapsed < 0 {
		return core.ErrClockRegression
	}

	if account.SupplyBalance.Sign() > 0 {
		interest := Accrue(account.SupplyBalance.ToInt(), market.SupplyRatePerYear.ToInt(), elapsed)
		addTo(account.SupplyBalance.ToInt(), interest)
		addTo(market.TotalSupply.ToInt(), interest)
	}

	if account.BorrowBalance.Sign() > 0 {
		interest := Accrue(account.BorrowBalance.ToInt(), market.BorrowRatePerYear.ToInt(), elapsed)
		addTo(account.BorrowBalance.ToInt(), interest)
		addTo(market.TotalBorrow.ToInt(), interest)
	}

	account.LastAccrualAt = sql.NullTime{Time: now, Valid: true}
	return nil
}

func addTo(dst, delta *big.Int) {
	dst.Add(dst, delta)
}
