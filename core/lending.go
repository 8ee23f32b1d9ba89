package core

import (
	"context"
	"math/big"
	"time"
)

// ILendingService orchestrates the four state-changing ledger operations.
// Every operation accrues interest for the caller's account first, then
// validates, then mutates, then emits; it either commits fully or fails
// with no partial effect.
type ILendingService interface {
	// Supply credits amount, already received from the user, to their supply balance
	Supply(ctx context.Context, userID string, amount *big.Int, now time.Time) error
	// Withdraw debits amount from the user's supply balance and instructs a payout
	Withdraw(ctx context.Context, userID string, amount *big.Int, now time.Time) (*Transfer, error)
	// Borrow lends amount against the user's collateral and instructs a payout
	Borrow(ctx context.Context, userID string, amount *big.Int, now time.Time) (*Transfer, error)
	// Repay applies sentAmount to the user's debt, clamping at the outstanding
	// balance, and instructs a refund of any overpayment
	Repay(ctx context.Context, userID string, sentAmount *big.Int, now time.Time) (*RepayResult, error)
}
