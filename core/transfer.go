package core

import "math/big"

// Transfer instructs the external wallet to pay out the underlying asset.
// The ledger only decides how much; it never moves the asset itself.
type Transfer struct {
	TraceID  string   `json:"trace_id"`
	AssetID  string   `json:"asset_id"`
	Opponent string   `json:"opponent"`
	Amount   *big.Int `json:"amount"`
}

// RepayResult outcome of a repay operation
type RepayResult struct {
	// Repaid amount applied to the borrow balance
	Repaid *big.Int `json:"repaid"`
	// Refund transfer returning the overpayment, nil when the payment
	// did not exceed the outstanding debt
	Refund *Transfer `json:"refund,omitempty"`
}
