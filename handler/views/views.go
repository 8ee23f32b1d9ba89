// Package views converts ledger state from fixed-point base units into
// human-readable decimals for the REST API.
package views

import (
	"time"

	"github.com/shopspring/decimal"

	"lendpool/core"
)

const (
	baseUnitExp = -18
	priceExp    = -8
)

// Market market view in human units
type Market struct {
	AssetID             string          `json:"asset_id"`
	Symbol              string          `json:"symbol"`
	TotalSupply         decimal.Decimal `json:"total_supply"`
	TotalBorrow         decimal.Decimal `json:"total_borrow"`
	SupplyRatePerYear   decimal.Decimal `json:"supply_rate_per_year"`
	BorrowRatePerYear   decimal.Decimal `json:"borrow_rate_per_year"`
	CollateralFactor    decimal.Decimal `json:"collateral_factor"`
	Price               decimal.Decimal `json:"price"`
	CollateralFactorBps uint64          `json:"collateral_factor_bps"`
}

// NewMarket market view from the stored market and its current price
func NewMarket(market *core.Market, price *core.Price) *Market {
	view := &Market{
		AssetID:             market.AssetID,
		Symbol:              market.Symbol,
		TotalSupply:         decimal.NewFromBigInt(market.TotalSupply.ToInt(), baseUnitExp),
		TotalBorrow:         decimal.NewFromBigInt(market.TotalBorrow.ToInt(), baseUnitExp),
		SupplyRatePerYear:   decimal.NewFromBigInt(market.SupplyRatePerYear.ToInt(), baseUnitExp),
		BorrowRatePerYear:   decimal.NewFromBigInt(market.BorrowRatePerYear.ToInt(), baseUnitExp),
		CollateralFactor:    decimal.New(int64(market.CollateralFactorBps), -4),
		CollateralFactorBps: market.CollateralFactorBps,
	}

	if price != nil {
		view.Price = decimal.NewFromBigInt(price.Price.ToInt(), priceExp)
	}

	return view
}

// Account account view in human units
type Account struct {
	AssetID       string          `json:"asset_id"`
	UserID        string          `json:"user_id"`
	SupplyBalance decimal.Decimal `json:"supply_balance"`
	BorrowBalance decimal.Decimal `json:"borrow_balance"`
	LastAccrualAt *time.Time      `json:"last_accrual_at,omitempty"`
}

// NewAccount account view
func NewAccount(account *core.Account) *Account {
	view := &Account{
		AssetID:       account.AssetID,
		UserID:        account.UserID,
		SupplyBalance: decimal.NewFromBigInt(account.SupplyBalance.ToInt(), baseUnitExp),
		BorrowBalance: decimal.NewFromBigInt(account.BorrowBalance.ToInt(), baseUnitExp),
	}

	if account.LastAccrualAt.Valid {
		at := account.LastAccrualAt.Time
		view.LastAccrualAt = &at
	}

	return view
}

// Transaction transaction view in human units
type Transaction struct {
	ID        uint64          `json:"id"`
	TraceID   string          `json:"trace_id"`
	AssetID   string          `json:"asset_id"`
	UserID    string          `json:"user_id"`
	Action    string          `json:"action"`
	Amount    decimal.Decimal `json:"amount"`
	Repaid    decimal.Decimal `json:"repaid"`
	Refund    decimal.Decimal `json:"refund"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewTransaction transaction view
func NewTransaction(transaction *core.Transaction) *Transaction {
	return &Transaction{
		ID:        transaction.ID,
		TraceID:   transaction.TraceID,
		AssetID:   transaction.AssetID,
		UserID:    transaction.UserID,
		Action:    transaction.Action.String(),
		Amount:    decimal.NewFromBigInt(transaction.Amount.ToInt(), baseUnitExp),
		Repaid:    decimal.NewFromBigInt(transaction.Repaid.ToInt(), baseUnitExp),
		Refund:    decimal.NewFromBigInt(transaction.Refund.ToInt(), baseUnitExp),
		CreatedAt: transaction.CreatedAt,
	}
}
