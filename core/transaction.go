package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// ActionType lending operation type
type ActionType int

const (
	// ActionTypeSupply supply
	ActionTypeSupply ActionType = iota + 1
	// ActionTypeWithdraw withdraw
	ActionTypeWithdraw
	// ActionTypeBorrow borrow
	ActionTypeBorrow
	// ActionTypeRepay repay
	ActionTypeRepay
)

func (a ActionType) String() string {
	switch a {
	case ActionTypeSupply:
		return "supply"
	case ActionTypeWithdraw:
		return "withdraw"
	case ActionTypeBorrow:
		return "borrow"
	case ActionTypeRepay:
		return "repay"
	default:
		return "unknown"
	}
}

// Transaction one committed ledger operation, written in the same db
// transaction as the balance mutation it records
type Transaction struct {
	ID      uint64     `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID string     `sql:"size:36;unique_index:idx_transactions_trace" json:"trace_id"`
	AssetID string     `sql:"size:36;index:idx_transactions_asset" json:"asset_id"`
	UserID  string     `sql:"size:36;index:idx_transactions_user" json:"user_id"`
	Action  ActionType `json:"action"`
	// Amount the amount supplied, withdrawn, borrowed or sent for repayment
	Amount BigInt `sql:"type:varchar(80)" json:"amount"`
	// Repaid portion of Amount applied to debt; repay only
	Repaid BigInt `sql:"type:varchar(80)" json:"repaid"`
	// Refund overpayment returned to the user; repay only
	Refund    BigInt    `sql:"type:varchar(80)" json:"refund"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TransactionStore transaction store interface
type TransactionStore interface {
	Create(ctx context.Context, tx *db.DB, transaction *Transaction) error
	FindByTraceID(ctx context.Context, traceID string) (*Transaction, error)
	List(ctx context.Context, from uint64, limit int) ([]*Transaction, error)
	ListByUser(ctx context.Context, userID string, from uint64, limit int) ([]*Transaction, error)
}
