package core

import (
	"context"
	"database/sql"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Account per-user balances for one market. Accounts are created implicitly
// on first interaction and persist at zero balance.
type Account struct {
	ID      uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID string `sql:"size:36;unique_index:account_idx" json:"asset_id"`
	UserID  string `sql:"size:36;unique_index:account_idx" json:"user_id"`
	// SupplyBalance principal plus accrued interest owed to the user, base units
	SupplyBalance BigInt `sql:"type:varchar(80)" json:"supply_balance"`
	// BorrowBalance principal plus accrued interest owed by the user, base units
	BorrowBalance BigInt `sql:"type:varchar(80)" json:"borrow_balance"`
	// LastAccrualAt last instant interest was applied; invalid until first touch
	LastAccrualAt sql.NullTime `json:"last_accrual_at"`
	Version       int64        `sql:"default:0" json:"version"`
	CreatedAt     time.Time    `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time    `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IAccountStore account store interface
type IAccountStore interface {
	// Find returns a blank account (ID zero) when none exists yet
	Find(ctx context.Context, assetID, userID string) (*Account, error)
	FindByUser(ctx context.Context, userID string) ([]*Account, error)
	FindByAsset(ctx context.Context, assetID string) ([]*Account, error)
	Save(ctx context.Context, tx *db.DB, account *Account) error
	Update(ctx context.Context, tx *db.DB, account *Account) error
}
