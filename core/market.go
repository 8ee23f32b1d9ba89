package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Market market info. A single market backs the sole supported asset; its
// rate and collateral parameters are fixed at initialization.
type Market struct {
	ID      uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID string `sql:"size:36;unique_index:asset_idx" json:"asset_id"`
	Symbol  string `sql:"size:20" json:"symbol"`
	// TotalSupply is the sum of all live supply balances, in base units
	TotalSupply BigInt `sql:"type:varchar(80)" json:"total_supply"`
	// TotalBorrow is the sum of all live borrow balances, in base units
	TotalBorrow BigInt `sql:"type:varchar(80)" json:"total_borrow"`
	// SupplyRatePerYear annualized simple interest credited to suppliers, 1e18 scale
	SupplyRatePerYear BigInt `sql:"type:varchar(80)" json:"supply_rate_per_year"`
	// BorrowRatePerYear annualized simple interest charged to borrowers, 1e18 scale
	BorrowRatePerYear BigInt `sql:"type:varchar(80)" json:"borrow_rate_per_year"`
	// CollateralFactorBps max borrow value per collateral value, in basis points
	CollateralFactorBps uint64    `sql:"default:0" json:"collateral_factor_bps"`
	Version             int64     `sql:"default:0" json:"version"`
	CreatedAt           time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IMarketStore market store interface
type IMarketStore interface {
	Save(ctx context.Context, tx *db.DB, market *Market) error
	Find(ctx context.Context, assetID string) (*Market, error)
	All(ctx context.Context) ([]*Market, error)
	Update(ctx context.Context, tx *db.DB, market *Market) error
}
