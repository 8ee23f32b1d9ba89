package core

import (
	"context"
	"math/big"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Price current USD price for an asset, 1e8 scale
type Price struct {
	ID        int64     `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID   string    `sql:"size:36;unique_index:idx_prices_asset" json:"asset_id"`
	Price     BigInt    `sql:"type:varchar(80)" json:"price"`
	Version   int64     `sql:"default:0" json:"version"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// PriceTicker price quote pulled from an external feed, in plain USD
type PriceTicker struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// IPriceStore price store interface
type IPriceStore interface {
	Save(ctx context.Context, tx *db.DB, price *Price) error
	Find(ctx context.Context, assetID string) (*Price, error)
	Update(ctx context.Context, tx *db.DB, price *Price) error
}

// IPriceOracleService price oracle service interface
type IPriceOracleService interface {
	// GetPrice returns the current USD price at 1e8 scale
	GetPrice(ctx context.Context, assetID string) (*big.Int, error)
	// SetPrice records a new price on behalf of caller; gated by AccessControl
	SetPrice(ctx context.Context, caller, assetID string, price *big.Int) error
	// UpdatePrice records a new price from a trusted internal feed
	UpdatePrice(ctx context.Context, assetID string, price *big.Int) error
	// PullPriceTicker fetches a quote from the configured endpoint
	PullPriceTicker(ctx context.Context, symbol string) (*PriceTicker, error)
}
