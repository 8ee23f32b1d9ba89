// Package oracle serves the current USD price for the supported asset and
// records externally supplied updates. Reads are cached; the cache is
// dropped whenever a new price lands.
package oracle

import (
	"context"
	"math/big"
	"time"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"lendpool/core"
	"lendpool/internal/ledger"
)

// Config oracle service config
type Config struct {
	// EndPoint optional external price feed; empty disables pulling
	EndPoint string
}

type priceOracleService struct {
	db         *db.DB
	priceStore core.IPriceStore
	access     core.AccessControl
	cache      gcache.Cache
	client     *resty.Client
	endpoint   string
}

// New new price oracle service
func New(db *db.DB, priceStore core.IPriceStore, access core.AccessControl, cfg Config) core.IPriceOracleService {
	return &priceOracleService{
		db:         db,
		priceStore: priceStore,
		access:     access,
		cache:      gcache.New(16).LRU().Expiration(time.Minute).Build(),
		client:     resty.New().SetTimeout(10 * time.Second),
		endpoint:   cfg.EndPoint,
	}
}

func (s *priceOracleService) GetPrice(ctx context.Context, assetID string) (*big.Int, error) {
	if cached, err := s.cache.Get(assetID); err == nil {
		return new(big.Int).Set(cached.(*big.Int)), nil
	}

	price, err := s.priceStore.Find(ctx, assetID)
	if err != nil {
		return nil, err
	}

	value := new(big.Int).Set(price.Price.ToInt())
	_ = s.cache.Set(assetID, value)
	return new(big.Int).Set(value), nil
}

func (s *priceOracleService) SetPrice(ctx context.Context, caller, assetID string, price *big.Int) error {
	if !s.access.CanSetPrice(caller) {
		return core.ErrOperationForbidden
	}

	return s.UpdatePrice(ctx, assetID, price)
}

func (s *priceOracleService) UpdatePrice(ctx context.Context, assetID string, price *big.Int) error {
	if price == nil || price.Sign() <= 0 {
		return core.ErrInvalidPrice
	}

	entry, err := s.priceStore.Find(ctx, assetID)
	if err != nil {
		return err
	}

	entry.Price = core.NewBigInt(price)
	if err := s.db.Tx(func(tx *db.DB) error {
		return s.priceStore.Update(ctx, tx, entry)
	}); err != nil {
		return err
	}

	s.cache.Remove(assetID)

	logger.FromContext(ctx).WithField("asset_id", assetID).Infoln("price updated to", price)
	return nil
}

// PullPriceTicker fetches a quote from the configured feed. The ticker
// price arrives in plain USD and is converted to the 1e8 scale by callers.
func (s *priceOracleService) PullPriceTicker(ctx context.Context, symbol string) (*core.PriceTicker, error) {
	var ticker core.PriceTicker
	_, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("symbol", symbol).
		SetResult(&ticker).
		Get(s.endpoint)
	if err != nil {
		return nil, err
	}

	return &ticker, nil
}

// ScalePrice converts a plain USD decimal to the ledger's 1e8-scaled integer
func ScalePrice(price decimal.Decimal) *big.Int {
	return price.Mul(decimal.NewFromBigInt(ledger.PriceScale, 0)).Truncate(0).BigInt()
}
