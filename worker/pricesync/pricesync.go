// Package pricesync pulls quotes from the configured external feed and
// records them through the oracle service. It is only started when a feed
// endpoint is configured; otherwise the price changes solely through the
// admin set-price operation.
package pricesync

import (
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"

	"lendpool/core"
	"lendpool/service/oracle"
	"lendpool/worker"
)

// Worker price sync worker
type Worker struct {
	worker.TickWorker
	marketStore  core.IMarketStore
	priceService core.IPriceOracleService
}

// New new pricesync worker
func New(marketStore core.IMarketStore, priceSrv core.IPriceOracleService, interval time.Duration) *Worker {
	return &Worker{
		TickWorker:   worker.TickWorker{Delay: interval},
		marketStore:  marketStore,
		priceService: priceSrv,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "pricesync")

	markets, err := w.marketStore.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("markets.All")
		return err
	}

	for _, market := range markets {
		ticker, err := w.priceService.PullPriceTicker(ctx, market.Symbol)
		if err != nil {
			log.WithError(err).Errorln("pull price ticker")
			continue
		}

		if ticker.Price.LessThanOrEqual(decimal.Zero) {
			log.Errorln("invalid ticker price:", ticker.Symbol, ticker.Price)
			continue
		}

		if err := w.priceService.UpdatePrice(ctx, market.AssetID, oracle.ScalePrice(ticker.Price)); err != nil {
			log.WithError(err).Errorln("update price")
			continue
		}
	}

	return nil
}
