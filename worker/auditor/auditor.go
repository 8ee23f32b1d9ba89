// Package auditor periodically re-derives market totals from the account
// table and reports any divergence. The ledger maintains totals in lockstep
// with balances; the auditor is the independent check that it stayed true.
package auditor

import (
	"context"
	"math/big"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"

	"lendpool/core"
	"lendpool/worker"
)

// Worker conservation audit worker
type Worker struct {
	worker.TickWorker
	marketStore  core.IMarketStore
	accountStore core.IAccountStore
}

// New new auditor worker
func New(marketStore core.IMarketStore, accountStore core.IAccountStore, interval time.Duration) *Worker {
	return &Worker{
		TickWorker:   worker.TickWorker{Delay: interval},
		marketStore:  marketStore,
		accountStore: accountStore,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "auditor")

	markets, err := w.marketStore.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("markets.All")
		return err
	}

	for _, market := range markets {
		accounts, err := w.accountStore.FindByAsset(ctx, market.AssetID)
		if err != nil {
			log.WithError(err).Errorln("accounts.FindByAsset")
			return err
		}

		supplySum := big.NewInt(0)
		borrowSum := big.NewInt(0)
		for _, account := range accounts {
			supplySum.Add(supplySum, account.SupplyBalance.ToInt())
			borrowSum.Add(borrowSum, account.BorrowBalance.ToInt())
		}

		if supplySum.Cmp(market.TotalSupply.ToInt()) != 0 || borrowSum.Cmp(market.TotalBorrow.ToInt()) != 0 {
			log.WithFields(logrus.Fields{
				"asset_id":     market.AssetID,
				"total_supply": market.TotalSupply.String(),
				"supply_sum":   supplySum.String(),
				"total_borrow": market.TotalBorrow.String(),
				"borrow_sum":   borrowSum.String(),
			}).Errorln("conservation violated")
		}
	}

	return nil
}
