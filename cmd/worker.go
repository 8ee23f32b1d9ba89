package cmd

import (
	"sync"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"

	"lendpool/worker"
	"lendpool/worker/auditor"
	"lendpool/worker/pricesync"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "lendpool background workers",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		ctx = logger.WithContext(ctx, logger.FromContext(ctx))

		database := provideDatabase()
		defer database.Close()

		marketStore := provideMarketStore(database)
		accountStore := provideAccountStore(database)
		priceStore := providePriceStore(database)
		priceService := provideOracleService(database, priceStore)

		auditInterval := cfg.Worker.AuditInterval
		if auditInterval <= 0 {
			auditInterval = time.Minute
		}

		workers := []worker.Worker{
			auditor.New(marketStore, accountStore, auditInterval),
		}

		if cfg.App.PriceEndPoint != "" {
			syncInterval := cfg.Worker.PriceSyncInterval
			if syncInterval <= 0 {
				syncInterval = 30 * time.Second
			}
			workers = append(workers, pricesync.New(marketStore, priceService, syncInterval))
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(worker worker.Worker) {
				defer wg.Done()
				_ = worker.Run(ctx)
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
