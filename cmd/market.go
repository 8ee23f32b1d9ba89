package cmd

import (
	"errors"

	"github.com/fox-one/pkg/store/db"
	"github.com/spf13/cobra"

	"lendpool/core"
	"lendpool/internal/ledger"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "market commands",
}

// registers the sole supported market with its fixed default parameters
// and the initial price; the market persists for the system's lifetime
var marketInitCmd = &cobra.Command{
	Use:   "init",
	Short: "initialize the market with default parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		marketStore := provideMarketStore(database)
		priceStore := providePriceStore(database)

		if _, err := marketStore.Find(ctx, cfg.App.AssetID); err == nil {
			cmd.Println("market already initialized")
			return nil
		} else if !errors.Is(err, core.ErrUnsupportedAsset) {
			return err
		}

		market := &core.Market{
			AssetID:             cfg.App.AssetID,
			Symbol:              cfg.App.Symbol,
			SupplyRatePerYear:   core.NewBigInt(ledger.DefaultSupplyRatePerYear),
			BorrowRatePerYear:   core.NewBigInt(ledger.DefaultBorrowRatePerYear),
			CollateralFactorBps: ledger.DefaultCollateralFactorBps,
		}
		price := &core.Price{
			AssetID: cfg.App.AssetID,
			Price:   core.NewBigInt(ledger.DefaultInitialPrice),
		}

		if err := database.Tx(func(tx *db.DB) error {
			if err := marketStore.Save(ctx, tx, market); err != nil {
				return err
			}
			return priceStore.Save(ctx, tx, price)
		}); err != nil {
			return err
		}

		cmd.Println("market initialized:", cfg.App.AssetID)
		return nil
	},
}

func init() {
	marketCmd.AddCommand(marketInitCmd)
	rootCmd.AddCommand(marketCmd)
}
