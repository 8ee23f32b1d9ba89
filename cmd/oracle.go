package cmd

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"lendpool/service/oracle"
)

var oracleCmd = &cobra.Command{
	Use:   "oracle",
	Short: "price oracle commands",
}

var oracleSetPriceCmd = &cobra.Command{
	Use:   "set-price <usd price>",
	Short: "set the asset price on behalf of an admin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		caller, _ := cmd.Flags().GetString("caller")
		if caller == "" {
			return errors.New("missing --caller")
		}

		usd, err := decimal.NewFromString(args[0])
		if err != nil {
			return err
		}

		database := provideDatabase()
		defer database.Close()

		priceService := provideOracleService(database, providePriceStore(database))
		if err := priceService.SetPrice(ctx, caller, cfg.App.AssetID, oracle.ScalePrice(usd)); err != nil {
			return err
		}

		cmd.Println("price set to", usd.String(), "USD")
		return nil
	},
}

func init() {
	oracleSetPriceCmd.Flags().String("caller", "", "identity requesting the update")
	oracleCmd.AddCommand(oracleSetPriceCmd)
	rootCmd.AddCommand(oracleCmd)
}
