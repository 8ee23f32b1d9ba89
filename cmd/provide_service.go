package cmd

import (
	"github.com/fox-one/pkg/store/db"

	"lendpool/core"
	"lendpool/service/lending"
	"lendpool/service/notifier"
	"lendpool/service/oracle"
)

func provideOracleService(db *db.DB, priceStore core.IPriceStore) core.IPriceOracleService {
	return oracle.New(db, priceStore, provideAccessControl(), oracle.Config{
		EndPoint: cfg.App.PriceEndPoint,
	})
}

func provideLendingService(
	db *db.DB,
	marketStore core.IMarketStore,
	accountStore core.IAccountStore,
	transactionStore core.TransactionStore,
	priceSrv core.IPriceOracleService,
) core.ILendingService {
	return lending.New(db, cfg.App.AssetID, marketStore, accountStore, transactionStore, priceSrv, notifier.New())
}
