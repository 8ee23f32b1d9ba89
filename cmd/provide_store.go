package cmd

import (
	"github.com/fox-one/pkg/store/db"

	"lendpool/core"
	"lendpool/store/account"
	"lendpool/store/market"
	"lendpool/store/price"
	"lendpool/store/transaction"
)

func provideMarketStore(db *db.DB) core.IMarketStore {
	return market.New(db)
}

func provideAccountStore(db *db.DB) core.IAccountStore {
	return account.New(db)
}

func providePriceStore(db *db.DB) core.IPriceStore {
	return price.New(db)
}

func provideTransactionStore(db *db.DB) core.TransactionStore {
	return transaction.New(db)
}
