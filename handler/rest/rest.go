// Package rest exposes the ledger over HTTP: read endpoints for markets,
// accounts and the transaction log, and one endpoint per ledger operation.
// Amounts travel as decimal strings in asset base units.
package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"lendpool/core"
	"lendpool/handler/render"
)

// Handle handle rest api request
func Handle(
	assetID string,
	marketStore core.IMarketStore,
	accountStore core.IAccountStore,
	priceStore core.IPriceStore,
	transactionStore core.TransactionStore,
	lendingSrv core.ILendingService,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/markets/all", allMarketsHandler(marketStore, priceStore))
	router.Get("/accounts", accountHandler(assetID, accountStore))
	router.Get("/transactions", transactionsHandler(transactionStore))

	router.Post("/supply", supplyHandler(lendingSrv))
	router.Post("/withdraw", withdrawHandler(lendingSrv))
	router.Post("/borrow", borrowHandler(lendingSrv))
	router.Post("/repay", repayHandler(lendingSrv))

	return router
}
