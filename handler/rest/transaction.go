package rest

import (
	"net/http"
	"strconv"

	"lendpool/core"
	"lendpool/handler/render"
	"lendpool/handler/views"
)

const maxTransactionPage = 100

func transactionsHandler(transactionStore core.TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		from, _ := strconv.ParseUint(r.URL.Query().Get("from"), 10, 64)
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 || limit > maxTransactionPage {
			limit = maxTransactionPage
		}

		var (
			transactions []*core.Transaction
			err          error
		)
		if userID := r.URL.Query().Get("user"); userID != "" {
			transactions, err = transactionStore.ListByUser(ctx, userID, from, limit)
		} else {
			transactions, err = transactionStore.List(ctx, from, limit)
		}
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		transactionViews := make([]*views.Transaction, 0, len(transactions))
		for _, t := range transactions {
			transactionViews = append(transactionViews, views.NewTransaction(t))
		}

		render.JSON(w, transactionViews)
	}
}
