package rest

import (
	"net/http"

	"lendpool/core"
	"lendpool/handler/render"
	"lendpool/handler/views"
)

func allMarketsHandler(marketStore core.IMarketStore, priceStore core.IPriceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		markets, err := marketStore.All(ctx)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		marketViews := make([]*views.Market, 0, len(markets))
		for _, m := range markets {
			price, err := priceStore.Find(ctx, m.AssetID)
			if err != nil {
				price = nil
			}
			marketViews = append(marketViews, views.NewMarket(m, price))
		}

		render.JSON(w, marketViews)
	}
}
