package rest

import (
	"errors"
	"net/http"

	"lendpool/core"
	"lendpool/handler/render"
	"lendpool/handler/views"
)

func accountHandler(assetID string, accountStore core.IAccountStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user")
		if userID == "" {
			render.BadRequest(w, errors.New("missing user"))
			return
		}

		account, err := accountStore.Find(r.Context(), assetID, userID)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, views.NewAccount(account))
	}
}
