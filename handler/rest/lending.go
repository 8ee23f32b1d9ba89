package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"lendpool/core"
	"lendpool/handler/render"
)

type operationParams struct {
	UserID string      `json:"user_id"`
	Amount core.BigInt `json:"amount"`
}

func bindOperation(r *http.Request) (*operationParams, error) {
	var params operationParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

func supplyHandler(lendingSrv core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := bindOperation(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := lendingSrv.Supply(r.Context(), params.UserID, params.Amount.ToInt(), time.Now()); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}

func withdrawHandler(lendingSrv core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := bindOperation(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		transfer, err := lendingSrv.Withdraw(r.Context(), params.UserID, params.Amount.ToInt(), time.Now())
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"transfer": transfer})
	}
}

func borrowHandler(lendingSrv core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := bindOperation(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		transfer, err := lendingSrv.Borrow(r.Context(), params.UserID, params.Amount.ToInt(), time.Now())
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{"transfer": transfer})
	}
}

func repayHandler(lendingSrv core.ILendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := bindOperation(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := lendingSrv.Repay(r.Context(), params.UserID, params.Amount.ToInt(), time.Now())
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, result)
	}
}
