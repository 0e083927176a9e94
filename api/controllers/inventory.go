package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ecobagapp/ecobag-backend/api/responses"
	"github.com/ecobagapp/ecobag-backend/api/validators"
	"github.com/ecobagapp/ecobag-backend/internal/inventory"
	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/ecobagapp/ecobag-backend/pkg/logger"
)

type inventorySetPayload struct {
	BagTypeID         string `json:"bagTypeId" validate:"required,uuid"`
	Quantity          int    `json:"quantity" validate:"min=0"`
	LowStockThreshold *int   `json:"lowStockThreshold" validate:"omitempty,min=0"`
}

// InventorySet upserts the stock row for one bag type in the caller's car.
func InventorySet(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		carID, err := parseUUIDParam(strings.TrimSpace(chi.URLParam(r, "carId")), "car id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload inventorySetPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		bagTypeID, err := parseUUIDParam(payload.BagTypeID, "bag type id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		row, err := svc.Set(ctx, userID, carID, inventory.SetInput{
			BagTypeID:         bagTypeID,
			Quantity:          payload.Quantity,
			LowStockThreshold: payload.LowStockThreshold,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

// InventoryList returns the stock rows for the caller's car.
func InventoryList(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		carID, err := parseUUIDParam(strings.TrimSpace(chi.URLParam(r, "carId")), "car id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		rows, err := svc.ListForCar(ctx, userID, carID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}
