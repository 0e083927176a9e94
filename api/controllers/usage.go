package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ecobagapp/ecobag-backend/api/responses"
	"github.com/ecobagapp/ecobag-backend/api/validators"
	"github.com/ecobagapp/ecobag-backend/internal/usage"
	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/ecobagapp/ecobag-backend/pkg/logger"
)

type usageRecordPayload struct {
	BagTypeID  string  `json:"bagTypeId" validate:"required,uuid"`
	CarID      *string `json:"carId" validate:"omitempty,uuid"`
	LocationID *string `json:"locationId" validate:"omitempty,uuid"`
	Quantity   int     `json:"quantity" validate:"required,min=1"`
}

// BagUsageRecord logs a shopping trip's bag usage and freezes its savings.
func BagUsageRecord(svc usage.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "usage service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload usageRecordPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		bagTypeID, err := parseUUIDParam(payload.BagTypeID, "bag type id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input := usage.RecordInput{
			BagTypeID: bagTypeID,
			Quantity:  payload.Quantity,
		}
		if payload.CarID != nil {
			carID, err := parseUUIDParam(*payload.CarID, "car id")
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			input.CarID = &carID
		}
		if payload.LocationID != nil {
			locationID, err := parseUUIDParam(*payload.LocationID, "location id")
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			input.LocationID = &locationID
		}

		recorded, err := svc.Record(ctx, userID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, recorded)
	}
}

// BagUsageRecent returns the caller's latest usage entries.
func BagUsageRecent(svc usage.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "usage service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		limit := 0
		if limitStr := strings.TrimSpace(r.URL.Query().Get("limit")); limitStr != "" {
			value, err := strconv.Atoi(limitStr)
			if err != nil || value <= 0 {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a positive integer"))
				return
			}
			limit = value
		}

		items, err := svc.Recent(ctx, userID, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// SavingsSummary returns the caller's lifetime savings aggregate.
func SavingsSummary(svc usage.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "usage service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		totals, err := svc.Savings(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, totals)
	}
}
