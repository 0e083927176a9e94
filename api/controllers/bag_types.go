package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ecobagapp/ecobag-backend/api/responses"
	"github.com/ecobagapp/ecobag-backend/api/validators"
	"github.com/ecobagapp/ecobag-backend/internal/bagtypes"
	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/ecobagapp/ecobag-backend/pkg/logger"
)

type bagTypeCreatePayload struct {
	Name        string `json:"name" validate:"required"`
	PricePerBag string `json:"pricePerBag" validate:"required"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// BagTypeCreate registers a new bag type for the caller.
func BagTypeCreate(svc bagtypes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bag types service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload bagTypeCreatePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		created, err := svc.Create(ctx, userID, bagtypes.CreateInput{
			Name:        payload.Name,
			PricePerBag: payload.PricePerBag,
			Color:       payload.Color,
			Icon:        payload.Icon,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// BagTypeList returns the caller's bag types.
func BagTypeList(svc bagtypes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bag types service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.ListByOwner(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// BagTypeDelete removes one of the caller's bag types.
func BagTypeDelete(svc bagtypes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bag types service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		bagTypeID, err := parseUUIDParam(strings.TrimSpace(chi.URLParam(r, "bagTypeId")), "bag type id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, userID, bagTypeID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
