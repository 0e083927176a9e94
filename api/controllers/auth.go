package controllers

import (
	"net/http"

	"github.com/ecobagapp/ecobag-backend/api/middleware"
	"github.com/ecobagapp/ecobag-backend/api/responses"
	"github.com/ecobagapp/ecobag-backend/internal/users"
	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/ecobagapp/ecobag-backend/pkg/logger"
)

// AuthUser upserts the profile row from the verified token claims and
// returns it. First contact with the API creates the user.
func AuthUser(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		claims := middleware.ClaimsFromContext(ctx)
		if claims == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "identity claims missing"))
			return
		}

		user, err := svc.UpsertFromClaims(ctx, claims)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// SetupComplete marks the caller's onboarding as finished.
func SetupComplete(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		user, err := svc.CompleteSetup(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}
