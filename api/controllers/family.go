package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ecobagapp/ecobag-backend/api/responses"
	"github.com/ecobagapp/ecobag-backend/api/validators"
	"github.com/ecobagapp/ecobag-backend/internal/family"
	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/ecobagapp/ecobag-backend/pkg/logger"
)

type familyInvitePayload struct {
	Email string `json:"email" validate:"required,email"`
}

// FamilyList returns the invites the caller has sent.
func FamilyList(svc *family.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "family service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		members, err := svc.List(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, members)
	}
}

// FamilyInvite invites another registered user by email.
func FamilyInvite(svc *family.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "family service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload familyInvitePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		invite, err := svc.Invite(ctx, userID, payload.Email)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, invite)
	}
}

// FamilyInviteAccept accepts a pending invite addressed to the caller.
func FamilyInviteAccept(svc *family.Service, logg *logger.Logger) http.HandlerFunc {
	return familyInviteResolution(svc, logg, true)
}

// FamilyInviteDecline declines a pending invite addressed to the caller.
func FamilyInviteDecline(svc *family.Service, logg *logger.Logger) http.HandlerFunc {
	return familyInviteResolution(svc, logg, false)
}

func familyInviteResolution(svc *family.Service, logg *logger.Logger, accept bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "family service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		inviteID, err := parseUUIDParam(strings.TrimSpace(chi.URLParam(r, "inviteId")), "invite id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		resolve := svc.DeclineInvite
		if accept {
			resolve = svc.AcceptInvite
		}
		invite, err := resolve(ctx, userID, inviteID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, invite)
	}
}

// FamilySavings reports the caller's savings totals plus their accepted
// family links.
func FamilySavings(svc *family.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "family service unavailable"))
			return
		}

		userID, err := currentUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		view, err := svc.FamilySavings(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
