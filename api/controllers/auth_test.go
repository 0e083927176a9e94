package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/ecobagapp/ecobag-backend/api/middleware"
	pkgauth "github.com/ecobagapp/ecobag-backend/pkg/auth"
	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
)

type stubUsersService struct {
	upsertFn   func(ctx context.Context, claims *pkgauth.IdentityClaims) (*models.User, error)
	completeFn func(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

func (s stubUsersService) UpsertFromClaims(ctx context.Context, claims *pkgauth.IdentityClaims) (*models.User, error) {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, claims)
	}
	return &models.User{}, nil
}

func (s stubUsersService) CompleteSetup(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if s.completeFn != nil {
		return s.completeFn(ctx, userID)
	}
	return &models.User{}, nil
}

func TestAuthUserUpsertsFromClaims(t *testing.T) {
	userID := uuid.New()
	claims := &pkgauth.IdentityClaims{
		UserID: userID,
		Email:  "shopper@example.com",
	}

	svc := stubUsersService{
		upsertFn: func(ctx context.Context, got *pkgauth.IdentityClaims) (*models.User, error) {
			if got != claims {
				t.Fatalf("expected context claims to be forwarded")
			}
			return &models.User{ID: userID, Email: got.Email}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	resp := httptest.NewRecorder()
	AuthUser(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data models.User `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Email != "shopper@example.com" {
		t.Fatalf("unexpected email %q", envelope.Data.Email)
	}
}

func TestAuthUserWithoutClaimsIsUnauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	resp := httptest.NewRecorder()
	AuthUser(stubUsersService{}, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestSetupCompleteMarksUser(t *testing.T) {
	userID := uuid.New()
	svc := stubUsersService{
		completeFn: func(ctx context.Context, got uuid.UUID) (*models.User, error) {
			if got != userID {
				t.Fatalf("unexpected user %s", got)
			}
			return &models.User{ID: userID, HasCompletedSetup: true}, nil
		},
	}

	req := authedRequest(t, http.MethodPost, "/api/setup/complete", nil, userID)
	resp := httptest.NewRecorder()
	SetupComplete(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data models.User `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.HasCompletedSetup {
		t.Fatalf("expected setup to be marked complete")
	}
}
