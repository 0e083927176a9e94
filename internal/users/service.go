package users

import (
	"context"
	"errors"

	"github.com/ecobagapp/ecobag-backend/pkg/auth"
	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes profile operations keyed by the authenticated identity.
type Service interface {
	UpsertFromClaims(ctx context.Context, claims *auth.IdentityClaims) (*models.User, error)
	CompleteSetup(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type service struct {
	repo *Repository
}

// NewService builds a users service with the required dependencies.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "users repo is required")
	}
	return &service{repo: repo}, nil
}

// UpsertFromClaims materializes (or refreshes) the profile row for the
// identity presented by the token. First contact creates the row.
func (s *service) UpsertFromClaims(ctx context.Context, claims *auth.IdentityClaims) (*models.User, error) {
	if claims == nil || claims.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "identity claims missing")
	}
	if claims.Email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email claim is required")
	}

	user := &models.User{
		ID:              claims.UserID,
		Email:           claims.Email,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageURL: claims.ProfileImageURL,
	}

	stored, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert user")
	}
	return stored, nil
}

// CompleteSetup marks the onboarding flow as finished.
func (s *service) CompleteSetup(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	user, err := s.repo.SetSetupComplete(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "complete setup")
	}
	return user, nil
}
