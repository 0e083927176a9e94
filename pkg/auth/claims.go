package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IdentityPayload captures the data available when minting a JWT. The
// profile fields mirror what the upstream identity provider knows about
// the user so the API can upsert a profile row on first contact.
type IdentityPayload struct {
	UserID          uuid.UUID
	Email           string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// IdentityClaims represents the typed JWT presented by clients.
type IdentityClaims struct {
	UserID          uuid.UUID `json:"user_id"`
	Email           string    `json:"email"`
	FirstName       *string   `json:"first_name,omitempty"`
	LastName        *string   `json:"last_name,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	jwt.RegisteredClaims
}
