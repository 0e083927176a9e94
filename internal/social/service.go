package social

import (
	"context"
	"strings"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/ecobagapp/ecobag-backend/pkg/enums"
	apperrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/google/uuid"
)

type shareStore interface {
	Insert(ctx context.Context, share *models.SocialShare) (*models.SocialShare, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.SocialShare, error)
}

// Service records outbound social shares.
type Service struct {
	shares shareStore
}

func NewService(shares shareStore) *Service {
	return &Service{shares: shares}
}

// RecordInput is the validated payload for logging a share.
type RecordInput struct {
	Platform string `json:"platform" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// Record logs one share event for the user.
func (s *Service) Record(ctx context.Context, userID uuid.UUID, in RecordInput) (*models.SocialShare, error) {
	platform, err := enums.ParseSharePlatform(in.Platform)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "unsupported share platform")
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "share content is required")
	}

	share := &models.SocialShare{
		ID:       uuid.New(),
		UserID:   userID,
		Platform: platform,
		Content:  content,
	}
	created, err := s.shares.Insert(ctx, share)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "recording social share")
	}
	return created, nil
}

// History returns the user's shares, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]models.SocialShare, error) {
	shares, err := s.shares.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing social shares")
	}
	return shares, nil
}
