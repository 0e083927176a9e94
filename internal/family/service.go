package family

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ecobagapp/ecobag-backend/internal/usage"
	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/ecobagapp/ecobag-backend/pkg/enums"
	apperrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memberStore interface {
	Create(ctx context.Context, member *models.FamilyMember) (*models.FamilyMember, error)
	ListByInviter(ctx context.Context, inviterID uuid.UUID) ([]models.FamilyMember, error)
	ListAcceptedForUser(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.FamilyMember, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.FamilyInviteStatus, at time.Time) error
}

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type savingsReader interface {
	SumSavings(ctx context.Context, userID uuid.UUID) (usage.Totals, error)
}

// Service implements family sharing: invites by email, accept/decline
// transitions, and a combined savings view.
type Service struct {
	members memberStore
	users   userFinder
	savings savingsReader
}

// NewService wires the family service.
func NewService(members memberStore, users userFinder, savings savingsReader) *Service {
	return &Service{members: members, users: users, savings: savings}
}

// Invite creates a pending invite addressed to an existing user by email.
func (s *Service) Invite(ctx context.Context, inviterID uuid.UUID, email string) (*models.FamilyMember, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "invite email is required")
	}

	invitee, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "no user with that email")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "looking up invitee")
	}
	if invitee.ID == inviterID {
		return nil, apperrors.New(apperrors.CodeValidation, "cannot invite yourself")
	}

	member := &models.FamilyMember{
		ID:        uuid.New(),
		InviterID: inviterID,
		MemberID:  invitee.ID,
		Status:    enums.FamilyInviteStatusPending,
	}
	created, err := s.members.Create(ctx, member)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "creating family invite")
	}
	return created, nil
}

// List returns the invites the caller has sent.
func (s *Service) List(ctx context.Context, inviterID uuid.UUID) ([]models.FamilyMember, error) {
	members, err := s.members.ListByInviter(ctx, inviterID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing family members")
	}
	return members, nil
}

// AcceptInvite transitions a pending invite to accepted. Only the invited
// user may act on it.
func (s *Service) AcceptInvite(ctx context.Context, userID, inviteID uuid.UUID) (*models.FamilyMember, error) {
	return s.resolveInvite(ctx, userID, inviteID, enums.FamilyInviteStatusAccepted)
}

// DeclineInvite transitions a pending invite to declined.
func (s *Service) DeclineInvite(ctx context.Context, userID, inviteID uuid.UUID) (*models.FamilyMember, error) {
	return s.resolveInvite(ctx, userID, inviteID, enums.FamilyInviteStatusDeclined)
}

func (s *Service) resolveInvite(ctx context.Context, userID, inviteID uuid.UUID, next enums.FamilyInviteStatus) (*models.FamilyMember, error) {
	invite, err := s.members.FindByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "invite not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading invite")
	}
	if invite.MemberID != userID {
		return nil, apperrors.New(apperrors.CodeForbidden, "invite is addressed to another user")
	}
	if invite.Status != enums.FamilyInviteStatusPending {
		return nil, apperrors.New(apperrors.CodeStateConflict, "invite has already been resolved")
	}

	now := time.Now().UTC()
	if err := s.members.UpdateStatus(ctx, invite.ID, next, now); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "updating invite status")
	}
	invite.Status = next
	if next == enums.FamilyInviteStatusAccepted {
		invite.AcceptedAt = &now
	}
	return invite, nil
}

// SavingsView is the family savings report. Totals currently cover the
// caller only; the roster lists accepted family links for context.
type SavingsView struct {
	Totals  usage.Totals          `json:"totals"`
	Members []models.FamilyMember `json:"members"`
}

// FamilySavings returns the caller's savings totals alongside their
// accepted family links.
func (s *Service) FamilySavings(ctx context.Context, userID uuid.UUID) (*SavingsView, error) {
	totals, err := s.savings.SumSavings(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "summing savings")
	}
	members, err := s.members.ListAcceptedForUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing accepted members")
	}
	return &SavingsView{Totals: totals, Members: members}, nil
}
