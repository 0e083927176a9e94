package stripewebhook

import (
	"context"
	"encoding/json"

	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v84"
)

type paidAccessMarker interface {
	MarkPaidAccess(ctx context.Context, id uuid.UUID, customerRef string) error
}

type ServiceParams struct {
	Users paidAccessMarker
}

// Service applies verified Stripe events to user state.
type Service struct {
	users paidAccessMarker
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "users repo required")
	}
	return &Service{users: params.Users}, nil
}

// HandleEvent processes one event. Unrecognized event types are
// acknowledged without effect so Stripe stops redelivering them.
func (s *Service) HandleEvent(ctx context.Context, event *stripe.Event) error {
	if event == nil || event.Data == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "stripe event data required")
	}

	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode payment intent event")
		}
		return s.grantPaidAccess(ctx, &intent)
	default:
		return nil
	}
}

func (s *Service) grantPaidAccess(ctx context.Context, intent *stripe.PaymentIntent) error {
	raw, ok := intent.Metadata["userId"]
	if !ok || raw == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment intent missing userId metadata")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse userId metadata")
	}

	var customerRef string
	if intent.Customer != nil {
		customerRef = intent.Customer.ID
	}

	// MarkPaidAccess is a no-op for users already flagged, so redelivered
	// events settle cleanly.
	if err := s.users.MarkPaidAccess(ctx, userID, customerRef); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "grant paid access")
	}
	return nil
}
