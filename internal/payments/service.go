package payments

import (
	"context"

	apperrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v84"
)

// ProUnlockAmountCents is the one-time charge for lifetime pro access.
const ProUnlockAmountCents int64 = 299

// ProUnlockCurrency is the currency every pro unlock is charged in.
const ProUnlockCurrency = string(stripe.CurrencyUSD)

// MetadataUserIDKey carries the purchasing user through the Stripe
// round-trip so the webhook can attribute the payment.
const MetadataUserIDKey = "userId"

// Service creates payment intents for the one-time pro unlock.
type Service struct {
	stripe StripePaymentIntentClient
}

// NewService wires the payment service. A nil client means payments are
// not configured and every call fails with a dependency error.
func NewService(stripe StripePaymentIntentClient) *Service {
	return &Service{stripe: stripe}
}

// Intent is the client-facing slice of a created payment intent.
type Intent struct {
	ClientSecret string `json:"clientSecret"`
	AmountCents  int64  `json:"amountCents"`
	Currency     string `json:"currency"`
}

// CreateIntent creates a fixed-amount payment intent tagged with the
// purchasing user's ID.
func (s *Service) CreateIntent(ctx context.Context, userID uuid.UUID) (*Intent, error) {
	if s.stripe == nil {
		return nil, apperrors.New(apperrors.CodeDependency, "payments are not configured")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(ProUnlockAmountCents),
		Currency: stripe.String(ProUnlockCurrency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata(MetadataUserIDKey, userID.String())

	created, err := s.stripe.Create(ctx, params)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "creating stripe payment intent")
	}
	return &Intent{
		ClientSecret: created.ClientSecret,
		AmountCents:  created.Amount,
		Currency:     string(created.Currency),
	}, nil
}
