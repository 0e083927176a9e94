package stripewebhook

import (
	"context"
	"encoding/json"
	"testing"

	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v84"
)

type stubPaidAccessMarker struct {
	calls []struct {
		id          uuid.UUID
		customerRef string
	}
	err error
}

func (s *stubPaidAccessMarker) MarkPaidAccess(ctx context.Context, id uuid.UUID, customerRef string) error {
	s.calls = append(s.calls, struct {
		id          uuid.UUID
		customerRef string
	}{id, customerRef})
	return s.err
}

func paymentIntentEvent(t *testing.T, intent *stripe.PaymentIntent) *stripe.Event {
	t.Helper()
	raw, err := json.Marshal(intent)
	if err != nil {
		t.Fatalf("marshal intent: %v", err)
	}
	return &stripe.Event{
		ID:   "evt_test",
		Type: stripe.EventTypePaymentIntentSucceeded,
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestServiceHandleEventGrantsPaidAccess(t *testing.T) {
	users := &stubPaidAccessMarker{}
	svc, err := NewService(ServiceParams{Users: users})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}

	userID := uuid.New()
	event := paymentIntentEvent(t, &stripe.PaymentIntent{
		ID:       "pi_123",
		Metadata: map[string]string{"userId": userID.String()},
		Customer: &stripe.Customer{ID: "cus_123"},
	})

	if err := svc.HandleEvent(context.Background(), event); err != nil {
		t.Fatalf("HandleEvent returned error: %v", err)
	}
	if len(users.calls) != 1 {
		t.Fatalf("expected one MarkPaidAccess call, got %d", len(users.calls))
	}
	if users.calls[0].id != userID || users.calls[0].customerRef != "cus_123" {
		t.Fatalf("unexpected call: %+v", users.calls[0])
	}
}

func TestServiceHandleEventIgnoresOtherTypes(t *testing.T) {
	users := &stubPaidAccessMarker{}
	svc, err := NewService(ServiceParams{Users: users})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}

	event := &stripe.Event{
		ID:   "evt_other",
		Type: stripe.EventTypePaymentIntentCreated,
		Data: &stripe.EventData{Raw: []byte(`{}`)},
	}
	if err := svc.HandleEvent(context.Background(), event); err != nil {
		t.Fatalf("unrecognized events must be acknowledged, got %v", err)
	}
	if len(users.calls) != 0 {
		t.Fatalf("expected no MarkPaidAccess calls, got %d", len(users.calls))
	}
}

func TestServiceHandleEventRequiresUserMetadata(t *testing.T) {
	users := &stubPaidAccessMarker{}
	svc, err := NewService(ServiceParams{Users: users})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}

	event := paymentIntentEvent(t, &stripe.PaymentIntent{ID: "pi_bare"})
	err = svc.HandleEvent(context.Background(), event)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}

	event = paymentIntentEvent(t, &stripe.PaymentIntent{
		ID:       "pi_bad",
		Metadata: map[string]string{"userId": "not-a-uuid"},
	})
	err = svc.HandleEvent(context.Background(), event)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR for bad uuid, got %v", err)
	}
	if len(users.calls) != 0 {
		t.Fatalf("expected no MarkPaidAccess calls, got %d", len(users.calls))
	}
}
