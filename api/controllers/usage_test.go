package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecobagapp/ecobag-backend/api/middleware"
	internalusage "github.com/ecobagapp/ecobag-backend/internal/usage"
	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
)

type stubUsageService struct {
	recordFn  func(ctx context.Context, userID uuid.UUID, input internalusage.RecordInput) (*models.BagUsage, error)
	recentFn  func(ctx context.Context, userID uuid.UUID, limit int) ([]models.BagUsage, error)
	savingsFn func(ctx context.Context, userID uuid.UUID) (internalusage.Totals, error)
}

func (s stubUsageService) Record(ctx context.Context, userID uuid.UUID, input internalusage.RecordInput) (*models.BagUsage, error) {
	if s.recordFn != nil {
		return s.recordFn(ctx, userID, input)
	}
	return &models.BagUsage{}, nil
}

func (s stubUsageService) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]models.BagUsage, error) {
	if s.recentFn != nil {
		return s.recentFn(ctx, userID, limit)
	}
	return nil, nil
}

func (s stubUsageService) Savings(ctx context.Context, userID uuid.UUID) (internalusage.Totals, error) {
	if s.savingsFn != nil {
		return s.savingsFn(ctx, userID)
	}
	return internalusage.Totals{}, nil
}

func authedRequest(t *testing.T, method, target string, body []byte, userID uuid.UUID) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	ctx := middleware.WithUserID(req.Context(), userID.String())
	return req.WithContext(ctx)
}

func TestBagUsageRecordFreezesSavingsResponse(t *testing.T) {
	userID := uuid.New()
	bagTypeID := uuid.New()
	carID := uuid.New()

	svc := stubUsageService{
		recordFn: func(ctx context.Context, gotUser uuid.UUID, input internalusage.RecordInput) (*models.BagUsage, error) {
			if gotUser != userID {
				t.Fatalf("unexpected user %s", gotUser)
			}
			if input.BagTypeID != bagTypeID || input.Quantity != 3 {
				t.Fatalf("unexpected input %+v", input)
			}
			if input.CarID == nil || *input.CarID != carID {
				t.Fatalf("expected car id to be forwarded")
			}
			return &models.BagUsage{
				ID:           uuid.New(),
				UserID:       userID,
				BagTypeID:    bagTypeID,
				Quantity:     3,
				SavingsAmount: decimal.RequireFromString("1.50"),
			}, nil
		},
	}

	body, _ := json.Marshal(map[string]any{
		"bagTypeId": bagTypeID.String(),
		"carId":     carID.String(),
		"quantity":  3,
	})
	req := authedRequest(t, http.MethodPost, "/api/bag-usage", body, userID)
	resp := httptest.NewRecorder()
	BagUsageRecord(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data models.BagUsage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.SavingsAmount.Equal(decimal.RequireFromString("1.50")) {
		t.Fatalf("expected savings 1.50, got %s", envelope.Data.SavingsAmount)
	}
}

func TestBagUsageRecordRejectsZeroQuantity(t *testing.T) {
	userID := uuid.New()
	body, _ := json.Marshal(map[string]any{
		"bagTypeId": uuid.New().String(),
		"quantity":  0,
	})
	req := authedRequest(t, http.MethodPost, "/api/bag-usage", body, userID)
	resp := httptest.NewRecorder()
	BagUsageRecord(stubUsageService{}, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestBagUsageRecordRequiresAuthContext(t *testing.T) {
	body, _ := json.Marshal(map[string]any{
		"bagTypeId": uuid.New().String(),
		"quantity":  1,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/bag-usage", bytes.NewReader(body))
	resp := httptest.NewRecorder()
	BagUsageRecord(stubUsageService{}, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestBagUsageRecentForwardsLimit(t *testing.T) {
	userID := uuid.New()
	svc := stubUsageService{
		recentFn: func(ctx context.Context, gotUser uuid.UUID, limit int) ([]models.BagUsage, error) {
			if limit != 5 {
				t.Fatalf("unexpected limit %d", limit)
			}
			return []models.BagUsage{{ID: uuid.New(), UserID: gotUser, Quantity: 2}}, nil
		},
	}

	req := authedRequest(t, http.MethodGet, "/api/bag-usage?limit=5", nil, userID)
	resp := httptest.NewRecorder()
	BagUsageRecent(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestBagUsageRecentRejectsBadLimit(t *testing.T) {
	req := authedRequest(t, http.MethodGet, "/api/bag-usage?limit=-2", nil, uuid.New())
	resp := httptest.NewRecorder()
	BagUsageRecent(stubUsageService{}, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestSavingsSummaryReturnsTotals(t *testing.T) {
	userID := uuid.New()
	svc := stubUsageService{
		savingsFn: func(ctx context.Context, gotUser uuid.UUID) (internalusage.Totals, error) {
			return internalusage.Totals{
				TotalSavings:   decimal.RequireFromString("12.75"),
				TotalBagsSaved: 31,
			}, nil
		},
	}

	req := authedRequest(t, http.MethodGet, "/api/savings", nil, userID)
	resp := httptest.NewRecorder()
	SavingsSummary(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data internalusage.Totals `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.TotalBagsSaved != 31 {
		t.Fatalf("expected 31 bags saved, got %d", envelope.Data.TotalBagsSaved)
	}
	if !envelope.Data.TotalSavings.Equal(decimal.RequireFromString("12.75")) {
		t.Fatalf("expected 12.75 savings, got %s", envelope.Data.TotalSavings)
	}
}
