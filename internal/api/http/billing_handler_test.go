package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetbill-backend/internal/billing"
	"fleetbill-backend/internal/domain"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func i32(v int32) *int32 { return &v }

func testActor() billing.Actor {
	return billing.Actor{UserID: 10, Role: domain.UserRoleDriver, AgencyID: i32(2)}
}

func adminActor() billing.Actor {
	return billing.Actor{UserID: 1, Role: domain.UserRoleAdmin}
}

// withActor injects the actor the way the auth middleware does.
func withActor(r *http.Request, actor billing.Actor) *http.Request {
	ctx := context.WithValue(r.Context(), actorKey, actor)
	return r.WithContext(ctx)
}

func TestBillingHandler_Ledger(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc)

		pending := []billing.PendingBill{{Trip: domain.Trip{ID: 1}}}
		generated := []billing.SavedBill{{Trip: domain.Trip{ID: 2}, BillNumber: "INV2025000042"}}
		svc.On("Ledger", mock.Anything, testActor(), billing.LedgerFilter{}).Return(pending, generated, nil)

		req := withActor(httptest.NewRequest(http.MethodGet, "/billing/ledger", nil), testActor())
		rec := httptest.NewRecorder()
		handler.Ledger(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body ledgerResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Len(t, body.Pending, 1)
		assert.Len(t, body.Generated, 1)
		assert.Equal(t, "INV2025000042", body.Generated[0].BillNumber)
	})

	t.Run("FilterParsing", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc)

		want := billing.LedgerFilter{
			Transporter:   "acme",
			VehicleNumber: "KA01",
		}
		start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		want.StartDate = &start

		svc.On("Ledger", mock.Anything, testActor(), want).Return([]billing.PendingBill{}, []billing.SavedBill{}, nil)

		req := withActor(httptest.NewRequest(http.MethodGet, "/billing/ledger?transporter=acme&vehicle_number=KA01&start_date=2025-04-01", nil), testActor())
		rec := httptest.NewRecorder()
		handler.Ledger(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("EndDateCoversWholeDay", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/billing/ledger?start_date=2025-06-10&end_date=2025-06-10", nil)

		filter, err := ledgerFilterFromQuery(req)
		assert.NoError(t, err)

		ended := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
		trip := domain.Trip{ID: 1, EndTime: &ended}
		out := billing.ApplyFilters([]domain.Trip{trip}, filter)
		assert.Len(t, out, 1)
	})

	t.Run("BadDate", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc)

		req := withActor(httptest.NewRequest(http.MethodGet, "/billing/ledger?end_date=01-04-2025", nil), testActor())
		rec := httptest.NewRecorder()
		handler.Ledger(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NoActor", func(t *testing.T) {
		handler := NewBillingHandler(new(MockBillingService))

		req := httptest.NewRequest(http.MethodGet, "/billing/ledger", nil)
		rec := httptest.NewRecorder()
		handler.Ledger(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func saveRequest(t *testing.T, tripID string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/billing/trips/"+tripID+"/save", bytes.NewReader(raw))
	return mux.SetURLVars(withActor(req, testActor()), map[string]string{"tripId": tripID})
}

func TestBillingHandler_SaveBill(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc)

		saved := &billing.SavedBill{
			Trip:        domain.Trip{ID: 1},
			BillNumber:  "INV2025000042",
			TotalAmount: 1650,
		}
		svc.On("SaveBill", mock.Anything, testActor(), int32(1), billing.BasisTrip, 150.0).Return(saved, nil)

		rec := httptest.NewRecorder()
		handler.SaveBill(rec, saveRequest(t, "1", billRequest{Basis: "Trip", TollFees: 150}))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("DuplicateIsConflict", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc)

		svc.On("SaveBill", mock.Anything, testActor(), int32(1), billing.BasisTrip, 0.0).Return(nil, domain.ErrDuplicateBill)

		rec := httptest.NewRecorder()
		handler.SaveBill(rec, saveRequest(t, "1", billRequest{Basis: "Trip"}))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("ViewOnlyIsForbidden", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc)

		svc.On("SaveBill", mock.Anything, testActor(), int32(1), billing.BasisKilometer, 0.0).Return(nil, billing.ErrViewOnly)

		rec := httptest.NewRecorder()
		handler.SaveBill(rec, saveRequest(t, "1", billRequest{Basis: "Kilometer"}))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("InvalidBasisRejected", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc)

		rec := httptest.NewRecorder()
		handler.SaveBill(rec, saveRequest(t, "1", map[string]any{"basis": "Hourly"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "SaveBill", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownTripIsNotFound", func(t *testing.T) {
		svc := new(MockBillingService)
		handler := NewBillingHandler(svc)

		svc.On("SaveBill", mock.Anything, testActor(), int32(99), billing.BasisTrip, 0.0).Return(nil, billing.ErrUnknownTrip)

		rec := httptest.NewRecorder()
		handler.SaveBill(rec, saveRequest(t, "99", billRequest{Basis: "Trip"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
