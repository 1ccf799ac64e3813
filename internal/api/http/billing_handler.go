package http

import (
	"net/http"
	"time"

	"fleetbill-backend/internal/billing"
	"fleetbill-backend/internal/service"
)

type BillingHandler struct {
	billingService service.BillingService
}

func NewBillingHandler(billingService service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

type ledgerResponse struct {
	Pending   []billing.PendingBill `json:"pending"`
	Generated []billing.SavedBill   `json:"generated"`
}

// Ledger returns the caller's pending/generated billing projection.
// Optional query parameters: transporter, vehicle_number, start_date,
// end_date (YYYY-MM-DD).
func (h *BillingHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	filter, err := ledgerFilterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pending, generated, err := h.billingService.Ledger(r.Context(), actor, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ledgerResponse{Pending: pending, Generated: generated})
}

func ledgerFilterFromQuery(r *http.Request) (billing.LedgerFilter, error) {
	q := r.URL.Query()
	filter := billing.LedgerFilter{
		Transporter:   q.Get("transporter"),
		VehicleNumber: q.Get("vehicle_number"),
	}
	if raw := q.Get("start_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &t
	}
	if raw := q.Get("end_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		// The parameter names a calendar day; trips ending any time on
		// that day are in range.
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.EndDate = &t
	}
	return filter, nil
}

type billRequest struct {
	Basis    string  `json:"basis" validate:"required,oneof=Trip Kilometer"`
	TollFees float64 `json:"toll_fees" validate:"gte=0"`
}

// PreviewBill computes the rate and total for a pending trip without
// persisting anything.
func (h *BillingHandler) PreviewBill(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	tripID, err := pathID(r, "tripId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	var req billRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	preview, err := h.billingService.PreviewBill(r.Context(), actor, tripID, billing.Basis(req.Basis), req.TollFees)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

// SaveBill persists a bill for a pending trip and returns the saved state.
func (h *BillingHandler) SaveBill(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	tripID, err := pathID(r, "tripId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	var req billRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.billingService.SaveBill(r.Context(), actor, tripID, billing.Basis(req.Basis), req.TollFees)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}
