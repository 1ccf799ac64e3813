package http

import (
	"net/http"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/service"
)

type RateHandler struct {
	rateService service.RateService
}

func NewRateHandler(rateService service.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

type rateRequest struct {
	AgencyID int32    `json:"agency_id" validate:"required"`
	Tone     float64  `json:"tone" validate:"required,gt=0"`
	Type     string   `json:"type" validate:"required,oneof=Trip Kilometer"`
	MinKM    *float64 `json:"min_km" validate:"omitempty,gte=0"`
	MaxKM    *float64 `json:"max_km" validate:"omitempty,gte=0"`
	Rate     float64  `json:"rate" validate:"required,gt=0"`
}

func (r rateRequest) toDomain() *domain.Rate {
	return &domain.Rate{
		AgencyID: r.AgencyID,
		Tone:     r.Tone,
		Type:     domain.RateType(r.Type),
		MinKM:    r.MinKM,
		MaxKM:    r.MaxKM,
		Rate:     r.Rate,
	}
}

func (h *RateHandler) CreateRate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rate := req.toDomain()
	if err := h.rateService.CreateRate(r.Context(), rate); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rate)
}

func (h *RateHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rate id")
		return
	}

	rate, err := h.rateService.GetRate(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (h *RateHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rate id")
		return
	}

	var req rateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rate := req.toDomain()
	rate.ID = id
	if err := h.rateService.UpdateRate(r.Context(), rate); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (h *RateHandler) DeleteRate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rate id")
		return
	}

	if err := h.rateService.DeleteRate(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *RateHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.rateService.ListRates(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rates)
}
