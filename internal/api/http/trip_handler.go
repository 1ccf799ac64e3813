package http

import (
	"net/http"
	"strconv"

	"fleetbill-backend/internal/service"

	"github.com/gorilla/mux"
)

type TripHandler struct {
	tripService service.TripService
}

func NewTripHandler(tripService service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

type startTripRequest struct {
	VehicleID    int32   `json:"vehicle_id" validate:"required"`
	SupplierID   *int32  `json:"supplier_id"`
	StartLat     float64 `json:"start_lat" validate:"required,latitude"`
	StartLng     float64 `json:"start_lng" validate:"required,longitude"`
	StartAddress string  `json:"start_address"`
}

func (h *TripHandler) StartTrip(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req startTripRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	trip, err := h.tripService.StartTrip(r.Context(), actor.UserID, service.StartTripRequest{
		VehicleID:    req.VehicleID,
		SupplierID:   req.SupplierID,
		StartLat:     req.StartLat,
		StartLng:     req.StartLng,
		StartAddress: req.StartAddress,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

type endTripRequest struct {
	EndLat     float64 `json:"end_lat" validate:"required,latitude"`
	EndLng     float64 `json:"end_lng" validate:"required,longitude"`
	EndAddress string  `json:"end_address"`
	DistanceKM float64 `json:"distance_km" validate:"gte=0"`
}

func (h *TripHandler) EndTrip(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	tripID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	var req endTripRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	trip, err := h.tripService.EndTrip(r.Context(), actor.UserID, service.EndTripRequest{
		TripID:     tripID,
		EndLat:     req.EndLat,
		EndLng:     req.EndLng,
		EndAddress: req.EndAddress,
		DistanceKM: req.DistanceKM,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	trips, err := h.tripService.ListVisible(r.Context(), actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	tripID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid trip id")
		return
	}

	trip, err := h.tripService.GetTrip(r.Context(), actor, tripID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// pathID parses an int32 route variable.
func pathID(r *http.Request, name string) (int32, error) {
	return parseID(mux.Vars(r)[name])
}

func parseID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
