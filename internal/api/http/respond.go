package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetbill-backend/internal/billing"
	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/logger"
	"fleetbill-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps service and domain errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, billing.ErrUnknownTrip):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, billing.ErrViewOnly),
		errors.Is(err, service.ErrNotTripDriver):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrDuplicateBill),
		errors.Is(err, billing.ErrAlreadyBilled),
		errors.Is(err, domain.ErrDuplicateCode):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, billing.ErrNoBasisSelected),
		errors.Is(err, billing.ErrNoMatchingRate),
		errors.Is(err, billing.ErrNegativeTollFees),
		errors.Is(err, service.ErrTripNotActive),
		errors.Is(err, service.ErrVehicleMismatch),
		errors.Is(err, service.ErrDriverUnassigned),
		errors.Is(err, service.ErrInvalidRateBracket):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

var validate = validator.New()

// decodeAndValidate reads a JSON body into dst and runs struct validation.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}
