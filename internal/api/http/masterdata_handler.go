package http

import (
	"net/http"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/service"
)

type MasterDataHandler struct {
	masterData service.MasterDataService
}

func NewMasterDataHandler(masterData service.MasterDataService) *MasterDataHandler {
	return &MasterDataHandler{masterData: masterData}
}

type agencyRequest struct {
	Name    string `json:"name" validate:"required"`
	Code    string `json:"code" validate:"required,alphanum"`
	Email   string `json:"email" validate:"omitempty,email"`
	PlantID int32  `json:"plant_id" validate:"required"`
}

func (h *MasterDataHandler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	var req agencyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	agency := &domain.Agency{Name: req.Name, Code: req.Code, Email: req.Email, PlantID: req.PlantID}
	if err := h.masterData.CreateAgency(r.Context(), agency); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, agency)
}

func (h *MasterDataHandler) GetAgency(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid agency id")
		return
	}
	agency, err := h.masterData.GetAgency(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agency)
}

func (h *MasterDataHandler) UpdateAgency(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid agency id")
		return
	}

	var req agencyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	agency := &domain.Agency{ID: id, Name: req.Name, Code: req.Code, Email: req.Email, PlantID: req.PlantID}
	if err := h.masterData.UpdateAgency(r.Context(), agency); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agency)
}

func (h *MasterDataHandler) DeleteAgency(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid agency id")
		return
	}
	if err := h.masterData.DeleteAgency(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MasterDataHandler) ListAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.masterData.ListAgencies(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agencies)
}

type plantRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
	Code     string `json:"code" validate:"required,alphanum"`
}

func (h *MasterDataHandler) CreatePlant(w http.ResponseWriter, r *http.Request) {
	var req plantRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plant := &domain.Plant{Name: req.Name, Location: req.Location, Code: req.Code}
	if err := h.masterData.CreatePlant(r.Context(), plant); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plant)
}

func (h *MasterDataHandler) GetPlant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plant id")
		return
	}
	plant, err := h.masterData.GetPlant(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plant)
}

func (h *MasterDataHandler) UpdatePlant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plant id")
		return
	}

	var req plantRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plant := &domain.Plant{ID: id, Name: req.Name, Location: req.Location, Code: req.Code}
	if err := h.masterData.UpdatePlant(r.Context(), plant); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plant)
}

func (h *MasterDataHandler) DeletePlant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plant id")
		return
	}
	if err := h.masterData.DeletePlant(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MasterDataHandler) ListPlants(w http.ResponseWriter, r *http.Request) {
	plants, err := h.masterData.ListPlants(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plants)
}

type vehicleRequest struct {
	AgencyID int32  `json:"agency_id" validate:"required"`
	Number   string `json:"number" validate:"required"`
	Tone     string `json:"tone" validate:"required"`
}

func (h *MasterDataHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	vehicle := &domain.Vehicle{AgencyID: req.AgencyID, Number: req.Number, Tone: req.Tone}
	if err := h.masterData.CreateVehicle(r.Context(), vehicle); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *MasterDataHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	vehicle, err := h.masterData.GetVehicle(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *MasterDataHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	var req vehicleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	vehicle := &domain.Vehicle{ID: id, AgencyID: req.AgencyID, Number: req.Number, Tone: req.Tone}
	if err := h.masterData.UpdateVehicle(r.Context(), vehicle); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *MasterDataHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	if err := h.masterData.DeleteVehicle(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MasterDataHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("agency_id"); raw != "" {
		agencyID, err := parseID(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid agency id")
			return
		}
		vehicles, err := h.masterData.ListVehiclesByAgency(r.Context(), agencyID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, vehicles)
		return
	}

	vehicles, err := h.masterData.ListVehicles(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

type supplierRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
}

func (h *MasterDataHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	supplier := &domain.Supplier{Name: req.Name, Location: req.Location}
	if err := h.masterData.CreateSupplier(r.Context(), supplier); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, supplier)
}

func (h *MasterDataHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}
	supplier, err := h.masterData.GetSupplier(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

func (h *MasterDataHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}

	var req supplierRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	supplier := &domain.Supplier{ID: id, Name: req.Name, Location: req.Location}
	if err := h.masterData.UpdateSupplier(r.Context(), supplier); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, supplier)
}

func (h *MasterDataHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}
	if err := h.masterData.DeleteSupplier(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *MasterDataHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.masterData.ListSuppliers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suppliers)
}
