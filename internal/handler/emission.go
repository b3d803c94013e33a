package handler

import (
	"net/http"

	"github.com/footprint-app/footprint/internal/ctxkeys"
	"github.com/footprint-app/footprint/internal/service"
)

type EmissionHandler struct {
	emissionService *service.EmissionService
	factorService   *service.EmissionFactorService
}

func NewEmissionHandler(emissionService *service.EmissionService, factorService *service.EmissionFactorService) *EmissionHandler {
	return &EmissionHandler{
		emissionService: emissionService,
		factorService:   factorService,
	}
}

type factorRequest struct {
	ActivityType string   `json:"activity_type" validate:"required,max=64"`
	Factor       *float64 `json:"emission_factor" validate:"required,gte=0"`
}

// Emissions returns the caller's current total and per-type breakdown.
func (h *EmissionHandler) Emissions(w http.ResponseWriter, r *http.Request) {
	emissions, err := h.emissionService.Emissions(ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, emissions)
}

func (h *EmissionHandler) CreateFactor(w http.ResponseWriter, r *http.Request) {
	var req factorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	factor, err := h.factorService.Create(req.ActivityType, *req.Factor)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, factor)
}

func (h *EmissionHandler) ListFactors(w http.ResponseWriter, r *http.Request) {
	factors, err := h.factorService.Factors()
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, factors)
}

func (h *EmissionHandler) DeleteFactor(w http.ResponseWriter, r *http.Request) {
	if err := h.factorService.Delete(r.PathValue("id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
