package handler

import (
	"net/http"

	"github.com/footprint-app/footprint/internal/ctxkeys"
	"github.com/footprint-app/footprint/internal/service"
)

type TipHandler struct {
	tipService *service.TipService
}

func NewTipHandler(tipService *service.TipService) *TipHandler {
	return &TipHandler{tipService: tipService}
}

func (h *TipHandler) Generate(w http.ResponseWriter, r *http.Request) {
	advisories, err := h.tipService.Generate(ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, advisories)
}

func (h *TipHandler) List(w http.ResponseWriter, r *http.Request) {
	tips, err := h.tipService.Tips(ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tips)
}

func (h *TipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tipService.Delete(ctxkeys.UserID(r.Context()), r.PathValue("id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
