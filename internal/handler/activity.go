package handler

import (
	"net/http"
	"time"

	"github.com/footprint-app/footprint/internal/ctxkeys"
	"github.com/footprint-app/footprint/internal/model"
	"github.com/footprint-app/footprint/internal/service"
)

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

type activityRequest struct {
	ActivityType string     `json:"activity_type" validate:"required,max=64"`
	Value        *float64   `json:"activity_value" validate:"required,gte=0"`
	Date         *time.Time `json:"date"`
}

type activityPatchRequest struct {
	ActivityType *string    `json:"activity_type" validate:"omitempty,min=1,max=64"`
	Value        *float64   `json:"activity_value" validate:"omitempty,gte=0"`
	Date         *time.Time `json:"date"`
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	entry, err := h.activityService.Create(ctxkeys.UserID(r.Context()), req.ActivityType, *req.Value, date)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.activityService.Activities(ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.activityService.ByID(ctxkeys.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req activityPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	patch := model.ActivityLogPatch{
		ActivityType: req.ActivityType,
		Value:        req.Value,
		Date:         req.Date,
	}

	entry, err := h.activityService.Update(ctxkeys.UserID(r.Context()), r.PathValue("id"), patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.activityService.Delete(ctxkeys.UserID(r.Context()), r.PathValue("id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
