package handler

import (
	"net/http"
	"time"

	"github.com/footprint-app/footprint/internal/carbon"
	"github.com/footprint-app/footprint/internal/ctxkeys"
	"github.com/footprint-app/footprint/internal/model"
	"github.com/footprint-app/footprint/internal/service"
)

type GoalHandler struct {
	goalService        *service.GoalService
	achievementService *service.AchievementService
}

func NewGoalHandler(goalService *service.GoalService, achievementService *service.AchievementService) *GoalHandler {
	return &GoalHandler{
		goalService:        goalService,
		achievementService: achievementService,
	}
}

type goalRequest struct {
	TargetReduction *float64   `json:"target_reduction" validate:"required,gte=0"`
	Deadline        *time.Time `json:"deadline" validate:"required"`
}

type goalPatchRequest struct {
	TargetReduction *float64   `json:"target_reduction" validate:"omitempty,gte=0"`
	Deadline        *time.Time `json:"deadline"`
	Achieved        *bool      `json:"achieved"`
}

type goalResponse struct {
	*model.Goal
	State model.GoalState `json:"state"`
}

type evaluationResponse struct {
	TotalKg      float64        `json:"total_kg"`
	Achieved     []goalResponse `json:"achieved"`
	Transitioned []goalResponse `json:"transitioned"`
}

func newGoalResponse(goal *model.Goal) goalResponse {
	return goalResponse{Goal: goal, State: goal.State()}
}

func newGoalResponses(goals []*model.Goal) []goalResponse {
	out := make([]goalResponse, 0, len(goals))
	for _, goal := range goals {
		out = append(out, newGoalResponse(goal))
	}
	return out
}

func newEvaluationResponse(e *carbon.Evaluation) evaluationResponse {
	return evaluationResponse{
		TotalKg:      e.TotalKg,
		Achieved:     newGoalResponses(e.Achieved),
		Transitioned: newGoalResponses(e.Transitioned),
	}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	goal, err := h.goalService.Create(ctxkeys.UserID(r.Context()), *req.TargetReduction, *req.Deadline)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newGoalResponse(goal))
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.Goals(ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newGoalResponses(goals))
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	goal, err := h.goalService.ByID(ctxkeys.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newGoalResponse(goal))
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req goalPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	patch := model.GoalPatch{
		TargetReduction: req.TargetReduction,
		Deadline:        req.Deadline,
		Achieved:        req.Achieved,
	}

	goal, err := h.goalService.Update(ctxkeys.UserID(r.Context()), r.PathValue("id"), patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newGoalResponse(goal))
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.goalService.Delete(ctxkeys.UserID(r.Context()), r.PathValue("id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Check evaluates every goal against the caller's current emissions.
func (h *GoalHandler) Check(w http.ResponseWriter, r *http.Request) {
	evaluation, err := h.goalService.CheckAchievements(ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newEvaluationResponse(evaluation))
}

func (h *GoalHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.achievementService.Achievements(ctxkeys.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, achievements)
}
