package handler

import (
	"log/slog"
	"net/http"

	"github.com/SyedqaderEng/financeOS-sub001/internal/ctxkeys"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/SyedqaderEng/financeOS-sub001/internal/service"
)

type GoalHandler struct {
	goalService         *service.GoalService
	contributionService *service.ContributionService
}

func NewGoalHandler(goalService *service.GoalService, contributionService *service.ContributionService) *GoalHandler {
	return &GoalHandler{
		goalService:         goalService,
		contributionService: contributionService,
	}
}

type createGoalRequest struct {
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	TargetAmount money.Amount `json:"targetAmount"`
	TargetDate   string       `json:"targetDate"`
}

type updateGoalRequest struct {
	Name       *string `json:"name"`
	Category   *string `json:"category"`
	TargetDate *string `json:"targetDate"`
}

type contributeRequest struct {
	Amount money.Amount `json:"amount"`
	Notes  string       `json:"notes"`
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(r.Context(), user.ID, r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newGoalViews(goals))
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createGoalRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	goal, err := h.goalService.Create(r.Context(), user.ID, service.CreateGoalInput{
		Name:         req.Name,
		Category:     req.Category,
		TargetAmount: req.TargetAmount,
		TargetDate:   req.TargetDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newGoalView(goal))
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goal, err := h.goalService.Goal(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newGoalView(goal))
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updateGoalRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	goal, err := h.goalService.Update(r.Context(), r.PathValue("id"), user.ID, service.UpdateGoalInput{
		Name:       req.Name,
		Category:   req.Category,
		TargetDate: req.TargetDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newGoalView(goal))
}

func (h *GoalHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req contributeRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.contributionService.Contribute(r.Context(), r.PathValue("id"), user.ID, req.Amount, req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ContributionResponse{
		Goal:          newGoalView(result.Goal),
		GoalCompleted: result.GoalCompleted,
		Message:       result.Message,
	})
}

func (h *GoalHandler) History(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	history, err := h.contributionService.History(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newHistoryViews(history))
}

func (h *GoalHandler) Export(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	exports, err := h.goalService.Export(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("goals exported", "user_id", user.ID, "goals", len(exports))
	w.Header().Set("Content-Disposition", "attachment; filename=goals-export.json")
	writeJSON(w, http.StatusOK, newGoalExportViews(exports))
}
