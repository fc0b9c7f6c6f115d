package savings

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/savings"
)

type Handler struct {
	svc *savings.Service
}

func NewHandler(svc *savings.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.rename)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/plan", h.plan)
	r.Post("/{id}/deposit", h.deposit)
	r.Post("/{id}/withdraw", h.withdraw)
	r.Put("/{id}/schedule", h.enableSchedule)
	r.Delete("/{id}/schedule", h.disableSchedule)
}

type scheduleRequest struct {
	IntervalDays int       `json:"interval_days"`
	Amount       float64   `json:"amount"`
	Start        time.Time `json:"start"`
}

type createGoalRequest struct {
	Name     string           `json:"name"`
	Target   float64          `json:"target"`
	Saved    float64          `json:"saved"`
	Schedule *scheduleRequest `json:"schedule,omitempty"`
}

type scheduleResponse struct {
	IntervalDays int       `json:"interval_days"`
	Amount       float64   `json:"amount"`
	Start        time.Time `json:"start"`
}

type plannedEntryResponse struct {
	ID     uuid.UUID `json:"id"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

type goalResponse struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Target    float64                `json:"target"`
	Saved     float64                `json:"saved"`
	Remaining float64                `json:"remaining"`
	Complete  bool                   `json:"complete"`
	Schedule  *scheduleResponse      `json:"schedule,omitempty"`
	Plan      []plannedEntryResponse `json:"plan"`
}

func toResponse(g *savings.Goal) goalResponse {
	resp := goalResponse{
		ID:        g.ID,
		Name:      g.Name,
		Target:    g.Target,
		Saved:     g.Saved,
		Remaining: g.Remaining(),
		Complete:  g.Complete(),
		Plan:      toPlanResponse(g.Entries),
	}

	if g.Schedule != nil {
		resp.Schedule = &scheduleResponse{
			IntervalDays: g.Schedule.IntervalDays,
			Amount:       g.Schedule.Amount,
			Start:        g.Schedule.Start,
		}
	}

	return resp
}

func toPlanResponse(entries []savings.PlannedEntry) []plannedEntryResponse {
	resp := make([]plannedEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = plannedEntryResponse{ID: e.ID, Date: e.Date, Amount: e.Amount}
	}

	return resp
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal := savings.Goal{Name: req.Name, Target: req.Target, Saved: req.Saved}
	if req.Schedule != nil {
		goal.Schedule = &savings.Schedule{
			IntervalDays: req.Schedule.IntervalDays,
			Amount:       req.Schedule.Amount,
			Start:        req.Schedule.Start,
		}
	}

	created, err := h.svc.CreateGoal(r.Context(), goal)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(created)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.ListGoals(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toResponse(g)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	g, err := h.svc.GetGoal(r.Context(), id)
	if err != nil {
		if errors.Is(err, savings.ErrNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type renameGoalRequest struct {
	Name string `json:"name"`
}

func (h *Handler) rename(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req renameGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.Rename(r.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, savings.ErrNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteGoal(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) plan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	entries, err := h.svc.Plan(r.Context(), id)
	if err != nil {
		if errors.Is(err, savings.ErrNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPlanResponse(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type moneyRequest struct {
	Amount float64 `json:"amount"`
}

func (h *Handler) deposit(w http.ResponseWriter, r *http.Request) {
	h.applyMoney(w, r, h.svc.AddMoney)
}

func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	h.applyMoney(w, r, h.svc.RemoveMoney)
}

func (h *Handler) applyMoney(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uuid.UUID, amount float64) (*savings.Goal, error),
) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req moneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := apply(r.Context(), id, req.Amount)
	if err != nil {
		if errors.Is(err, savings.ErrNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) enableSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.EnableSchedule(r.Context(), id, savings.Schedule{
		IntervalDays: req.IntervalDays,
		Amount:       req.Amount,
		Start:        req.Start,
	})
	if err != nil {
		if errors.Is(err, savings.ErrNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) disableSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	g, err := h.svc.DisableSchedule(r.Context(), id)
	if err != nil {
		if errors.Is(err, savings.ErrNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
