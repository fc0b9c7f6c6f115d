package calendar

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/calendar"
)

type Handler struct {
	svc *calendar.Service
}

func NewHandler(svc *calendar.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{year}/{month}", h.month)
}

type eventResponse struct {
	Source   calendar.Source `json:"source"`
	EntityID uuid.UUID       `json:"entity_id"`
	Name     string          `json:"name"`
	Date     time.Time       `json:"date"`
	Amount   float64         `json:"amount"`
}

type weekSpanResponse struct {
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Events []eventResponse `json:"events"`
}

func (h *Handler) month(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	net := r.URL.Query().Get("net") == "true"

	spans, err := h.svc.Month(r.Context(), year, time.Month(month), net)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]weekSpanResponse, len(spans))
	for i, span := range spans {
		events := make([]eventResponse, len(span.Events))
		for j, ev := range span.Events {
			events[j] = eventResponse{
				Source:   ev.Source,
				EntityID: ev.EntityID,
				Name:     ev.Name,
				Date:     ev.Date,
				Amount:   ev.Amount,
			}
		}

		resp[i] = weekSpanResponse{Start: span.Start, End: span.End, Events: events}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
