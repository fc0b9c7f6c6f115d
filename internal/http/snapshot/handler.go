package snapshot

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerline/ledgerline/internal/snapshot"
)

type Handler struct {
	svc *snapshot.Service
}

func NewHandler(svc *snapshot.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.export)
	r.Post("/", h.restore)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="ledgerline-snapshot.json"`)

	if err := h.svc.Export(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Import(r.Context(), r.Body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
