package income

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/income"
	"github.com/ledgerline/ledgerline/internal/recurrence"
)

type Handler struct {
	svc *income.Service
}

func NewHandler(svc *income.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/jobs", func(r chi.Router) {
		r.Post("/", h.createJob)
		r.Get("/", h.listJobs)
		r.Get("/overrides", h.listJobOverrides)
		r.Get("/{id}", h.getJob)
		r.Put("/{id}", h.updateJob)
		r.Delete("/{id}", h.deleteJob)
		r.Put("/{id}/override", h.upsertJobOverride)
		r.Delete("/{id}/override", h.deleteJobOverride)
	})

	r.Route("/passive", func(r chi.Router) {
		r.Post("/", h.createPassive)
		r.Get("/", h.listPassive)
		r.Get("/overrides", h.listPassiveOverrides)
		r.Get("/{id}", h.getPassive)
		r.Put("/{id}", h.updatePassive)
		r.Delete("/{id}", h.deletePassive)
		r.Put("/{id}/override", h.upsertPassiveOverride)
		r.Delete("/{id}/override", h.deletePassiveOverride)
	})

	r.Route("/one-time", func(r chi.Router) {
		r.Post("/", h.createOneTime)
		r.Get("/", h.listOneTime)
		r.Get("/overrides", h.listOneTimeOverrides)
		r.Get("/{id}", h.getOneTime)
		r.Put("/{id}", h.updateOneTime)
		r.Delete("/{id}", h.deleteOneTime)
		r.Put("/{id}/override", h.upsertOneTimeOverride)
		r.Delete("/{id}/override", h.deleteOneTimeOverride)
	})
}

type scheduleRequest struct {
	Start        time.Time  `json:"start"`
	End          *time.Time `json:"end,omitempty"`
	IntervalDays int        `json:"interval_days"`
}

func (s scheduleRequest) toSeries() recurrence.Series {
	return recurrence.Series{Start: s.Start, End: s.End, IntervalDays: s.IntervalDays}
}

type taxRequest struct {
	Applies bool    `json:"applies"`
	Rate    float64 `json:"rate"`
}

type jobRequest struct {
	Name     string            `json:"name"`
	Type     income.JobType    `json:"type"`
	Schedule scheduleRequest   `json:"schedule"`
	Tax      taxRequest        `json:"tax"`
	Salary   *salaryResponse   `json:"salary,omitempty"`
	Hourly   *hourlyResponse   `json:"hourly,omitempty"`
	Contract *contractResponse `json:"contract,omitempty"`
}

func (req jobRequest) toJob() income.Job {
	job := income.Job{
		Name:     req.Name,
		Type:     req.Type,
		Schedule: req.Schedule.toSeries(),
		Tax:      income.Tax{Applies: req.Tax.Applies, Rate: req.Tax.Rate},
	}

	if req.Salary != nil {
		job.Salary = &income.SalaryPay{PerPeriod: req.Salary.PerPeriod}
	}

	if req.Hourly != nil {
		job.Hourly = &income.HourlyPay{
			Rate:               req.Hourly.Rate,
			PlannedHours:       req.Hourly.PlannedHours,
			UsesOvertime:       req.Hourly.UsesOvertime,
			OvertimeThreshold:  req.Hourly.OvertimeThreshold,
			OvertimeMultiplier: req.Hourly.OvertimeMultiplier,
		}
	}

	if req.Contract != nil {
		job.Contract = &income.ContractPay{
			RatePerUnit:    req.Contract.RatePerUnit,
			UnitsPerPeriod: req.Contract.UnitsPerPeriod,
		}
	}

	return job
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	job, err := h.svc.CreateJob(r.Context(), req.toJob())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toJobResponse(job)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.ListJobs(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toJobResponseList(jobs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	job, err := h.svc.GetJob(r.Context(), id)
	if err != nil {
		if errors.Is(err, income.ErrNotFound) {
			http.Error(w, "job not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toJobResponse(job)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	job := req.toJob()
	job.ID = id

	updated, err := h.svc.UpdateJob(r.Context(), job)
	if err != nil {
		if errors.Is(err, income.ErrNotFound) {
			http.Error(w, "job not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toJobResponse(updated)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteJob(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type jobOverrideRequest struct {
	Date        time.Time `json:"date"`
	Amount      *float64  `json:"amount,omitempty"`
	HoursWorked *float64  `json:"hours_worked,omitempty"`
}

func (h *Handler) upsertJobOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req jobOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.svc.UpsertJobOverride(r.Context(), income.JobOverride{
		JobID:       id,
		Date:        req.Date,
		Amount:      req.Amount,
		HoursWorked: req.HoursWorked,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteJobOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	day, err := time.Parse(time.DateOnly, r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteJobOverride(r.Context(), id, day); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// dateRange parses the mandatory from/to query parameters of the override
// list endpoints.
func dateRange(r *http.Request) (time.Time, time.Time, error) {
	from, err := time.Parse(time.DateOnly, r.URL.Query().Get("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to, err := time.Parse(time.DateOnly, r.URL.Query().Get("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, to, nil
}

type jobOverrideResponse struct {
	JobID       uuid.UUID `json:"job_id"`
	Date        time.Time `json:"date"`
	Amount      *float64  `json:"amount,omitempty"`
	HoursWorked *float64  `json:"hours_worked,omitempty"`
}

func (h *Handler) listJobOverrides(w http.ResponseWriter, r *http.Request) {
	from, to, err := dateRange(r)
	if err != nil {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	ovs, err := h.svc.ListJobOverrides(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]jobOverrideResponse, len(ovs))
	for i, o := range ovs {
		resp[i] = jobOverrideResponse{JobID: o.JobID, Date: o.Date, Amount: o.Amount, HoursWorked: o.HoursWorked}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type passiveRequest struct {
	Name            string          `json:"name"`
	AmountPerPeriod float64         `json:"amount_per_period"`
	Schedule        scheduleRequest `json:"schedule"`
	Tax             taxRequest      `json:"tax"`
}

func (req passiveRequest) toPassive() income.PassiveIncome {
	return income.PassiveIncome{
		Name:            req.Name,
		AmountPerPeriod: req.AmountPerPeriod,
		Schedule:        req.Schedule.toSeries(),
		Tax:             income.Tax{Applies: req.Tax.Applies, Rate: req.Tax.Rate},
	}
}

func (h *Handler) createPassive(w http.ResponseWriter, r *http.Request) {
	var req passiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.CreatePassiveIncome(r.Context(), req.toPassive())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toPassiveResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listPassive(w http.ResponseWriter, r *http.Request) {
	ps, err := h.svc.ListPassiveIncomes(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPassiveResponseList(ps)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getPassive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.GetPassiveIncome(r.Context(), id)
	if err != nil {
		if errors.Is(err, income.ErrNotFound) {
			http.Error(w, "passive income not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPassiveResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) updatePassive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req passiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := req.toPassive()
	p.ID = id

	updated, err := h.svc.UpdatePassiveIncome(r.Context(), p)
	if err != nil {
		if errors.Is(err, income.ErrNotFound) {
			http.Error(w, "passive income not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPassiveResponse(updated)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deletePassive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeletePassiveIncome(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type amountOverrideRequest struct {
	Date   time.Time `json:"date"`
	Amount *float64  `json:"amount,omitempty"`
}

func (h *Handler) upsertPassiveOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req amountOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.svc.UpsertPassiveOverride(r.Context(), income.PassiveOverride{
		PassiveID: id,
		Date:      req.Date,
		Amount:    req.Amount,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deletePassiveOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	day, err := time.Parse(time.DateOnly, r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeletePassiveOverride(r.Context(), id, day); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type amountOverrideResponse struct {
	EntityID uuid.UUID `json:"entity_id"`
	Date     time.Time `json:"date"`
	Amount   *float64  `json:"amount,omitempty"`
}

func (h *Handler) listPassiveOverrides(w http.ResponseWriter, r *http.Request) {
	from, to, err := dateRange(r)
	if err != nil {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	ovs, err := h.svc.ListPassiveOverrides(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]amountOverrideResponse, len(ovs))
	for i, o := range ovs {
		resp[i] = amountOverrideResponse{EntityID: o.PassiveID, Date: o.Date, Amount: o.Amount}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type oneTimeRequest struct {
	Name   string     `json:"name"`
	Amount float64    `json:"amount"`
	Date   time.Time  `json:"date"`
	Tax    taxRequest `json:"tax"`
}

func (req oneTimeRequest) toOneTime() income.NonRecurringIncome {
	return income.NonRecurringIncome{
		Name:   req.Name,
		Amount: req.Amount,
		Date:   req.Date,
		Tax:    income.Tax{Applies: req.Tax.Applies, Rate: req.Tax.Rate},
	}
}

func (h *Handler) createOneTime(w http.ResponseWriter, r *http.Request) {
	var req oneTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n, err := h.svc.CreateNonRecurring(r.Context(), req.toOneTime())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toOneTimeResponse(n)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listOneTime(w http.ResponseWriter, r *http.Request) {
	var from, to *time.Time

	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			from = &t
		}
	}

	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			to = &t
		}
	}

	ns, err := h.svc.ListNonRecurring(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toOneTimeResponseList(ns)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getOneTime(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	n, err := h.svc.GetNonRecurring(r.Context(), id)
	if err != nil {
		if errors.Is(err, income.ErrNotFound) {
			http.Error(w, "one-time income not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toOneTimeResponse(n)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) updateOneTime(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req oneTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n := req.toOneTime()
	n.ID = id

	updated, err := h.svc.UpdateNonRecurring(r.Context(), n)
	if err != nil {
		if errors.Is(err, income.ErrNotFound) {
			http.Error(w, "one-time income not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toOneTimeResponse(updated)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteOneTime(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteNonRecurring(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) upsertOneTimeOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req amountOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.svc.UpsertOneTimeOverride(r.Context(), income.OneTimeOverride{
		IncomeID: id,
		Date:     req.Date,
		Amount:   req.Amount,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteOneTimeOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	day, err := time.Parse(time.DateOnly, r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteOneTimeOverride(r.Context(), id, day); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOneTimeOverrides(w http.ResponseWriter, r *http.Request) {
	from, to, err := dateRange(r)
	if err != nil {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	ovs, err := h.svc.ListOneTimeOverrides(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]amountOverrideResponse, len(ovs))
	for i, o := range ovs {
		resp[i] = amountOverrideResponse{EntityID: o.IncomeID, Date: o.Date, Amount: o.Amount}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
