package income

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/income"
)

type projectionResponse struct {
	GrossPerPeriod float64 `json:"gross_per_period"`
	NetPerPeriod   float64 `json:"net_per_period"`
	GrossPerMonth  float64 `json:"gross_per_month"`
	NetPerMonth    float64 `json:"net_per_month"`
}

func toProjection(p income.Projector) projectionResponse {
	proj := income.ProjectionOf(p)

	return projectionResponse{
		GrossPerPeriod: proj.GrossPerPeriod,
		NetPerPeriod:   proj.NetPerPeriod,
		GrossPerMonth:  proj.GrossPerMonth,
		NetPerMonth:    proj.NetPerMonth,
	}
}

type scheduleResponse struct {
	Start        time.Time  `json:"start"`
	End          *time.Time `json:"end,omitempty"`
	IntervalDays int        `json:"interval_days"`
}

type taxResponse struct {
	Applies bool    `json:"applies"`
	Rate    float64 `json:"rate"`
}

type salaryResponse struct {
	PerPeriod float64 `json:"per_period"`
}

type hourlyResponse struct {
	Rate               float64 `json:"rate"`
	PlannedHours       float64 `json:"planned_hours"`
	UsesOvertime       bool    `json:"uses_overtime"`
	OvertimeThreshold  float64 `json:"overtime_threshold"`
	OvertimeMultiplier float64 `json:"overtime_multiplier"`
}

type contractResponse struct {
	RatePerUnit    float64 `json:"rate_per_unit"`
	UnitsPerPeriod float64 `json:"units_per_period"`
}

type jobResponse struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Type       income.JobType     `json:"type"`
	Schedule   scheduleResponse   `json:"schedule"`
	Tax        taxResponse        `json:"tax"`
	Salary     *salaryResponse    `json:"salary,omitempty"`
	Hourly     *hourlyResponse    `json:"hourly,omitempty"`
	Contract   *contractResponse  `json:"contract,omitempty"`
	Projection projectionResponse `json:"projection"`
}

func toJobResponse(j *income.Job) jobResponse {
	resp := jobResponse{
		ID:   j.ID,
		Name: j.Name,
		Type: j.Type,
		Schedule: scheduleResponse{
			Start:        j.Schedule.Start,
			End:          j.Schedule.End,
			IntervalDays: j.Schedule.IntervalDays,
		},
		Tax:        taxResponse{Applies: j.Tax.Applies, Rate: j.Tax.Rate},
		Projection: toProjection(*j),
	}

	if j.Salary != nil {
		resp.Salary = &salaryResponse{PerPeriod: j.Salary.PerPeriod}
	}

	if j.Hourly != nil {
		resp.Hourly = &hourlyResponse{
			Rate:               j.Hourly.Rate,
			PlannedHours:       j.Hourly.PlannedHours,
			UsesOvertime:       j.Hourly.UsesOvertime,
			OvertimeThreshold:  j.Hourly.OvertimeThreshold,
			OvertimeMultiplier: j.Hourly.OvertimeMultiplier,
		}
	}

	if j.Contract != nil {
		resp.Contract = &contractResponse{
			RatePerUnit:    j.Contract.RatePerUnit,
			UnitsPerPeriod: j.Contract.UnitsPerPeriod,
		}
	}

	return resp
}

func toJobResponseList(jobs []*income.Job) []jobResponse {
	resp := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		resp[i] = toJobResponse(j)
	}

	return resp
}

type passiveResponse struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	AmountPerPeriod float64            `json:"amount_per_period"`
	Schedule        scheduleResponse   `json:"schedule"`
	Tax             taxResponse        `json:"tax"`
	Projection      projectionResponse `json:"projection"`
}

func toPassiveResponse(p *income.PassiveIncome) passiveResponse {
	return passiveResponse{
		ID:              p.ID,
		Name:            p.Name,
		AmountPerPeriod: p.AmountPerPeriod,
		Schedule: scheduleResponse{
			Start:        p.Schedule.Start,
			End:          p.Schedule.End,
			IntervalDays: p.Schedule.IntervalDays,
		},
		Tax:        taxResponse{Applies: p.Tax.Applies, Rate: p.Tax.Rate},
		Projection: toProjection(*p),
	}
}

func toPassiveResponseList(ps []*income.PassiveIncome) []passiveResponse {
	resp := make([]passiveResponse, len(ps))
	for i, p := range ps {
		resp[i] = toPassiveResponse(p)
	}

	return resp
}

type oneTimeResponse struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Amount float64     `json:"amount"`
	Date   time.Time   `json:"date"`
	Tax    taxResponse `json:"tax"`
	Gross  float64     `json:"gross"`
	Net    float64     `json:"net"`
}

func toOneTimeResponse(n *income.NonRecurringIncome) oneTimeResponse {
	return oneTimeResponse{
		ID:     n.ID,
		Name:   n.Name,
		Amount: n.Amount,
		Date:   n.Date,
		Tax:    taxResponse{Applies: n.Tax.Applies, Rate: n.Tax.Rate},
		Gross:  n.Gross(),
		Net:    n.Net(),
	}
}

func toOneTimeResponseList(ns []*income.NonRecurringIncome) []oneTimeResponse {
	resp := make([]oneTimeResponse, len(ns))
	for i, n := range ns {
		resp[i] = toOneTimeResponse(n)
	}

	return resp
}
