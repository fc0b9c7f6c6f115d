// Package calendar assembles income occurrences into a month view:
// a date-sorted event list bucketed into week spans.
package calendar

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/dateutil"
	"github.com/ledgerline/ledgerline/internal/income"
)

// Source identifies which kind of entity produced an event.
type Source string

const (
	SourceJob     Source = "job"
	SourcePassive Source = "passive"
	SourceOneTime Source = "one_time"
)

// Event is one cash event on one day, with its override-resolved amount.
type Event struct {
	Source   Source
	EntityID uuid.UUID
	Name     string
	Date     time.Time
	Amount   float64
}

// WeekSpan is a 7-day week block clipped to the viewed month, holding the
// events that fall inside it.
type WeekSpan struct {
	Start  time.Time
	End    time.Time
	Events []Event
}

// MonthInput carries the income aggregate's state needed to assemble one
// month.
type MonthInput struct {
	Jobs     []income.Job
	Passives []income.PassiveIncome
	OneTimes []income.NonRecurringIncome

	JobOverrides     income.JobOverrides
	PassiveOverrides income.PassiveOverrides
	OneTimeOverrides income.OneTimeOverrides
}

// MonthEvents expands every recurring source into the month window,
// resolves each occurrence's amount through its override table, merges
// and date-sorts the events (jobs, then passive, then one-time within a
// day), and buckets them into week spans. Weeks start on startOfWeek and
// are clipped to the month; spans without events are dropped.
func MonthEvents(in MonthInput, year int, month time.Month, net bool, startOfWeek time.Weekday) []WeekSpan {
	monthStart, monthEnd := dateutil.MonthWindow(year, month)

	var events []Event

	for _, j := range in.Jobs {
		for _, day := range j.Schedule.Occurrences(monthStart, monthEnd) {
			events = append(events, Event{
				Source:   SourceJob,
				EntityID: j.ID,
				Name:     j.Name,
				Date:     day,
				Amount:   j.EffectiveAmount(day, in.JobOverrides, net),
			})
		}
	}

	for _, p := range in.Passives {
		for _, day := range p.Schedule.Occurrences(monthStart, monthEnd) {
			events = append(events, Event{
				Source:   SourcePassive,
				EntityID: p.ID,
				Name:     p.Name,
				Date:     day,
				Amount:   p.EffectiveAmount(day, in.PassiveOverrides, net),
			})
		}
	}

	for _, n := range in.OneTimes {
		day := dateutil.Day(n.Date)
		if day.Before(monthStart) || day.After(monthEnd) {
			continue
		}

		events = append(events, Event{
			Source:   SourceOneTime,
			EntityID: n.ID,
			Name:     n.Name,
			Date:     day,
			Amount:   n.EffectiveAmount(day, in.OneTimeOverrides, net),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	return bucketByWeek(events, monthStart, monthEnd, startOfWeek)
}

func bucketByWeek(events []Event, monthStart, monthEnd time.Time, startOfWeek time.Weekday) []WeekSpan {
	var spans []WeekSpan

	for _, e := range events {
		start := dateutil.WeekStart(e.Date, startOfWeek)
		end := start.AddDate(0, 0, 6)

		if start.Before(monthStart) {
			start = monthStart
		}

		if end.After(monthEnd) {
			end = monthEnd
		}

		if n := len(spans); n > 0 && spans[n-1].Start.Equal(start) {
			spans[n-1].Events = append(spans[n-1].Events, e)
			continue
		}

		spans = append(spans, WeekSpan{Start: start, End: end, Events: []Event{e}})
	}

	return spans
}
