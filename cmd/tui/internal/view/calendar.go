package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerline/ledgerline/internal/calendar"
	"github.com/ledgerline/ledgerline/internal/income"
)

type calendarState int

const (
	calendarStateBrowse calendarState = iota
	calendarStateOverride
)

type CalendarModel struct {
	CommonModel
	svc       *calendar.Service
	incomeSvc *income.Service

	year  int
	month time.Month
	spans []calendar.WeekSpan

	// events flattens the spans so the cursor can walk them.
	events []calendar.Event
	cursor int

	state calendarState
	form  *huh.Form

	showNet bool
	loading bool
	err     error
	status  string

	// Form bindings
	formAmount string
}

func NewCalendarModel(svc *calendar.Service, incomeSvc *income.Service) CalendarModel {
	now := time.Now()

	return CalendarModel{
		svc:       svc,
		incomeSvc: incomeSvc,
		year:      now.Year(),
		month:     now.Month(),
		showNet:   true,
	}
}

func (m CalendarModel) Title() string { return "Pay Calendar" }
func (m CalendarModel) ShortHelp() string {
	if m.state == calendarStateOverride {
		return "Enter: save | Esc: cancel"
	}
	return "Esc: back | left/right: month | up/down: event | o: override | u: clear override | n: net/gross | r: refresh"
}

func (m CalendarModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCalendarMsg:
		m.loading = false
		m.err = msg.err
		m.spans = msg.spans

		m.events = m.events[:0]
		for _, span := range m.spans {
			m.events = append(m.events, span.Events...)
		}

		if m.cursor >= len(m.events) {
			m.cursor = len(m.events) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}

		return m, nil

	case overrideSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = calendarStateBrowse
		m.form = nil
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.state == calendarStateOverride {
			return m.updateOverride(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.state == calendarStateOverride && m.form != nil {
		return m.updateOverride(msg)
	}

	return m, nil
}

func (m CalendarModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, Back
	case "left", "h":
		m.year, m.month = prevMonth(m.year, m.month)
		m.cursor = 0
		m.loading = true
		return m, m.loadCmd()
	case "right", "l":
		m.year, m.month = nextMonth(m.year, m.month)
		m.cursor = 0
		m.loading = true
		return m, m.loadCmd()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.events)-1 {
			m.cursor++
		}
		return m, nil
	case "n":
		m.showNet = !m.showNet
		m.loading = true
		return m, m.loadCmd()
	case "r":
		m.loading = true
		return m, m.loadCmd()
	case "o":
		return m.enterOverrideMode()
	case "u":
		if ev := m.selectedEvent(); ev != nil {
			return m, m.clearOverrideCmd(*ev)
		}
		return m, nil
	}

	return m, nil
}

func (m CalendarModel) selectedEvent() *calendar.Event {
	if m.cursor < 0 || m.cursor >= len(m.events) {
		return nil
	}

	return &m.events[m.cursor]
}

func (m CalendarModel) enterOverrideMode() (tea.Model, tea.Cmd) {
	ev := m.selectedEvent()
	if ev == nil {
		return m, nil
	}

	m.formAmount = FormatMoney(ev.Amount)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("Amount for %s on %s", ev.Name, FormatDate(ev.Date))).
				Value(&m.formAmount).
				Validate(validatePositiveNumber),
		),
	).WithWidth(48).WithShowHelp(false)

	m.state = calendarStateOverride
	return m, m.form.Init()
}

func (m CalendarModel) updateOverride(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = calendarStateBrowse
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	ev := m.selectedEvent()
	if ev == nil {
		m.state = calendarStateBrowse
		m.form = nil
		return m, nil
	}

	return m, m.saveOverrideCmd(*ev)
}

func (m CalendarModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading calendar...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	mode := "net"
	if !m.showNet {
		mode = "gross"
	}

	title := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("%s %d (%s)", m.month, m.year, mode),
	)

	if len(m.spans) == 0 {
		return lipgloss.NewStyle().Padding(1).Render(
			title + "\n\nNo income events this month.",
		)
	}

	weekStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(64)

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	var b strings.Builder
	b.WriteString(title + "\n\n")

	var monthTotal float64

	eventIdx := 0

	for _, span := range m.spans {
		var lines []string

		var weekTotal float64

		for _, ev := range span.Events {
			line := fmt.Sprintf(
				"%s  %-10s %-24s %10s",
				FormatDate(ev.Date), string(ev.Source), ev.Name, FormatMoney(ev.Amount),
			)
			if eventIdx == m.cursor {
				line = selectedStyle.Render(line)
			}

			lines = append(lines, line)
			weekTotal += ev.Amount
			eventIdx++
		}

		monthTotal += weekTotal

		header := headerStyle.Render(fmt.Sprintf(
			"%s to %s  (total %s)",
			FormatDate(span.Start), FormatDate(span.End), FormatMoney(weekTotal),
		))

		b.WriteString(weekStyle.Render(header+"\n"+strings.Join(lines, "\n")) + "\n")
	}

	b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Month total: %s", FormatMoney(monthTotal)),
	))

	content := b.String()

	if m.state == calendarStateOverride && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(52).
			Render("Override Pay Event\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}

	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}

	return year, month + 1
}

// Messages

type loadCalendarMsg struct {
	spans []calendar.WeekSpan
	err   error
}

func (m CalendarModel) loadCmd() tea.Cmd {
	year, month, net := m.year, m.month, m.showNet

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		spans, err := m.svc.Month(ctx, year, month, net)
		return loadCalendarMsg{spans: spans, err: err}
	}
}

type overrideSavedMsg struct {
	err error
}

func (m CalendarModel) saveOverrideCmd(ev calendar.Event) tea.Cmd {
	amount, _ := strconv.ParseFloat(strings.TrimSpace(m.formAmount), 64)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var err error

		switch ev.Source {
		case calendar.SourceJob:
			err = m.incomeSvc.UpsertJobOverride(ctx, income.JobOverride{
				JobID:  ev.EntityID,
				Date:   ev.Date,
				Amount: &amount,
			})
		case calendar.SourcePassive:
			err = m.incomeSvc.UpsertPassiveOverride(ctx, income.PassiveOverride{
				PassiveID: ev.EntityID,
				Date:      ev.Date,
				Amount:    &amount,
			})
		case calendar.SourceOneTime:
			err = m.incomeSvc.UpsertOneTimeOverride(ctx, income.OneTimeOverride{
				IncomeID: ev.EntityID,
				Date:     ev.Date,
				Amount:   &amount,
			})
		}

		return overrideSavedMsg{err: err}
	}
}

func (m CalendarModel) clearOverrideCmd(ev calendar.Event) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var err error

		switch ev.Source {
		case calendar.SourceJob:
			err = m.incomeSvc.DeleteJobOverride(ctx, ev.EntityID, ev.Date)
		case calendar.SourcePassive:
			err = m.incomeSvc.DeletePassiveOverride(ctx, ev.EntityID, ev.Date)
		case calendar.SourceOneTime:
			err = m.incomeSvc.DeleteOneTimeOverride(ctx, ev.EntityID, ev.Date)
		}

		return overrideSavedMsg{err: err}
	}
}
