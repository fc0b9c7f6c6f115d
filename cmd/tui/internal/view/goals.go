package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/savings"
)

type goalsState int

const (
	goalsStateBrowse goalsState = iota
	goalsStateAdd
	goalsStateMoney
)

type GoalsModel struct {
	CommonModel
	svc *savings.Service

	state goalsState
	table table.Model
	goals []*savings.Goal
	form  *huh.Form

	showPlan bool
	loading  bool
	err      error
	status   string

	// Money form direction: true deposits, false withdraws.
	depositing bool

	// Form bindings
	formName     string
	formTarget   string
	formAmount   string
	formInterval string
	formStart    string
}

func NewGoalsModel(svc *savings.Service) GoalsModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Saved", Width: 12},
		{Title: "Target", Width: 12},
		{Title: "Progress", Width: 10},
		{Title: "Next", Width: 12},
		{Title: "Done", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return GoalsModel{
		svc:   svc,
		table: t,
	}
}

func (m GoalsModel) Title() string { return "Savings Goals" }
func (m GoalsModel) ShortHelp() string {
	switch m.state {
	case goalsStateAdd, goalsStateMoney:
		return "Navigate form | Esc: cancel"
	default:
		return "Esc: back | a: add | +: deposit | -: withdraw | p: plan | x: delete | r: refresh"
	}
}

func (m GoalsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m GoalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadGoalsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.goals = msg.goals
		m.refreshTable()
		return m, nil

	case goalSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = goalsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case goalsStateBrowse:
		return m.updateBrowse(msg)
	case goalsStateAdd, goalsStateMoney:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m GoalsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterAddMode()
		case "+":
			return m.enterMoneyMode(true)
		case "-":
			return m.enterMoneyMode(false)
		case "p":
			m.showPlan = !m.showPlan
			return m, nil
		case "x":
			g := m.selectedGoal()
			if g == nil {
				return m, nil
			}
			return m, m.deleteCmd(g.ID)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m GoalsModel) selectedGoal() *savings.Goal {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.goals) {
		return nil
	}

	return m.goals[idx]
}

func (m GoalsModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formTarget = ""
	m.formAmount = ""
	m.formInterval = "14"
	m.formStart = FormatDate(time.Now())

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("target").
				Title("Target amount").
				Value(&m.formTarget).
				Validate(validatePositiveNumber),

			huh.NewInput().
				Key("amount").
				Title("Per-installment amount (blank for no schedule)").
				Value(&m.formAmount),

			huh.NewInput().
				Key("interval").
				Title("Installment interval (days)").
				Value(&m.formInterval),

			huh.NewInput().
				Key("start").
				Title("First installment (YYYY-MM-DD)").
				Value(&m.formStart).
				Validate(validateDate),
		),
	).WithWidth(52).WithShowHelp(false)

	m.state = goalsStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m GoalsModel) enterMoneyMode(deposit bool) (tea.Model, tea.Cmd) {
	if m.selectedGoal() == nil {
		return m, nil
	}

	m.depositing = deposit
	m.formAmount = ""

	title := "Withdraw amount"
	if deposit {
		title = "Deposit amount"
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(title).
				Value(&m.formAmount).
				Validate(validatePositiveNumber),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = goalsStateMoney
	m.table.Blur()
	return m, m.form.Init()
}

func (m GoalsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = goalsStateBrowse
			m.form = nil
			m.table.Focus()
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

	if m.state == goalsStateMoney {
		return m, m.moneyCmd()
	}

	return m, m.saveCmd()
}

func (m GoalsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading goals...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.showPlan {
		if g := m.selectedGoal(); g != nil {
			content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.planPanel(g))
		}
	}

	if m.form != nil {
		title := "Add Goal"
		if m.state == goalsStateMoney {
			title = "Move Money"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(56).
			Render(title + "\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m GoalsModel) planPanel(g *savings.Goal) string {
	entries := g.Entries
	if len(entries) == 0 {
		entries = g.PreviewPlan()
	}

	var lines []string
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s  %10s", FormatDate(e.Date), FormatMoney(e.Amount)))
	}

	if len(lines) == 0 {
		lines = []string{"No remaining installments."}
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(fmt.Sprintf("Plan: %s\n\n%s", g.Name, strings.Join(lines, "\n")))
}

func (m *GoalsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.goals))

	for _, g := range m.goals {
		progress := 0.0
		if g.Target > 0 {
			progress = g.Saved / g.Target * 100
		}

		next := "-"
		if len(g.Entries) > 0 {
			next = FormatDate(g.Entries[0].Date)
		}

		done := ""
		if g.Complete() {
			done = "yes"
		}

		rows = append(rows, table.Row{
			g.Name,
			FormatMoney(g.Saved),
			FormatMoney(g.Target),
			fmt.Sprintf("%.0f%%", progress),
			next,
			done,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadGoalsMsg struct {
	goals []*savings.Goal
	err   error
}

func (m GoalsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		goals, err := m.svc.ListGoals(ctx)
		return loadGoalsMsg{goals: goals, err: err}
	}
}

type goalSavedMsg struct {
	err error
}

func (m GoalsModel) saveCmd() tea.Cmd {
	name := strings.TrimSpace(m.formName)
	target, _ := strconv.ParseFloat(strings.TrimSpace(m.formTarget), 64)
	amount, _ := strconv.ParseFloat(strings.TrimSpace(m.formAmount), 64)
	interval, _ := strconv.Atoi(strings.TrimSpace(m.formInterval))
	start, _ := time.Parse(time.DateOnly, strings.TrimSpace(m.formStart))

	goal := savings.Goal{Name: name, Target: target}
	if amount > 0 && interval >= 1 {
		goal.Schedule = &savings.Schedule{
			IntervalDays: interval,
			Amount:       amount,
			Start:        start,
		}
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.CreateGoal(ctx, goal)
		return goalSavedMsg{err: err}
	}
}

func (m GoalsModel) moneyCmd() tea.Cmd {
	g := m.selectedGoal()
	if g == nil {
		return nil
	}

	id := g.ID
	deposit := m.depositing
	amount, _ := strconv.ParseFloat(strings.TrimSpace(m.formAmount), 64)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var err error
		if deposit {
			_, err = m.svc.AddMoney(ctx, id, amount)
		} else {
			_, err = m.svc.RemoveMoney(ctx, id, amount)
		}

		return goalSavedMsg{err: err}
	}
}

func (m GoalsModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return goalSavedMsg{err: m.svc.DeleteGoal(ctx, id)}
	}
}
