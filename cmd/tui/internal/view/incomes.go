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

	"github.com/ledgerline/ledgerline/internal/income"
	"github.com/ledgerline/ledgerline/internal/recurrence"
)

type incomesState int

const (
	incomesStateBrowse incomesState = iota
	incomesStateAdd
)

type incomeKind string

const (
	kindSalary   incomeKind = "salary"
	kindHourly   incomeKind = "hourly"
	kindContract incomeKind = "contract"
	kindPassive  incomeKind = "passive"
	kindOneTime  incomeKind = "one-time"
)

// incomeRow keeps the entity behind each table row so delete targets the
// right aggregate.
type incomeRow struct {
	kind incomeKind
	id   uuid.UUID
}

type IncomesModel struct {
	CommonModel
	svc *income.Service

	state incomesState
	table table.Model
	rows  []incomeRow
	form  *huh.Form

	showNet bool
	loading bool
	err     error
	status  string

	// Form bindings
	formKind     incomeKind
	formName     string
	formAmount   string
	formHours    string
	formInterval string
	formStart    string
	formTaxRate  string
}

func NewIncomesModel(svc *income.Service) IncomesModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Kind", Width: 10},
		{Title: "Per Period", Width: 12},
		{Title: "Per Month", Width: 12},
		{Title: "Every", Width: 10},
		{Title: "Starts", Width: 12},
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

	return IncomesModel{
		svc:     svc,
		table:   t,
		showNet: true,
	}
}

func (m IncomesModel) Title() string { return "Income Sources" }
func (m IncomesModel) ShortHelp() string {
	if m.state == incomesStateAdd {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: add | x: delete | n: net/gross | r: refresh"
}

func (m IncomesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m IncomesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadIncomesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.refreshTable(msg.jobs, msg.passives, msg.oneTimes)
		return m, nil

	case incomeSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = incomesStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCmd()

	case incomeDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		}
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case incomesStateBrowse:
		return m.updateBrowse(msg)
	case incomesStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m IncomesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			m.showNet = !m.showNet
			return m, m.loadCmd()
		case "a":
			return m.enterAddMode()
		case "x":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.rows) {
				return m, nil
			}
			return m, m.deleteCmd(m.rows[idx])
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m IncomesModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formKind = kindSalary
	m.formName = ""
	m.formAmount = ""
	m.formHours = "40"
	m.formInterval = "14"
	m.formStart = FormatDate(time.Now())
	m.formTaxRate = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[incomeKind]().
				Key("kind").
				Title("Kind").
				Options(
					huh.NewOption("Salary job", kindSalary),
					huh.NewOption("Hourly job", kindHourly),
					huh.NewOption("Contract job", kindContract),
					huh.NewOption("Passive income", kindPassive),
					huh.NewOption("One-time income", kindOneTime),
				).
				Value(&m.formKind),

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
				Key("amount").
				Title("Amount (per period / hourly rate / per unit)").
				Value(&m.formAmount).
				Validate(validatePositiveNumber),

			huh.NewInput().
				Key("hours").
				Title("Planned hours or units per period").
				Value(&m.formHours),

			huh.NewInput().
				Key("interval").
				Title("Interval (days)").
				Value(&m.formInterval),

			huh.NewInput().
				Key("start").
				Title("Start / pay date (YYYY-MM-DD)").
				Value(&m.formStart).
				Validate(validateDate),

			huh.NewInput().
				Key("tax").
				Title("Tax rate (0-1, blank for none)").
				Value(&m.formTaxRate),
		),
	).WithWidth(52).WithShowHelp(false)

	m.state = incomesStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m IncomesModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = incomesStateBrowse
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

	return m, m.saveCmd()
}

func (m IncomesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading income sources...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	mode := "net"
	if !m.showNet {
		mode = "gross"
	}

	header := fmt.Sprintf("Amounts: [n] %s", activeStyle(mode))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == incomesStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(56).
			Render("Add Income Source\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *IncomesModel) refreshTable(jobs []*income.Job, passives []*income.PassiveIncome, oneTimes []*income.NonRecurringIncome) {
	rows := make([]table.Row, 0, len(jobs)+len(passives)+len(oneTimes))
	m.rows = m.rows[:0]

	perPeriod := func(p income.Projector) float64 {
		if m.showNet {
			return p.NetPerPeriod()
		}
		return p.GrossPerPeriod()
	}
	perMonth := func(p income.Projector) float64 {
		if m.showNet {
			return p.NetPerMonth()
		}
		return p.GrossPerMonth()
	}

	for _, j := range jobs {
		rows = append(rows, table.Row{
			j.Name,
			string(j.Type),
			FormatMoney(perPeriod(*j)),
			FormatMoney(perMonth(*j)),
			fmt.Sprintf("%dd", j.Schedule.IntervalDays),
			FormatDate(j.Schedule.Start),
		})
		m.rows = append(m.rows, incomeRow{kind: incomeKind(j.Type), id: j.ID})
	}

	for _, p := range passives {
		rows = append(rows, table.Row{
			p.Name,
			string(kindPassive),
			FormatMoney(perPeriod(*p)),
			FormatMoney(perMonth(*p)),
			fmt.Sprintf("%dd", p.Schedule.IntervalDays),
			FormatDate(p.Schedule.Start),
		})
		m.rows = append(m.rows, incomeRow{kind: kindPassive, id: p.ID})
	}

	for _, n := range oneTimes {
		amount := n.Gross()
		if m.showNet {
			amount = n.Net()
		}
		rows = append(rows, table.Row{
			n.Name,
			string(kindOneTime),
			FormatMoney(amount),
			"-",
			"once",
			FormatDate(n.Date),
		})
		m.rows = append(m.rows, incomeRow{kind: kindOneTime, id: n.ID})
	}

	m.table.SetRows(rows)
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// Messages

type loadIncomesMsg struct {
	jobs     []*income.Job
	passives []*income.PassiveIncome
	oneTimes []*income.NonRecurringIncome
	err      error
}

func (m IncomesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		jobs, err := m.svc.ListJobs(ctx)
		if err != nil {
			return loadIncomesMsg{err: err}
		}

		passives, err := m.svc.ListPassiveIncomes(ctx)
		if err != nil {
			return loadIncomesMsg{err: err}
		}

		oneTimes, err := m.svc.ListNonRecurring(ctx, nil, nil)
		if err != nil {
			return loadIncomesMsg{err: err}
		}

		return loadIncomesMsg{jobs: jobs, passives: passives, oneTimes: oneTimes}
	}
}

type incomeSavedMsg struct {
	err error
}

func (m IncomesModel) saveCmd() tea.Cmd {
	kind := m.formKind
	name := strings.TrimSpace(m.formName)
	amount, _ := strconv.ParseFloat(strings.TrimSpace(m.formAmount), 64)
	hours, _ := strconv.ParseFloat(strings.TrimSpace(m.formHours), 64)
	interval, _ := strconv.Atoi(strings.TrimSpace(m.formInterval))
	start, _ := time.Parse(time.DateOnly, strings.TrimSpace(m.formStart))

	var tax income.Tax
	if rate, err := strconv.ParseFloat(strings.TrimSpace(m.formTaxRate), 64); err == nil && rate > 0 {
		tax = income.Tax{Applies: true, Rate: rate}
	}

	schedule := recurrence.Series{Start: start, IntervalDays: interval}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var err error

		switch kind {
		case kindSalary:
			_, err = m.svc.CreateJob(ctx, income.Job{
				Name:     name,
				Type:     income.JobTypeSalary,
				Schedule: schedule,
				Tax:      tax,
				Salary:   &income.SalaryPay{PerPeriod: amount},
			})
		case kindHourly:
			_, err = m.svc.CreateJob(ctx, income.Job{
				Name:     name,
				Type:     income.JobTypeHourly,
				Schedule: schedule,
				Tax:      tax,
				Hourly:   &income.HourlyPay{Rate: amount, PlannedHours: hours},
			})
		case kindContract:
			_, err = m.svc.CreateJob(ctx, income.Job{
				Name:     name,
				Type:     income.JobTypeContract,
				Schedule: schedule,
				Tax:      tax,
				Contract: &income.ContractPay{RatePerUnit: amount, UnitsPerPeriod: hours},
			})
		case kindPassive:
			_, err = m.svc.CreatePassiveIncome(ctx, income.PassiveIncome{
				Name:            name,
				AmountPerPeriod: amount,
				Schedule:        schedule,
				Tax:             tax,
			})
		case kindOneTime:
			_, err = m.svc.CreateNonRecurring(ctx, income.NonRecurringIncome{
				Name:   name,
				Amount: amount,
				Date:   start,
				Tax:    tax,
			})
		}

		return incomeSavedMsg{err: err}
	}
}

type incomeDeletedMsg struct {
	err error
}

func (m IncomesModel) deleteCmd(row incomeRow) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var err error

		switch row.kind {
		case kindPassive:
			err = m.svc.DeletePassiveIncome(ctx, row.id)
		case kindOneTime:
			err = m.svc.DeleteNonRecurring(ctx, row.id)
		default:
			err = m.svc.DeleteJob(ctx, row.id)
		}

		return incomeDeletedMsg{err: err}
	}
}
