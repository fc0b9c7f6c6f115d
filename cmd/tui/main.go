package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/ledgerline/ledgerline/cmd/tui/internal/view"
	"github.com/ledgerline/ledgerline/internal/calendar"
	"github.com/ledgerline/ledgerline/internal/config"
	"github.com/ledgerline/ledgerline/internal/database"
	"github.com/ledgerline/ledgerline/internal/income"
	incomeStore "github.com/ledgerline/ledgerline/internal/income/store"
	"github.com/ledgerline/ledgerline/internal/savings"
	savingsStore "github.com/ledgerline/ledgerline/internal/savings/store"
	"github.com/ledgerline/ledgerline/internal/snapshot"
)

type model struct {
	incomeService   *income.Service
	calendarService *calendar.Service
	savingsService  *savings.Service
	snapshotService *snapshot.Service

	currentView View

	incomesView  view.IncomesModel
	calendarView view.CalendarModel
	goalsView    view.GoalsModel
	snapshotView view.SnapshotModel
}

type View int

const (
	ViewMenu     View = 0
	ViewIncomes  View = 1
	ViewCalendar View = 2
	ViewGoals    View = 3
	ViewSnapshot View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	incomeSvc := income.NewService(incomeStore.New(db))
	savingsSvc := savings.NewService(savingsStore.New(db))
	calendarSvc := calendar.NewService(incomeSvc, cfg.StartOfWeek())
	snapshotSvc := snapshot.NewService(incomeSvc, savingsSvc)

	return model{
		incomeService:   incomeSvc,
		calendarService: calendarSvc,
		savingsService:  savingsSvc,
		snapshotService: snapshotSvc,
		currentView:     ViewMenu,
		incomesView:     view.NewIncomesModel(incomeSvc),
		calendarView:    view.NewCalendarModel(calendarSvc, incomeSvc),
		goalsView:       view.NewGoalsModel(savingsSvc),
		snapshotView:    view.NewSnapshotModel(snapshotSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewIncomes
				m.incomesView = view.NewIncomesModel(m.incomeService)

				return m, m.incomesView.Init()
			case "2":
				m.currentView = ViewCalendar
				m.calendarView = view.NewCalendarModel(m.calendarService, m.incomeService)

				return m, m.calendarView.Init()
			case "3":
				m.currentView = ViewGoals
				m.goalsView = view.NewGoalsModel(m.savingsService)

				return m, m.goalsView.Init()
			case "4":
				m.currentView = ViewSnapshot
				m.snapshotView = view.NewSnapshotModel(m.snapshotService)

				return m, m.snapshotView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewIncomes:
		var newModel tea.Model
		newModel, cmd = m.incomesView.Update(msg)
		m.incomesView = newModel.(view.IncomesModel)
	case ViewCalendar:
		var newModel tea.Model
		newModel, cmd = m.calendarView.Update(msg)
		m.calendarView = newModel.(view.CalendarModel)
	case ViewGoals:
		var newModel tea.Model
		newModel, cmd = m.goalsView.Update(msg)
		m.goalsView = newModel.(view.GoalsModel)
	case ViewSnapshot:
		var newModel tea.Model
		newModel, cmd = m.snapshotView.Update(msg)
		m.snapshotView = newModel.(view.SnapshotModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Ledgerline TUI\n\n" +
				"1. Income Sources\n" +
				"2. Pay Calendar\n" +
				"3. Savings Goals\n" +
				"4. Snapshot Export/Import\n\n" +
				"q. Quit",
		)
	case ViewIncomes:
		return m.incomesView.View()
	case ViewCalendar:
		return m.calendarView.View()
	case ViewGoals:
		return m.goalsView.View()
	case ViewSnapshot:
		return m.snapshotView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
