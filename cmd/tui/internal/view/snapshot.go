package view

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerline/ledgerline/internal/snapshot"
)

type snapshotDirection string

const (
	snapshotExport snapshotDirection = "export"
	snapshotImport snapshotDirection = "import"
)

type SnapshotModel struct {
	CommonModel
	svc *snapshot.Service

	form   *huh.Form
	status string
	done   bool

	// Form bindings
	formDirection snapshotDirection
	formPath      string
}

func NewSnapshotModel(svc *snapshot.Service) SnapshotModel {
	m := SnapshotModel{
		svc:           svc,
		formDirection: snapshotExport,
		formPath:      "ledgerline-snapshot.json",
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[snapshotDirection]().
				Key("direction").
				Title("Direction").
				Options(
					huh.NewOption("Export to file", snapshotExport),
					huh.NewOption("Import from file", snapshotImport),
				).
				Value(&m.formDirection),

			huh.NewInput().
				Key("path").
				Title("File path").
				Value(&m.formPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(52).WithShowHelp(false)

	return m
}

func (m SnapshotModel) Title() string     { return "Snapshot" }
func (m SnapshotModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m SnapshotModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SnapshotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotDoneMsg:
		m.done = true
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Snapshot %sed: %s", m.formDirection, m.formPath)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || (m.done && msg.String() == "enter") {
			return m, Back
		}
	}

	if m.done {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.runCmd()
}

func (m SnapshotModel) View() string {
	if m.done {
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\nPress Enter or Esc to go back.")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render("Snapshot\n\n" + m.form.View())
}

// Messages

type snapshotDoneMsg struct {
	err error
}

func (m SnapshotModel) runCmd() tea.Cmd {
	direction := m.formDirection
	path := strings.TrimSpace(m.formPath)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if direction == snapshotImport {
			f, err := os.Open(path)
			if err != nil {
				return snapshotDoneMsg{err: err}
			}
			defer f.Close()

			return snapshotDoneMsg{err: m.svc.Import(ctx, f)}
		}

		f, err := os.Create(path)
		if err != nil {
			return snapshotDoneMsg{err: err}
		}

		if err := m.svc.Export(ctx, f); err != nil {
			f.Close()
			return snapshotDoneMsg{err: err}
		}

		return snapshotDoneMsg{err: f.Close()}
	}
}
