package main

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type calculationDoneMsg struct{}

// progressModel shows a spinner on stderr until the calculation reports back
type progressModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newProgressModel(label string) progressModel {
	return progressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("14"))),
		),
		label: label,
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case calculationDoneMsg:
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label + "\n"
}

// withProgress runs calc while a spinner animates on stderr
func withProgress(label string, calc func() error) error {
	program := tea.NewProgram(newProgressModel(label), tea.WithOutput(os.Stderr), tea.WithInput(nil))

	errc := make(chan error, 1)
	go func() {
		errc <- calc()
		program.Send(calculationDoneMsg{})
	}()

	if _, err := program.Run(); err != nil {
		return err
	}
	return <-errc
}
