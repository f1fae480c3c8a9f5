package ui

import (
	"os"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

type spinnerModel struct {
	spinner spinner.Model
	message string
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Keystrokes are ignored; the spinner stops when the work finishes.
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() tea.View {
	return tea.NewView(m.spinner.View() + " " + mutedStyle.Render(m.message))
}

// Spin shows a spinner on stderr until the returned stop func is called.
func (t *TTY) Spin(message string) func() {
	s := spinner.New()
	s.Spinner = spinner.Dot
	p := tea.NewProgram(spinnerModel{spinner: s, message: message}, tea.WithOutput(os.Stderr))

	done := make(chan struct{})
	go func() {
		// Run blocks until Quit; render errors just drop the spinner.
		_, _ = p.Run()
		close(done)
	}()

	return func() {
		p.Quit()
		<-done
	}
}
