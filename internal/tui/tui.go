// Package tui implements a read-only bubbletea dashboard for `calc run
// --tui`. The interpreter owns stdin for the actual calculator session; the
// dashboard only observes events forwarded to it over a channel and never
// competes for keyboard input.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/calc/internal/events"
)

// Dashboard renders a running interpreter's event stream.
type Dashboard struct {
	events <-chan events.Event
	runID  string
}

// New creates a Dashboard over evs, the run's event subscription.
func New(evs <-chan events.Event, runID string) *Dashboard {
	return &Dashboard{events: evs, runID: runID}
}

// Run starts the dashboard and blocks until runFn returns. runFn is expected
// to be the interpreter's blocking Run() method. On a terminal, Dashboard
// runs it on a background goroutine so the terminal's stdin stays
// exclusively in its hands while the dashboard renders to the alt screen;
// otherwise runSimple calls it directly.
func (d *Dashboard) Run(runFn func() (exited bool, err error)) error {
	if !isTerminal() {
		return d.runSimple(runFn)
	}

	// stdin belongs to the interpreter; give bubbletea a reader that never
	// produces a byte so it never contends for it.
	blockedInput, _ := io.Pipe()
	p := tea.NewProgram(newModel(d.runID), tea.WithAltScreen(), tea.WithInput(blockedInput))

	go func() {
		for ev := range d.events {
			p.Send(eventMsg{ev: ev})
		}
	}()

	go func() {
		exited, err := runFn()
		p.Send(runDoneMsg{exited: exited, err: err})
	}()

	_, err := p.Run()
	return err
}
