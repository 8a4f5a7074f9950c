package tui

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/npratt/calc/internal/events"
)

// isTerminal reports whether stdout is a TTY. Stdin is deliberately not
// checked here: it belongs to the interpreter regardless of dashboard mode.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runSimple prints each event as a single line to stderr instead of
// rendering a full-screen dashboard, for non-interactive environments
// (redirected output, CI).
func (d *Dashboard) runSimple(runFn func() (bool, error)) error {
	go func() {
		for ev := range d.events {
			fmt.Fprintln(os.Stderr, formatPlain(ev))
		}
	}()

	_, err := runFn()
	return err
}

func formatPlain(ev events.Event) string {
	id := shortID(ev.RunID())
	switch e := ev.(type) {
	case *events.CommandEvent:
		return fmt.Sprintf("[%s] command: %s", id, e.Command)
	case *events.ProcessEvent:
		return fmt.Sprintf("[%s] %s: %s", id, ev.Type(), e.Detail)
	default:
		return fmt.Sprintf("[%s] %s", id, ev.Type())
	}
}
