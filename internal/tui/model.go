package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/calc/internal/events"
)

const maxLogLines = 200

// logLine is one formatted, already-styled line in the scrollback.
type logLine struct {
	at   time.Time
	text string
}

// model is the bubbletea model for the read-only calculator dashboard. It
// never reads stdin itself: the interpreter owns stdin, and the dashboard
// only reacts to events forwarded to it over a channel.
type model struct {
	runID string

	lastCommand string
	replayDepth int
	linesToSkip int
	crashed     string

	log  []logLine
	vp   viewport.Model
	done bool

	width, height int
	ready         bool
}

func newModel(runID string) model {
	return model{runID: runID}
}

// eventMsg wraps an events.Event for delivery into the bubbletea loop.
type eventMsg struct{ ev events.Event }

// runDoneMsg signals that the wrapped interpreter run has returned.
type runDoneMsg struct {
	exited bool
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) appendLine(text string) model {
	m.log = append(m.log, logLine{at: time.Now(), text: text})
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
	return m.syncViewport()
}

// syncViewport pushes the current scrollback into the viewport and keeps it
// pinned to the newest line.
func (m model) syncViewport() model {
	if !m.ready {
		return m
	}
	m.vp.SetContent(strings.Join(linesText(m.log), "\n"))
	m.vp.GotoBottom()
	return m
}

func styleFor(ev events.Event) lipgloss.Style {
	switch {
	case ev.Type() == events.EventStateLiveRead:
		return styles.LiveRead
	case ev.Type() == events.EventStateLiveWrite:
		return styles.LiveWr
	case ev.Type() == events.EventProcessCrash:
		return styles.Crash
	case ev.Type() == events.EventCommandDispatch:
		return styles.Command
	default:
		return styles.Footer
	}
}
