package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/calc/internal/events"
)

// headerFooterHeight is the vertical space the header, status row, footer,
// and viewport border consume.
const headerFooterHeight = 6

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		vpHeight := msg.Height - headerFooterHeight
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width-4, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width - 4
			m.vp.Height = vpHeight
		}
		return m.syncViewport(), nil

	case eventMsg:
		return m.applyEvent(msg.ev), nil

	case runDoneMsg:
		m.done = true
		if msg.err != nil {
			m = m.appendLine(styles.Crash.Render(fmt.Sprintf("run ended with error: %v", msg.err)))
		}
		return m, tea.Quit

	case tea.KeyMsg:
		// The interpreter owns stdin; the dashboard takes no keyboard input
		// of its own. Ctrl+C still quits the dashboard process.
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m model) applyEvent(ev events.Event) model {
	switch e := ev.(type) {
	case *events.CommandEvent:
		m.lastCommand = e.Command
		m = m.appendLine(styles.Command.Render(fmt.Sprintf("> %s", e.Command)))
	case *events.StateEvent:
		m.replayDepth = e.LoadedQueries
		m.linesToSkip = e.LinesToSkip
		if e.Line != "" {
			m = m.appendLine(styleFor(ev).Render(e.Line))
		}
	case *events.ProcessEvent:
		if e.Type() == events.EventProcessCrash {
			m.crashed = e.Detail
			m = m.appendLine(styles.Crash.Render(fmt.Sprintf("crash: %s", e.Detail)))
		}
	}
	return m
}
