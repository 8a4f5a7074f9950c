package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	header := styles.Header.Render(fmt.Sprintf("calc  run=%s", shortID(m.runID)))

	status := lipgloss.JoinHorizontal(lipgloss.Top,
		statField("last command", m.lastCommand),
		statField("replay depth", fmt.Sprintf("%d", m.replayDepth)),
		statField("lines to skip", fmt.Sprintf("%d", m.linesToSkip)),
	)

	var body string
	if m.ready {
		body = styles.Border.Render(m.vp.View())
	} else {
		body = styles.Border.Width(max(m.width-4, 20)).Render(strings.Join(linesText(m.log), "\n"))
	}

	footer := styles.Footer.Render("ctrl+c to detach; the calculator session itself is unaffected")
	if m.crashed != "" {
		footer = styles.Crash.Render("interpreter crashed: " + m.crashed)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, status, body, footer)
}

func statField(label, value string) string {
	return styles.Label.Render(label+": ") + styles.Value.Render(value) + "   "
}

func linesText(log []logLine) []string {
	out := make([]string, 0, len(log))
	for _, l := range log {
		out = append(out, l.at.Format("15:04:05")+" "+l.text)
	}
	if len(out) == 0 {
		out = []string{"(waiting for activity)"}
	}
	return out
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
