package tui

import "github.com/charmbracelet/lipgloss"

var styles = struct {
	Header   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Footer   lipgloss.Style
	Border   lipgloss.Style
	Command  lipgloss.Style
	LiveRead lipgloss.Style
	LiveWr   lipgloss.Style
	Crash    lipgloss.Style
}{
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Border: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1),

	Command: lipgloss.NewStyle().
		Foreground(lipgloss.Color("177")),

	LiveRead: lipgloss.NewStyle().
		Foreground(lipgloss.Color("114")),

	LiveWr: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	Crash: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196")),
}
