package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedRepoStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	repoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	repoURLStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	yearStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	monthLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	peakBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("247"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
