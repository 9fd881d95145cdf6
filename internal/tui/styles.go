package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C757D")).
			Padding(0, 2).
			Width(14).
			Align(lipgloss.Center)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#6C757D"))

	activeTabStyle = tabStyle.
			Bold(true).
			Foreground(lipgloss.Color("#1A1A2E")).
			Background(lipgloss.Color("#4ECDC4"))

	recordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A2E")).
			Background(lipgloss.Color("#95E1A3")).
			Padding(0, 1)

	vinylBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	cdBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))
)
