package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style
	Help      lipgloss.Style
	Status    lipgloss.Style
	Sidebar   lipgloss.Style
	Card      lipgloss.Style
	Button    lipgloss.Style
	Focused   lipgloss.Style
	ErrorText lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Label:    lipgloss.NewStyle().Bold(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Sidebar: lipgloss.NewStyle().
			Width(sidebarWidth).
			Padding(1, 2).
			BorderStyle(lipgloss.ThickBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("63")),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Button: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")),
		Focused: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("63")),
		ErrorText: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
