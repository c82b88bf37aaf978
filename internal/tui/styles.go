package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorHeader   = lipgloss.Color("39")
	ColorSelected = lipgloss.Color("229")
	ColorAccent   = lipgloss.Color("57")
	ColorMuted    = lipgloss.Color("241")
	ColorError    = lipgloss.Color("196")
)

var (
	TitleStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				Padding(0, 1)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorSelected).
				Background(ColorAccent)

	FooterStyle = lipgloss.NewStyle().Foreground(ColorHeader)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError)
)
