package ui

import "github.com/charmbracelet/lipgloss"

// ANSI colours only, so terminal themes decide the exact shade.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FlagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	BotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
