package main

import "github.com/charmbracelet/lipgloss"

var (
	// successStyle formats success messages.
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	// warningStyle formats warnings and low-confidence results.
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	// infoStyle formats informational output.
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1D3"))
	// subtleStyle formats less prominent text.
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	// boldStyle makes text bold.
	boldStyle = lipgloss.NewStyle().Bold(true)
)
