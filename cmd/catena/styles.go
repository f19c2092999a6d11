package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	nodeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	keyStyle    = lipgloss.NewStyle().Faint(true)
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)
