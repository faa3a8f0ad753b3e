package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Palette
	colorGreen  = lipgloss.Color("#00FF99") // Success / Go
	colorPurple = lipgloss.Color("#874BFD") // Headers / Repairs
	colorSub    = lipgloss.Color("#64748B") // Subtext
	colorDanger = lipgloss.Color("#FF0055") // Fatal
	colorAmber  = lipgloss.Color("#F59E0B") // Warnings

	// Shared Styles
	subtle  = lipgloss.NewStyle().Foreground(colorSub)
	special = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	danger  = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	warning = lipgloss.NewStyle().Foreground(colorAmber)

	// Icon Styles (Text Based - No Emojis)
	iconOK   = lipgloss.NewStyle().Foreground(colorGreen).SetString("[ OK ]")
	iconWarn = lipgloss.NewStyle().Foreground(colorAmber).SetString("[WARN]")
	iconFail = lipgloss.NewStyle().Foreground(colorDanger).SetString("[FAIL]")
	iconFix  = lipgloss.NewStyle().Foreground(colorPurple).SetString("[ FIX]")
)
