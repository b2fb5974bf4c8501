package tui

import "github.com/charmbracelet/lipgloss"

// palette is the pair of lipgloss styles a theme provides. Two fixed
// palettes exist; the active one is chosen by the persisted dark-mode
// preference and can be flipped at runtime.
type palette struct {
	title  lipgloss.Style
	help   lipgloss.Style
	errMsg lipgloss.Style
	status lipgloss.Style
	accent lipgloss.Style
}

var lightPalette = palette{
	title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
	help:   lipgloss.NewStyle().Faint(true),
	errMsg: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
	status: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	accent: lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
}

var darkPalette = palette{
	title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
	help:   lipgloss.NewStyle().Faint(true),
	errMsg: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	status: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	accent: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
}

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}
