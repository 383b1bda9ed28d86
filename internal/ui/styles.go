package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/srctex/internal/config"
)

// StyleManager encapsulates the preview styles
type StyleManager struct {
	Header  lipgloss.Style // file tab bar
	Active  lipgloss.Style // selected file tab
	Listing lipgloss.Style // lstlisting delimiter lines
	Command lipgloss.Style // LaTeX command lines
	Dim     lipgloss.Style
	Border  lipgloss.Style
	Divider lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Header:  lipgloss.NewStyle().Bold(true),
		Active:  lipgloss.NewStyle().Bold(true).Underline(true),
		Listing: lipgloss.NewStyle(),
		Command: lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	headerColor := parseANSIColor(config.GetColorHeader())
	listingColor := parseANSIColor(config.GetColorListing())
	borderColor := lipgloss.Color(config.GetColorBorder())
	dimColor := lipgloss.Color(config.GetColorDim())

	s.Header = lipgloss.NewStyle().Foreground(headerColor)
	s.Active = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(headerColor)
	s.Listing = lipgloss.NewStyle().Foreground(listingColor)
	s.Command = lipgloss.NewStyle().Foreground(headerColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)
	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
	s.Divider = lipgloss.NewStyle().Foreground(borderColor)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
