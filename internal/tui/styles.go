package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the view
type Styles struct {
	Heading      lipgloss.Style
	Label        lipgloss.Style
	Button       lipgloss.Style
	EmptyInput   lipgloss.Style
	NotFound     lipgloss.Style
	PartOfSpeech lipgloss.Style
	Definition   lipgloss.Style
	Audio        lipgloss.Style
	Help         lipgloss.Style
	Searching    lipgloss.Style
}

// DefaultStyles returns the default color scheme
func DefaultStyles() Styles {
	return Styles{
		Heading:      lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Button:       lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()),
		EmptyInput:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		NotFound:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		PartOfSpeech: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).Italic(true),
		Definition:   lipgloss.NewStyle().PaddingLeft(2),
		Audio:        lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
		Help:         lipgloss.NewStyle().Faint(true).MarginTop(1),
		Searching:    lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
