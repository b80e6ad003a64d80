package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

var okStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("42")).
	Bold(true)

var statusStyles = map[roadmap.Status]lipgloss.Style{
	roadmap.StatusNotStarted: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	roadmap.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	roadmap.StatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	roadmap.StatusOnHold:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
}

func okBadge() string {
	return okStyle.Render("✓")
}

func statusBadge(s roadmap.Status) string {
	style, ok := statusStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(string(s))
}
