package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Theme holds the styles used to draw regions, cards and toasts.
type Theme struct {
	Title     lipgloss.Style
	Card      lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	Label     lipgloss.Style

	Valid   lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastUrgent  lipgloss.Style
	ToastError   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true).
			Background(lipgloss.Color("#7c3aed")).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#28a745")).
			Padding(0, 1),
		Highlight: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#007bff")).
			Padding(0, 1),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Label: lipgloss.NewStyle().Bold(true),

		Valid:   lipgloss.NewStyle().Foreground(lipgloss.Color("#28a745")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffc107")).Bold(true),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("#dc3545")).Bold(true),

		ToastInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#17a2b8")),
		ToastSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#28a745")),
		ToastUrgent:  lipgloss.NewStyle().Background(lipgloss.Color("#dc3545")).Foreground(lipgloss.Color("#ffffff")).Bold(true),
		ToastError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#dc3545")),
	}
}

// PlainTheme renders without any escape sequences or borders. It is used
// when colour is disabled and in tests.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title: plain, Card: plain, Highlight: plain, Muted: plain, Label: plain,
		Valid: plain, Warning: plain, Danger: plain,
		ToastInfo: plain, ToastSuccess: plain, ToastUrgent: plain, ToastError: plain,
	}
}

// box renders lines inside style and splits the result back into lines.
func box(style lipgloss.Style, lines []string) []string {
	return strings.Split(style.Render(strings.Join(lines, "\n")), "\n")
}
