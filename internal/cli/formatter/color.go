package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StepStatusStyle returns the style for a journey step status.
func StepStatusStyle(status domain.StepStatus) lipgloss.Style {
	switch status {
	case domain.StepCompleted:
		return StyleGreen
	case domain.StepCurrent:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StepStatusBadge returns a colored indicator such as "● ATUAL".
func StepStatusBadge(status domain.StepStatus) string {
	switch status {
	case domain.StepCompleted:
		return StyleGreen.Render("✔ CONCLUÍDA")
	case domain.StepCurrent:
		return StyleYellow.Render("● ATUAL")
	case domain.StepLocked:
		return StyleDim.Render("🔒 BLOQUEADA")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(status)))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
