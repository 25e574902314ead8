package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/jornada/internal/domain"
)

// StepLabel returns the display name of a step kind.
func StepLabel(kind domain.StepKind) string {
	switch kind {
	case domain.StepChat:
		return "Conversa"
	case domain.StepMission:
		return "Missões"
	case domain.StepQuiz:
		return "Quiz"
	case domain.StepRead:
		return "Leitura"
	default:
		return string(kind)
	}
}

// FormatJourneyStep renders one step line. The cursor marker is drawn when
// selected is true.
func FormatJourneyStep(s domain.JourneyStep, selected bool) string {
	cursor := "  "
	label := StyleFg
	if selected {
		cursor = StyleGreen.Render("▸ ")
		label = StyleBold
	}
	return fmt.Sprintf("%s%s %s  %s  %s",
		cursor,
		s.Icon,
		label.Render(fmt.Sprintf("%-9s", StepLabel(s.Kind))),
		StepStatusStyle(s.Status).Render(fmt.Sprintf("+%d XP", s.XP)),
		StepStatusBadge(s.Status),
	)
}

// FormatJourney renders the whole path followed by the earned XP total.
func FormatJourney(steps []domain.JourneyStep) string {
	var b strings.Builder
	b.WriteString(Header("Jornada"))
	b.WriteString("\n\n")
	for _, s := range steps {
		b.WriteString(FormatJourneyStep(s, false))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("XP conquistado:"), StyleYellow.Render(fmt.Sprintf("%d", domain.EarnedXP(steps)))))
	return b.String()
}
