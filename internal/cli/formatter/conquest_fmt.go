package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/jornada/internal/domain"
)

// FormatAchievementStats renders the completed count, earned XP and
// completion share of a conquest board.
func FormatAchievementStats(p domain.AchievementProgress) string {
	return fmt.Sprintf("%s %s   %s %s   %s %s\n%s",
		StyleGreen.Render(fmt.Sprintf("%d", p.Completed)), Dim("Conquistas"),
		StyleYellow.Render(fmt.Sprintf("%d", p.XP)), Dim("XP Total"),
		Bold(fmt.Sprintf("%d%%", p.Percent())), Dim("Progresso"),
		RenderProgress(float64(p.Percent())/100, 20),
	)
}

// FormatAchievement renders one achievement as a title line and a
// description line.
func FormatAchievement(a domain.Achievement) string {
	mark := Dim("○")
	title := StyleFg.Render(a.Title)
	reward := Dim(fmt.Sprintf("+%d XP", a.XPReward))
	if a.Completed {
		mark = StyleGreen.Render("✓")
		title = Bold(a.Title)
		reward = StyleYellow.Render(fmt.Sprintf("+%d XP", a.XPReward))
	}
	line := fmt.Sprintf("%s %s %s  %s", mark, a.Icon, title, reward)
	if a.Description != "" {
		line += "\n    " + Dim(a.Description)
	}
	return line
}

// FormatConquest renders the whole board with its stats.
func FormatConquest(list []domain.Achievement) string {
	var b strings.Builder
	b.WriteString(Header("Conquistas"))
	b.WriteString("\n")
	b.WriteString(Dim("Acompanhe seu progresso espiritual"))
	b.WriteString("\n\n")
	b.WriteString(Indent(FormatAchievementStats(domain.SummarizeAchievements(list)), 2))
	b.WriteString("\n\n")
	for _, a := range list {
		b.WriteString("  " + FormatAchievement(a) + "\n")
	}
	return b.String()
}
