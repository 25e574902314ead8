package formatter

import (
	"fmt"

	"github.com/alexanderramin/jornada/internal/domain"
)

// FormatSummary renders the completion screen of an activity.
func FormatSummary(s domain.Summary) string {
	var title, body string
	switch s.Mode {
	case domain.ModeQuiz:
		title = "🏆 Quiz concluído!"
		body = fmt.Sprintf("Você acertou %d de %d perguntas.", s.Score, s.TotalCount)
	case domain.ModeReader:
		title = "🙏 Parabéns!"
		body = "Você completou a leitura dos versículos bíblicos.\n" +
			Dim("Que essas palavras permaneçam em seu coração e guiem seus passos.")
	default:
		title = "✨ Missões registradas!"
		body = fmt.Sprintf("Você completou %d de %d missões.", s.CompletedCount, s.TotalCount)
	}
	return StyleHeader.Render(title) + "\n\n" + body + "\n\n" + RenderProgress(s.Percent()/100, 20)
}

// Checkbox renders a checklist marker.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[✓]")
	}
	return Dim("[ ]")
}
