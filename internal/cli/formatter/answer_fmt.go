package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/jornada/internal/llm"
)

// FormatAnswer renders an answer with its optional confidence and sources.
func FormatAnswer(a *llm.Answer) string {
	var b strings.Builder
	b.WriteString(a.Text)
	b.WriteString("\n")
	if a.Confidence != nil {
		b.WriteString(Dim(fmt.Sprintf("\nconfiança: %.0f%%", *a.Confidence*100)))
		b.WriteString("\n")
	}
	if len(a.Sources) > 0 {
		b.WriteString(Dim("fontes:"))
		b.WriteString("\n")
		for _, s := range a.Sources {
			b.WriteString("  " + StyleBlue.Render("•") + " " + s + "\n")
		}
	}
	return b.String()
}
