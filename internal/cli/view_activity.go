package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/jornada/internal/activity"
	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// activityView renders one Activity in any mode and maps keys onto its
// operations.
type activityView struct {
	state    *SharedState
	step     domain.JourneyStep
	act      *activity.Activity
	row      int // checklist highlight
	hint     string
	reported bool
}

func newActivityView(state *SharedState, step domain.JourneyStep, act *activity.Activity) *activityView {
	return &activityView{state: state, step: step, act: act}
}

// Init resets the activity so every open starts fresh.
func (v *activityView) Init() tea.Cmd {
	v.act.Reset()
	v.row = 0
	v.hint = ""
	v.reported = false
	return nil
}

func (v *activityView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	v.hint = ""

	if v.act.IsComplete() {
		if keyMsg.Type == tea.KeyEnter {
			return v, popView()
		}
		return v, nil
	}

	switch v.act.Mode() {
	case domain.ModeChecklist:
		v.updateChecklist(keyMsg)
	case domain.ModeQuiz:
		v.updateQuiz(keyMsg)
	case domain.ModeReader:
		v.updateReader(keyMsg)
	}
	return v, v.reportIfComplete()
}

func (v *activityView) updateChecklist(msg tea.KeyMsg) {
	items := v.act.Items()
	switch msg.String() {
	case "up", "k":
		if v.row > 0 {
			v.row--
		}
	case "down", "j":
		if v.row < len(items)-1 {
			v.row++
		}
	case " ", "enter", "x":
		v.act.Respond(items[v.row].ID, domain.NoOption)
	case "c":
		v.act.Close()
	}
}

func (v *activityView) updateQuiz(msg tea.KeyMsg) {
	item := v.act.CurrentItem()
	_, answered := v.act.Response(item.ID)

	switch s := msg.String(); s {
	case "up", "k":
		if !answered {
			sel := v.act.Selection()
			if sel == domain.NoOption {
				sel = len(item.Options)
			}
			v.act.Select(max(sel-1, 0))
		}
	case "down", "j":
		if !answered {
			v.act.Select(min(v.act.Selection()+1, len(item.Options)-1))
		}
	case "enter":
		if answered {
			v.act.Advance()
			return
		}
		if v.act.Selection() == domain.NoOption {
			v.hint = "Escolha uma alternativa."
			return
		}
		v.act.Respond(item.ID, v.act.Selection())
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' && !answered {
			v.act.Select(int(s[0] - '1'))
		}
	}
}

func (v *activityView) updateReader(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter", " ", "right", "l":
		v.act.Advance()
	}
}

// reportIfComplete emits activityFinishedMsg once per run.
func (v *activityView) reportIfComplete() tea.Cmd {
	sum, done := v.act.Summary()
	if !done || v.reported {
		return nil
	}
	v.reported = true
	v.state.App.Logger.Info("activity_completed",
		"step_id", v.step.ID,
		"mode", string(sum.Mode),
		"completed", sum.CompletedCount,
		"score", sum.Score,
		"total", sum.TotalCount,
	)
	stepID := v.step.ID
	return func() tea.Msg { return activityFinishedMsg{stepID: stepID, summary: sum} }
}

func (v *activityView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if sum, done := v.act.Summary(); done {
		// The reader completes on arrival at the last verse, so it is
		// shown with the summary.
		if v.act.Mode() == domain.ModeReader {
			v.viewReader(&b)
			b.WriteString("\n")
		}
		b.WriteString(formatter.Indent(formatter.FormatSummary(sum), 2))
		b.WriteString("\n\n  " + formatter.Dim("enter: concluir") + "\n")
		return b.String()
	}

	switch v.act.Mode() {
	case domain.ModeChecklist:
		v.viewChecklist(&b)
	case domain.ModeQuiz:
		v.viewQuiz(&b)
	case domain.ModeReader:
		v.viewReader(&b)
	}

	b.WriteString("\n  " + formatter.RenderProgress(v.act.ProgressPercent()/100, 20) + "\n")
	if v.hint != "" {
		b.WriteString("\n  " + formatter.StyleYellow.Render(v.hint) + "\n")
	}
	return b.String()
}

func (v *activityView) viewChecklist(b *strings.Builder) {
	b.WriteString(formatter.Header("Missões Diárias"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Complete as missões para crescer espiritualmente"))
	b.WriteString("\n\n")
	for i, it := range v.act.Items() {
		r, _ := v.act.Response(it.ID)
		cursor := "  "
		title := formatter.StyleFg.Render(it.Title)
		if i == v.row {
			cursor = formatter.StyleGreen.Render("▸ ")
			title = formatter.Bold(it.Title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, formatter.Checkbox(r.Done), title))
	}
}

func (v *activityView) viewQuiz(b *strings.Builder) {
	item := v.act.CurrentItem()
	resp, answered := v.act.Response(item.ID)

	b.WriteString(formatter.Dim(fmt.Sprintf("%d/%d", v.act.Cursor()+1, v.act.Total())))
	b.WriteString("\n")
	b.WriteString(formatter.Bold(formatter.Wrap(item.Title, v.state.ContentWidth())))
	b.WriteString("\n\n")

	for i, opt := range item.Options {
		marker := "  "
		label := formatter.StyleFg.Render(opt)
		switch {
		case answered && i == item.Correct:
			marker = formatter.StyleGreen.Render("✓ ")
			label = formatter.StyleGreen.Render(opt)
		case answered && i == resp.Option:
			marker = formatter.StyleRed.Render("✗ ")
			label = formatter.StyleRed.Render(opt)
		case !answered && i == v.act.Selection():
			marker = formatter.StyleHeader.Render("▸ ")
			label = formatter.Bold(opt)
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", marker, i+1, label))
	}

	if answered {
		if resp.Option == item.Correct {
			b.WriteString("\n  " + formatter.StyleGreen.Render("Resposta correta!") + "\n")
		} else {
			b.WriteString("\n  " + formatter.StyleRed.Render("Não foi dessa vez.") + "\n")
		}
	}
}

func (v *activityView) viewReader(b *strings.Builder) {
	item := v.act.CurrentItem()
	width := v.state.ContentWidth()

	b.WriteString(formatter.Dim(fmt.Sprintf("Versículo %d/%d", v.act.Cursor()+1, v.act.Total())))
	b.WriteString("\n\n")
	b.WriteString(formatter.StyleFg.Render(formatter.Wrap("“"+item.Title+"”", width)))
	b.WriteString("\n")
	b.WriteString(formatter.StyleBlue.Render(item.Reference))
	b.WriteString("\n\n")
	if item.Reflection != "" {
		b.WriteString(formatter.StyleHeader.Render("💭 Reflexão"))
		b.WriteString("\n")
		b.WriteString(formatter.Wrap(item.Reflection, width))
		b.WriteString("\n")
	}
}

func (v *activityView) ID() ViewID { return ViewActivity }
func (v *activityView) Title() string {
	return formatter.StepLabel(v.step.Kind)
}

func (v *activityView) ShortHelp() []key.Binding {
	if v.act.IsComplete() {
		return []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "concluir"))}
	}
	switch v.act.Mode() {
	case domain.ModeChecklist:
		return []key.Binding{
			key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "marcar")),
			key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "concluir")),
		}
	case domain.ModeQuiz:
		return []key.Binding{
			key.NewBinding(key.WithKeys("1-4"), key.WithHelp("1-4", "escolher")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "responder")),
		}
	default:
		return []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "próximo"))}
	}
}
