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

// journeyView lists the journey steps. Enter opens the step's activity or
// the chat.
type journeyView struct {
	state  *SharedState
	cursor int
	errMsg string
	notice string
}

func newJourneyView(state *SharedState) *journeyView {
	v := &journeyView{state: state}
	// Start on the current step.
	for i, s := range state.Journey {
		if s.Status == domain.StepCurrent {
			v.cursor = i
			break
		}
	}
	return v
}

func (v *journeyView) Init() tea.Cmd { return nil }

func (v *journeyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case activityFinishedMsg:
		v.notice = fmt.Sprintf("Etapa concluída! %s", formatter.Dim(fmt.Sprintf("(%d XP no total)", v.state.EarnedXP())))
		return v, nil

	case tea.KeyMsg:
		v.errMsg = ""
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.state.Journey)-1 {
				v.cursor++
			}
		case "enter":
			return v, v.open()
		case "p":
			return v, pushView(newProfileView(v.state))
		case "c":
			return v, pushView(newChatView(v.state))
		case "a":
			return v, pushView(newConquestView(v.state))
		}
	}
	return v, nil
}

func (v *journeyView) open() tea.Cmd {
	if v.cursor >= len(v.state.Journey) {
		return nil
	}
	step := v.state.Journey[v.cursor]
	if step.Kind == domain.StepChat {
		return pushView(newChatView(v.state))
	}
	a, err := activity.Open(v.state.App.Catalog, step.Kind)
	if err != nil {
		v.errMsg = err.Error()
		return nil
	}
	v.notice = ""
	return pushView(newActivityView(v.state, step, a))
}

func (v *journeyView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Header("Sua jornada"))
	b.WriteString("\n\n")

	if len(v.state.Journey) == 0 {
		b.WriteString("  " + formatter.Dim("Nenhuma etapa disponível.") + "\n")
		return b.String()
	}

	for i, s := range v.state.Journey {
		b.WriteString(formatter.FormatJourneyStep(s, i == v.cursor))
		b.WriteString("\n")
	}

	if v.notice != "" {
		b.WriteString("\n  " + formatter.StyleGreen.Render(v.notice) + "\n")
	}
	if v.errMsg != "" {
		b.WriteString("\n  " + formatter.StyleRed.Render("Erro: "+v.errMsg) + "\n")
	}
	return b.String()
}

func (v *journeyView) ID() ViewID    { return ViewJourney }
func (v *journeyView) Title() string { return "Jornada" }
func (v *journeyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "conversar")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "conquistas")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "perfil")),
	}
}
