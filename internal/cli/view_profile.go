package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// profileView shows the signed-in user and progress, and offers logout.
type profileView struct {
	state *SharedState
}

func newProfileView(state *SharedState) *profileView {
	return &profileView{state: state}
}

func (v *profileView) Init() tea.Cmd { return nil }

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "l" {
		return v, pushView(newLogoutConfirmView(v.state))
	}
	return v, nil
}

// newLogoutConfirmView asks before clearing the session.
func newLogoutConfirmView(state *SharedState) View {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Sair").
				Description("Tem certeza que deseja sair da sua conta?").
				Affirmative("Sair").
				Negative("Cancelar").
				Value(&confirmed),
		),
	).WithTheme(jornadaHuhTheme()).WithShowHelp(false)

	return newWizardView(state, "Sair", form, func() tea.Cmd {
		if !confirmed {
			return nil
		}
		return logoutCmd(state.App)
	})
}

func logoutCmd(app *App) tea.Cmd {
	return func() tea.Msg {
		app.Auth.Logout()
		return loggedOutMsg{}
	}
}

func (v *profileView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Header("Perfil"))
	b.WriteString("\n\n")

	u := v.state.User()
	if u == nil {
		b.WriteString("  " + formatter.Dim("Nenhuma sessão ativa.") + "\n")
		return b.String()
	}

	total, completed, maxXP := len(v.state.Journey), 0, 0
	for _, s := range v.state.Journey {
		maxXP += s.XP
		if s.Status == domain.StepCompleted {
			completed++
		}
	}
	xp := v.state.EarnedXP()

	b.WriteString("  " + formatter.Bold(u.Name) + "\n")
	b.WriteString("  " + formatter.Dim(u.Email) + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("XP:"), formatter.StyleYellow.Render(fmt.Sprintf("%d / %d", xp, maxXP))))
	pct := 0.0
	if maxXP > 0 {
		pct = float64(xp) / float64(maxXP)
	}
	b.WriteString("  " + formatter.RenderProgress(pct, 20) + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %d/%d\n", formatter.Dim("Etapas concluídas:"), completed, total))
	if c := v.state.App.Catalog; c != nil {
		b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Sequência:"), formatter.StyleYellow.Render(fmt.Sprintf("🔥 %d dias", c.Streak))))
		board := domain.SummarizeAchievements(c.Achievements)
		b.WriteString(fmt.Sprintf("  %s %d/%d\n", formatter.Dim("Conquistas:"), board.Completed, board.Total))
	}
	return b.String()
}

func (v *profileView) ID() ViewID    { return ViewProfile }
func (v *profileView) Title() string { return "Perfil" }
func (v *profileView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "sair da conta")),
	}
}
