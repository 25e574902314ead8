package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// loginSubmittedMsg carries validated credentials from the form.
type loginSubmittedMsg struct {
	email    string
	password string
}

// loginResultMsg reports how a login attempt resolved.
type loginResultMsg struct {
	ok bool
}

// loginFields backs the login form inputs.
type loginFields struct {
	email    string
	password string
}

// loginView is the unauthenticated start screen.
type loginView struct {
	state   *SharedState
	fields  *loginFields
	form    *huh.Form
	spinner spinner.Model
	loading bool
	errMsg  string
}

func newLoginView(state *SharedState) *loginView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	v := &loginView{state: state, spinner: sp}
	v.resetForm("")
	return v
}

// resetForm rebuilds the form, keeping email so a retry only needs the
// password.
func (v *loginView) resetForm(email string) {
	v.fields = &loginFields{email: email}
	v.form = newLoginForm(v.fields)
}

func newLoginForm(f *loginFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("seu@email.com").
				Value(&f.email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Senha").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(validatePassword),
		),
	).WithTheme(jornadaHuhTheme()).WithShowHelp(false)
}

// loginCmd runs the store login off the event loop.
func loginCmd(app *App, email, password string) tea.Cmd {
	return func() tea.Msg {
		ok := app.Auth.Login(context.Background(), email, password)
		return loginResultMsg{ok: ok}
	}
}

func (v *loginView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginSubmittedMsg:
		if v.loading {
			return v, nil
		}
		v.loading = true
		v.errMsg = ""
		return v, tea.Batch(v.spinner.Tick, loginCmd(v.state.App, msg.email, msg.password))

	case loginResultMsg:
		v.loading = false
		if msg.ok {
			return v, replaceView(newJourneyView(v.state))
		}
		v.errMsg = "Email ou senha incorretos."
		v.resetForm(v.fields.email)
		return v, v.form.Init()

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	if v.loading {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted {
		sub := loginSubmittedMsg{email: strings.TrimSpace(v.fields.email), password: v.fields.password}
		return v, tea.Batch(cmd, func() tea.Msg { return sub })
	}
	return v, cmd
}

func (v *loginView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Header("Bem-vindo à Jornada"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Entre para continuar sua jornada espiritual"))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString("  " + v.spinner.View() + " " + formatter.Dim("Entrando..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(v.form.View())
	if v.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(formatter.StyleRed.Render("✖ " + v.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *loginView) CapturesInput() bool { return true }

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "Entrar" }
func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "próximo")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "sair")),
	}
}
