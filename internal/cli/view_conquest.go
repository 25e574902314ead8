package cli

import (
	"strings"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// conquestView lists the achievements with their rewards.
type conquestView struct {
	state  *SharedState
	offset int
}

func newConquestView(state *SharedState) *conquestView {
	return &conquestView{state: state}
}

func (v *conquestView) Init() tea.Cmd { return nil }

func (v *conquestView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	lines := strings.Count(v.body(), "\n")
	switch keyMsg.String() {
	case "up", "k":
		if v.offset > 0 {
			v.offset--
		}
	case "down", "j":
		if v.offset < lines-v.state.ContentHeight() {
			v.offset++
		}
	}
	return v, nil
}

func (v *conquestView) body() string {
	if v.state.App.Catalog == nil {
		return formatter.Dim("Nenhuma conquista disponível.") + "\n"
	}
	return formatter.FormatConquest(v.state.App.Catalog.Achievements)
}

func (v *conquestView) View() string {
	lines := strings.Split("\n"+v.body(), "\n")
	if v.offset > 0 && v.offset < len(lines) {
		lines = lines[v.offset:]
	}
	if h := v.state.ContentHeight(); len(lines) > h {
		lines = lines[:h]
	}
	return strings.Join(lines, "\n")
}

func (v *conquestView) ID() ViewID    { return ViewConquest }
func (v *conquestView) Title() string { return "Conquistas" }
func (v *conquestView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "rolar")),
	}
}
