package teatest

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

type counterModel struct {
	count  int
	width  int
	pinged int
}

func (m counterModel) Init() tea.Cmd {
	return func() tea.Msg { return pingMsg{} }
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case pingMsg:
		m.pinged++
	case tea.KeyMsg:
		switch msg.String() {
		case "+":
			m.count++
		case "b":
			return m, tea.Batch(
				func() tea.Msg { return pingMsg{} },
				func() tea.Msg { return pingMsg{} },
			)
		case "s":
			return m, func() tea.Msg {
				time.Sleep(time.Second)
				return pingMsg{}
			}
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m counterModel) View() string {
	return fmt.Sprintf("count=%d width=%d pinged=%d", m.count, m.width, m.pinged)
}

func TestDriver_DrainsInitAndKeys(t *testing.T) {
	d := New(t, counterModel{}, WithSize(80, 24))
	d.DrainInit()

	d.Type("++")

	assert.Equal(t, "count=2 width=80 pinged=1", d.View())
}

func TestDriver_DrainsBatch(t *testing.T) {
	d := New(t, counterModel{})

	d.PressKey('b')

	assert.True(t, d.ViewContains("pinged=2"))
}

func TestDriver_SkipsSlowCmds(t *testing.T) {
	d := New(t, counterModel{}, WithCmdTimeout(5*time.Millisecond))

	d.PressKey('s')

	assert.Equal(t, 1, d.Skipped)
	assert.True(t, d.ViewContains("pinged=0"))
}

func TestDriver_DetectsQuit(t *testing.T) {
	d := New(t, counterModel{})

	d.PressKey('q')
	d.PressKey('+')

	assert.True(t, d.Quitting)
	assert.True(t, d.ViewContains("count=0"))
}
