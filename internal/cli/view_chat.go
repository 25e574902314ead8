package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/jornada/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

var chatGreetings = []string{
	"Olá! Sou seu assistente espiritual. Como posso te ajudar hoje?",
	"Que tal conversarmos sobre fé? O que mais te inspira na sua jornada espiritual?",
	"Há alguma passagem bíblica que tem tocado seu coração ultimamente?",
	"Como você tem sentido a presença de Deus em sua vida?",
}

// chatFallbacks answer when the ask service is off or failing.
var chatFallbacks = []string{
	"Que reflexão interessante! A fé realmente nos fortalece nos momentos difíceis.",
	"Concordo completamente. Deus trabalha de maneiras misteriosas em nossas vidas.",
	"É maravilhoso ver como você está crescendo espiritualmente. Continue nessa jornada!",
	"Essa é uma perspectiva muito sábia. A oração é mesmo um canal poderoso de comunicação.",
	"Obrigado por compartilhar isso comigo. Sua fé é verdadeiramente inspiradora.",
	"Que bela forma de ver as coisas! Deus certamente está guiando seus passos.",
}

type chatMessage struct {
	id     string
	text   string
	fromAI bool
	at     time.Time
}

// chatAnswerMsg delivers the reply to the message with id replyTo.
type chatAnswerMsg struct {
	replyTo  string
	text     string
	fallback bool
}

// chatView is a conversation with the assistant.
type chatView struct {
	state    *SharedState
	input    textinput.Model
	messages []chatMessage
	typing   bool
}

func newChatView(state *SharedState) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "Digite sua mensagem..."
	ti.CharLimit = 500

	v := &chatView{state: state, input: ti}
	v.messages = append(v.messages, v.newMessage(chatGreetings[state.App.Rand(len(chatGreetings))], true))
	return v
}

func (v *chatView) newMessage(text string, fromAI bool) chatMessage {
	return chatMessage{id: uuid.NewString(), text: text, fromAI: fromAI, at: v.state.App.Now()}
}

// askCmd asks the collaborator, falling back to a canned reply on any
// failure. The previous assistant message is sent as context.
func askCmd(app *App, replyTo, question, contextText string) tea.Cmd {
	return func() tea.Msg {
		if app.Ask == nil {
			return chatAnswerMsg{replyTo: replyTo, text: chatFallbacks[app.Rand(len(chatFallbacks))], fallback: true}
		}
		ans, err := app.Ask.Ask(context.Background(), question, contextText)
		if err != nil {
			app.Logger.Warn("chat_ask_failed", "message_id", replyTo, "error", err)
			return chatAnswerMsg{replyTo: replyTo, text: chatFallbacks[app.Rand(len(chatFallbacks))], fallback: true}
		}
		return chatAnswerMsg{replyTo: replyTo, text: ans.Text}
	}
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatAnswerMsg:
		v.typing = false
		v.messages = append(v.messages, v.newMessage(msg.text, true))
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, popView()
		case tea.KeyEnter:
			text := strings.TrimSpace(v.input.Value())
			if text == "" || v.typing {
				return v, nil
			}
			v.input.Reset()
			return v, v.send(text)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) send(text string) tea.Cmd {
	contextText := v.lastAIText()
	m := v.newMessage(text, false)
	v.messages = append(v.messages, m)
	v.typing = true
	return askCmd(v.state.App, m.id, text, contextText)
}

func (v *chatView) lastAIText() string {
	for i := len(v.messages) - 1; i >= 0; i-- {
		if v.messages[i].fromAI {
			return v.messages[i].text
		}
	}
	return ""
}

func (v *chatView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	width := v.state.ContentWidth()

	msgs := v.messages
	// Keep the tail that fits, two lines per message plus the prompt.
	if limit := (v.state.ContentHeight() - 4) / 2; limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}

	for _, m := range msgs {
		stamp := formatter.Dim(formatter.ClockTime(m.at))
		if m.fromAI {
			b.WriteString(formatter.StylePurple.Render("🕊️ Jornada") + " " + stamp + "\n")
			b.WriteString(formatter.Indent(formatter.Wrap(m.text, width), 2) + "\n")
		} else {
			b.WriteString(formatter.StyleGreen.Render("Você") + " " + stamp + "\n")
			b.WriteString(formatter.Indent(formatter.Wrap(m.text, width), 2) + "\n")
		}
	}

	if v.typing {
		b.WriteString(formatter.Dim("  digitando...") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.StylePurple.Render("›") + " ")
	b.WriteString(v.input.View())
	return b.String()
}

func (v *chatView) CapturesInput() bool { return true }

func (v *chatView) ID() ViewID    { return ViewChat }
func (v *chatView) Title() string { return "Conversa" }
func (v *chatView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "enviar")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "voltar")),
	}
}
