package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	markStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	questionStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// Terminal asks questions with a small Bubble Tea program per question.
// It needs a TTY on in.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal creates a terminal asker.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

func (t *Terminal) Ask(ctx context.Context, q Question) (Answer, error) {
	p := tea.NewProgram(newQuestionModel(q),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return Answer{}, interrupted(ctx.Err())
		}
		return Answer{}, fmt.Errorf("prompt %s: %w", q.Name, err)
	}

	m, ok := final.(questionModel)
	if !ok {
		return Answer{}, fmt.Errorf("prompt %s: unexpected model type %T", q.Name, final)
	}
	if m.interrupted {
		return Answer{}, ErrInterrupted
	}
	return m.answer, nil
}

// questionModel is the Bubble Tea model for a single question.
type questionModel struct {
	q           Question
	cursor      int
	input       textinput.Model
	err         error
	answer      Answer
	done        bool
	interrupted bool
}

func newQuestionModel(q Question) questionModel {
	m := questionModel{q: q}
	if q.Kind == KindInput {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = q.Default
		ti.Focus()
		m.input = ti
	}
	return m
}

func (m questionModel) Init() tea.Cmd {
	if m.q.Kind == KindInput {
		return textinput.Blink
	}
	return nil
}

func (m questionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		m.interrupted = true
		return m, tea.Quit
	}

	switch m.q.Kind {
	case KindSelect:
		return m.updateSelect(msg)
	case KindConfirm:
		return m.updateConfirm(msg)
	default:
		return m.updateInput(msg)
	}
}

func (m questionModel) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.q.Options)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.q.Options) == 0 {
			return m, nil
		}
		m.answer = Answer{Name: m.q.Name, Value: m.q.Options[m.cursor].Value}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m questionModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	raw := key.String()
	if key.Type == tea.KeyEnter {
		raw = ""
	}
	answer, err := m.q.resolveConfirm(raw)
	if err != nil {
		return m, nil
	}
	m.answer = answer
	m.done = true
	return m, tea.Quit
}

func (m questionModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		answer, err := m.q.resolveInput(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.err = err
			return m, nil
		}
		m.answer = answer
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.err = nil
	}
	return m, cmd
}

func (m questionModel) View() string {
	var b strings.Builder
	b.WriteString(markStyle.Render("?") + " " + questionStyle.Render(m.q.Message))

	if m.done {
		b.WriteString(" " + answerStyle.Render(m.answerText()) + "\n")
		return b.String()
	}

	switch m.q.Kind {
	case KindSelect:
		b.WriteString("\n")
		for i, opt := range m.q.Options {
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("❯ "+opt.Label) + "\n")
			} else {
				b.WriteString("  " + opt.Label + "\n")
			}
		}
		b.WriteString(hintStyle.Render("↑/↓ to move, enter to select") + "\n")
	case KindConfirm:
		b.WriteString(" " + hintStyle.Render(m.q.confirmHint()) + "\n")
	default:
		b.WriteString("\n" + m.input.View() + "\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render("✗ "+m.err.Error()) + "\n")
		}
	}
	return b.String()
}

func (m questionModel) answerText() string {
	switch m.q.Kind {
	case KindConfirm:
		if m.answer.Yes {
			return "Yes"
		}
		return "No"
	case KindSelect:
		for _, opt := range m.q.Options {
			if opt.Value == m.answer.Value {
				return opt.Label
			}
		}
	}
	return m.answer.Value
}
