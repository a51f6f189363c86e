package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frequencyQuestion = Question{
	Name:    "frequency",
	Kind:    KindSelect,
	Message: "How often?",
	Options: []Option{
		{Label: "Weekly", Value: "Weekly"},
		{Label: "Monthly", Value: "Monthly"},
		{Label: "Custom cron expression", Value: "Custom"},
	},
}

func evenOnly(s string) error {
	if len(s)%2 != 0 {
		return errors.New("Must have even length")
	}
	return nil
}

func TestQuestionResolve(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		raw     string
		want    Answer
		wantErr bool
	}{
		{"select by value", frequencyQuestion, "monthly", Answer{Name: "frequency", Value: "Monthly"}, false},
		{"select by label", frequencyQuestion, "Custom cron expression", Answer{Name: "frequency", Value: "Custom"}, false},
		{"select by index", frequencyQuestion, "1", Answer{Name: "frequency", Value: "Weekly"}, false},
		{"select out of range", frequencyQuestion, "4", Answer{}, true},
		{"confirm default yes", Question{Name: "ok", Kind: KindConfirm, DefaultYes: true}, "", Answer{Name: "ok", Yes: true}, false},
		{"confirm default no", Question{Name: "ok", Kind: KindConfirm}, " ", Answer{Name: "ok", Yes: false}, false},
		{"confirm yes", Question{Name: "ok", Kind: KindConfirm}, "YES", Answer{Name: "ok", Yes: true}, false},
		{"confirm garbage", Question{Name: "ok", Kind: KindConfirm}, "maybe", Answer{}, true},
		{"input default", Question{Name: "hour", Kind: KindInput, Default: "0"}, "", Answer{Name: "hour", Value: "0"}, false},
		{"input validated", Question{Name: "v", Kind: KindInput, Validate: evenOnly}, "abc", Answer{}, true},
		{"input accepted", Question{Name: "v", Kind: KindInput, Validate: evenOnly}, " ab ", Answer{Name: "v", Value: "ab"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.q.resolve(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScripted(t *testing.T) {
	ctx := context.Background()
	s := NewScripted("abc", "abcd", "y")

	answer, err := s.Ask(ctx, Question{Name: "v", Kind: KindInput, Validate: evenOnly})
	require.NoError(t, err)
	assert.Equal(t, "abcd", answer.Value)
	require.Len(t, s.Rejected, 1)
	assert.EqualError(t, s.Rejected[0], "Must have even length")

	answer, err = s.Ask(ctx, Question{Name: "ok", Kind: KindConfirm})
	require.NoError(t, err)
	assert.True(t, answer.Yes)

	_, err = s.Ask(ctx, frequencyQuestion)
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.Equal(t, []string{"v", "ok", "frequency"}, s.Names())
}

func TestLine(t *testing.T) {
	in := strings.NewReader("7\n2\n\n13\n")
	out := &bytes.Buffer{}
	l := NewLine(in, out)
	ctx := context.Background()

	answer, err := l.Ask(ctx, frequencyQuestion)
	require.NoError(t, err)
	assert.Equal(t, "Monthly", answer.Value)
	assert.Contains(t, out.String(), "✗ Please pick one of the 3 options")
	assert.Contains(t, out.String(), "  3) Custom cron expression")

	answer, err = l.Ask(ctx, Question{Name: "ok", Kind: KindConfirm, DefaultYes: true, Message: "Sure?"})
	require.NoError(t, err)
	assert.True(t, answer.Yes)
	assert.Contains(t, out.String(), "? Sure? (Y/n)")

	answer, err = l.Ask(ctx, Question{Name: "n", Kind: KindInput, Message: "Number:"})
	require.NoError(t, err)
	assert.Equal(t, "13", answer.Value)

	_, err = l.Ask(ctx, Question{Name: "more", Kind: KindInput})
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestLineCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLine(strings.NewReader("y\n"), &bytes.Buffer{}).Ask(ctx, Question{Kind: KindConfirm})
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLineCancelWhileWaiting(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := NewLine(r, io.Discard).Ask(ctx, Question{Name: "hour", Kind: KindInput})
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrInterrupted)
	case <-time.After(2 * time.Second):
		t.Fatal("Ask did not return after cancel")
	}
}

func TestScriptedCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScripted("y").Ask(ctx, Question{Kind: KindConfirm})
	assert.ErrorIs(t, err, ErrInterrupted)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuestionModelSelect(t *testing.T) {
	var m tea.Model = newQuestionModel(frequencyQuestion)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // clamps at the last option
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Contains(t, m.View(), "❯ Monthly")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	qm := m.(questionModel)
	assert.True(t, qm.done)
	assert.Equal(t, "Monthly", qm.answer.Value)
	assert.Contains(t, qm.View(), "Monthly")
}

func TestQuestionModelConfirm(t *testing.T) {
	var m tea.Model = newQuestionModel(Question{Name: "ok", Kind: KindConfirm, Message: "Overwrite?"})
	assert.Contains(t, m.View(), "(y/N)")

	m, _ = m.Update(runes("x"))
	assert.False(t, m.(questionModel).done)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	qm := m.(questionModel)
	assert.True(t, qm.done)
	assert.False(t, qm.answer.Yes)

	m, _ = newQuestionModel(Question{Name: "ok", Kind: KindConfirm}).Update(runes("y"))
	assert.True(t, m.(questionModel).answer.Yes)
}

func TestQuestionModelInput(t *testing.T) {
	q := Question{Name: "v", Kind: KindInput, Message: "Value:", Validate: evenOnly}
	var m tea.Model = newQuestionModel(q)

	m, _ = m.Update(runes("abc"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	qm := m.(questionModel)
	assert.False(t, qm.done)
	assert.Contains(t, qm.View(), "Must have even length")

	m, _ = m.Update(runes("d"))
	assert.NoError(t, m.(questionModel).err)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	qm = m.(questionModel)
	assert.True(t, qm.done)
	assert.Equal(t, "abcd", qm.answer.Value)
}

func TestQuestionModelInterrupt(t *testing.T) {
	for _, kind := range []Kind{KindSelect, KindInput, KindConfirm} {
		m, cmd := newQuestionModel(Question{Kind: kind, Options: frequencyQuestion.Options}).
			Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		assert.True(t, m.(questionModel).interrupted)
	}
}
