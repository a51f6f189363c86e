// Package prompt asks the user typed questions.
//
// Questions are plain data; an Asker turns them into answers. The terminal
// implementation draws each question with Bubble Tea, the line
// implementation reads from any io.Reader, and Scripted replays canned
// answers in tests. Invalid input never escapes an Asker: it shows the
// validation message and asks again.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInterrupted is returned when the user aborts a prompt (Ctrl+C, EOF)
// or the context is cancelled while waiting for an answer.
var ErrInterrupted = errors.New("prompt interrupted")

// interrupted wraps a context error so callers only check ErrInterrupted.
func interrupted(err error) error {
	return fmt.Errorf("%w: %w", ErrInterrupted, err)
}

// Kind selects how a question is asked.
type Kind int

const (
	KindSelect Kind = iota
	KindInput
	KindConfirm
)

// Option is one entry of a select question.
type Option struct {
	Label string
	Value string
}

// Question describes a single prompt.
type Question struct {
	Name    string
	Kind    Kind
	Message string

	// Options is used by KindSelect.
	Options []Option

	// Default is used by KindInput when the answer is empty.
	Default string

	// DefaultYes is used by KindConfirm when the answer is empty.
	DefaultYes bool

	// Validate checks KindInput answers before they are accepted.
	Validate func(string) error
}

// Answer is the typed result of a question.
type Answer struct {
	Name  string
	Value string // selected option value or input text
	Yes   bool   // confirm result
}

// Asker asks one question at a time.
type Asker interface {
	Ask(ctx context.Context, q Question) (Answer, error)
}

// resolve turns raw text into an answer for q.
func (q Question) resolve(raw string) (Answer, error) {
	raw = strings.TrimSpace(raw)
	switch q.Kind {
	case KindSelect:
		return q.resolveSelect(raw)
	case KindConfirm:
		return q.resolveConfirm(raw)
	default:
		return q.resolveInput(raw)
	}
}

func (q Question) resolveSelect(raw string) (Answer, error) {
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(q.Options) {
		return Answer{Name: q.Name, Value: q.Options[n-1].Value}, nil
	}
	for _, opt := range q.Options {
		if strings.EqualFold(raw, opt.Value) || strings.EqualFold(raw, opt.Label) {
			return Answer{Name: q.Name, Value: opt.Value}, nil
		}
	}
	return Answer{}, invalidAnswer(fmt.Sprintf("Please pick one of the %d options", len(q.Options)))
}

func (q Question) resolveConfirm(raw string) (Answer, error) {
	switch strings.ToLower(raw) {
	case "":
		return Answer{Name: q.Name, Yes: q.DefaultYes}, nil
	case "y", "yes":
		return Answer{Name: q.Name, Yes: true}, nil
	case "n", "no":
		return Answer{Name: q.Name, Yes: false}, nil
	}
	return Answer{}, invalidAnswer("Please answer y or n")
}

func (q Question) resolveInput(raw string) (Answer, error) {
	if raw == "" {
		raw = q.Default
	}
	if q.Validate != nil {
		if err := q.Validate(raw); err != nil {
			return Answer{}, err
		}
	}
	return Answer{Name: q.Name, Value: raw}, nil
}

// invalidAnswer is a message shown to the user before asking again.
type invalidAnswer string

func (e invalidAnswer) Error() string { return string(e) }

// confirmHint renders (Y/n) or (y/N).
func (q Question) confirmHint() string {
	if q.DefaultYes {
		return "(Y/n)"
	}
	return "(y/N)"
}
