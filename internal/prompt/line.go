package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line asks questions over plain text streams. It is used when stdin is not
// a terminal (pipes, CI) where Bubble Tea cannot take over the screen.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a line asker.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

type readResult struct {
	line string
	err  error
}

func (l *Line) Ask(ctx context.Context, q Question) (Answer, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Answer{}, interrupted(err)
		}

		l.render(q)

		raw, err := l.readLine(ctx)
		if err != nil && !errors.Is(err, io.EOF) {
			if errors.Is(err, ErrInterrupted) {
				return Answer{}, err
			}
			return Answer{}, fmt.Errorf("prompt %s: %w", q.Name, err)
		}

		answer, verr := q.resolve(raw)
		if verr == nil {
			return answer, nil
		}
		fmt.Fprintf(l.out, "✗ %s\n", verr)
	}
}

// readLine waits for one line or for ctx. On cancellation the pending read
// is abandoned; the asker must not be used afterwards.
func (l *Line) readLine(ctx context.Context) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := l.in.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", interrupted(ctx.Err())
	case r := <-ch:
		if errors.Is(r.err, io.EOF) && r.line == "" {
			return "", ErrInterrupted
		}
		return r.line, r.err
	}
}

func (l *Line) render(q Question) {
	switch q.Kind {
	case KindSelect:
		fmt.Fprintf(l.out, "? %s\n", q.Message)
		for i, opt := range q.Options {
			fmt.Fprintf(l.out, "  %d) %s\n", i+1, opt.Label)
		}
		fmt.Fprint(l.out, "› ")
	case KindConfirm:
		fmt.Fprintf(l.out, "? %s %s ", q.Message, q.confirmHint())
	default:
		if q.Default != "" {
			fmt.Fprintf(l.out, "? %s (%s) ", q.Message, q.Default)
		} else {
			fmt.Fprintf(l.out, "? %s ", strings.TrimSpace(q.Message))
		}
	}
}
