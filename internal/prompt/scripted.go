package prompt

import "context"

// Scripted replays canned answers, one per Ask call, using the same
// resolution rules as the interactive askers. Answers rejected by
// validation are recorded and the next answer is tried, so tests can
// exercise re-prompting. Running out of answers behaves like Ctrl+C.
type Scripted struct {
	Answers  []string
	Asked    []Question
	Rejected []error

	pos int
}

// NewScripted creates a scripted asker.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{Answers: answers}
}

func (s *Scripted) Ask(ctx context.Context, q Question) (Answer, error) {
	s.Asked = append(s.Asked, q)
	for {
		if err := ctx.Err(); err != nil {
			return Answer{}, interrupted(err)
		}
		if s.pos >= len(s.Answers) {
			return Answer{}, ErrInterrupted
		}
		raw := s.Answers[s.pos]
		s.pos++

		answer, err := q.resolve(raw)
		if err == nil {
			return answer, nil
		}
		s.Rejected = append(s.Rejected, err)
	}
}

// Names returns the names of the questions asked so far, in order.
func (s *Scripted) Names() []string {
	names := make([]string, 0, len(s.Asked))
	for _, q := range s.Asked {
		names = append(names, q.Name)
	}
	return names
}
