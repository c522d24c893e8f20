package quiz

import (
	"errors"
	"math/rand"
	"time"

	"github.com/quizbank/backend/internal/domain/question"
)

var (
	// ErrEmptyPool is returned by Start when no questions match.
	ErrEmptyPool = errors.New("no matching questions")
	// ErrNoActiveQuiz is returned when an operation needs a running session.
	ErrNoActiveQuiz = errors.New("no active quiz")
	// ErrQuizComplete is returned for submissions past the last question.
	ErrQuizComplete = errors.New("quiz is complete")
	// ErrAlreadyAnswered guards against double submission of one question.
	ErrAlreadyAnswered = errors.New("current question already answered in this session")
	// ErrNotSubmitted guards Advance before the current question is graded.
	ErrNotSubmitted = errors.New("current question has not been answered yet")
	// ErrNoSelection rejects empty submissions.
	ErrNoSelection = errors.New("a selection is required")
	// ErrInvalidChoice rejects selections outside the presented choices.
	ErrInvalidChoice = errors.New("selection is not one of the question's choices")
)

// Session is the in-progress quiz state machine. It holds a fixed
// snapshot pool for its lifetime; the index only moves forward. All
// randomness flows through the injected source so tests can pin it.
//
// Not safe for concurrent use; the owning service serializes access.
type Session struct {
	rng *rand.Rand

	active      bool
	pool        []question.Question
	index       int
	score       int
	showExpl    bool
	choiceOrder map[string][]string
	answers     map[string]string
}

// NewSession creates an idle session. A nil rng gets a time-seeded one.
func NewSession(rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{rng: rng}
}

// Start moves the session from idle to in-progress over a snapshot of
// the candidate pool. When more candidates exist than requested, n
// distinct questions are drawn without replacement and presented in
// random order (rng.Perm does both in one step). Otherwise the whole
// candidate pool is kept in its built order, so an adaptive pool's
// priority ordering survives.
func (s *Session) Start(candidates []question.Question, n int) error {
	if len(candidates) == 0 {
		return ErrEmptyPool
	}
	if n <= 0 || n > len(candidates) {
		n = len(candidates)
	}

	var pool []question.Question
	if n < len(candidates) {
		pool = make([]question.Question, 0, n)
		for _, i := range s.rng.Perm(len(candidates))[:n] {
			pool = append(pool, candidates[i])
		}
	} else {
		pool = append([]question.Question(nil), candidates...)
	}

	s.active = true
	s.pool = pool
	s.index = 0
	s.score = 0
	s.showExpl = false
	s.choiceOrder = make(map[string][]string)
	s.answers = make(map[string]string)
	return nil
}

// Active reports whether a quiz is in progress or complete-but-not-ended.
func (s *Session) Active() bool { return s.active }

// Complete reports whether the index has run past the pool.
func (s *Session) Complete() bool { return s.active && s.index >= len(s.pool) }

// Index returns the 0-based current position.
func (s *Session) Index() int { return s.index }

// Score returns the count of correct submissions so far.
func (s *Session) Score() int { return s.score }

// Total returns the pool size.
func (s *Session) Total() int { return len(s.pool) }

// ShowExplanation reports whether the current question has been
// submitted and its feedback should be displayed.
func (s *Session) ShowExplanation() bool { return s.showExpl }

// Pool returns the session's snapshot pool.
func (s *Session) Pool() []question.Question { return s.pool }

// Current returns the question at the current position, or false when
// the session is idle or complete.
func (s *Session) Current() (question.Question, bool) {
	if !s.active || s.index >= len(s.pool) {
		return question.Question{}, false
	}
	return s.pool[s.index], true
}

// Choices returns the session-local shuffled choice order for the
// current question. The permutation is computed on first visit and
// stays stable for the rest of the session.
func (s *Session) Choices() []string {
	q, ok := s.Current()
	if !ok {
		return nil
	}
	if order, ok := s.choiceOrder[q.QID]; ok {
		return order
	}
	order := append([]string(nil), q.Choices...)
	s.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	s.choiceOrder[q.QID] = order
	return order
}

// SessionAnswer returns the choice submitted for the qid within this
// session, distinct from the global answer history.
func (s *Session) SessionAnswer(qid string) (string, bool) {
	sel, ok := s.answers[qid]
	return sel, ok
}

// Submit grades the selection against the current question. On success
// the session records the selection, bumps the score when correct, and
// turns on the explanation display. The index does not move; callers
// persist the submission to the answer history and then Advance.
func (s *Session) Submit(selection string) (question.Question, bool, error) {
	if !s.active {
		return question.Question{}, false, ErrNoActiveQuiz
	}
	q, ok := s.Current()
	if !ok {
		return question.Question{}, false, ErrQuizComplete
	}
	if _, answered := s.answers[q.QID]; answered {
		return question.Question{}, false, ErrAlreadyAnswered
	}
	if selection == "" {
		return question.Question{}, false, ErrNoSelection
	}
	valid := false
	for _, c := range s.Choices() {
		if c == selection {
			valid = true
			break
		}
	}
	if !valid {
		return question.Question{}, false, ErrInvalidChoice
	}

	s.answers[q.QID] = selection
	correct := selection == q.Answer
	if correct {
		s.score++
	}
	s.showExpl = true
	return q, correct, nil
}

// Advance moves to the next question. Allowed only after the current
// question has been submitted.
func (s *Session) Advance() error {
	if !s.active {
		return ErrNoActiveQuiz
	}
	if s.Complete() {
		return ErrQuizComplete
	}
	if !s.showExpl {
		return ErrNotSubmitted
	}
	s.index++
	s.showExpl = false
	return nil
}

// End returns the session to idle. Pool, index, and score become stale
// and are overwritten by the next Start.
func (s *Session) End() error {
	if !s.active {
		return ErrNoActiveQuiz
	}
	s.active = false
	return nil
}
