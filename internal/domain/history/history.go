package history

import (
	"time"

	"github.com/quizbank/backend/internal/domain/question"
)

// Status classifies a question against the recorded answer history.
type Status string

const (
	StatusUnanswered Status = "Unanswered"
	StatusCorrect    Status = "Correct"
	StatusIncorrect  Status = "Incorrect"
)

// Attempt is one immutable log record of a single answer submission.
type Attempt struct {
	QID       string    `json:"qid"`
	Correct   bool      `json:"correct"`
	Timestamp time.Time `json:"ts"`
}

// History is the single-profile answer record: the last submitted
// choice per question, the append-only attempt log, and the flagged
// set. It is loaded once at startup and flushed after every mutation.
type History struct {
	UserAnswers map[string]string `json:"user_answers"`
	Attempts    []Attempt         `json:"attempts"`
	Flagged     []string          `json:"flagged"`
}

// Default returns the documented empty shape, used whenever the stats
// file is missing or unreadable.
func Default() *History {
	return &History{
		UserAnswers: map[string]string{},
		Attempts:    []Attempt{},
		Flagged:     []string{},
	}
}

// Normalize fills in nil fields after a partial load. Returns true if
// anything changed.
func (h *History) Normalize() bool {
	changed := false
	if h.UserAnswers == nil {
		h.UserAnswers = map[string]string{}
		changed = true
	}
	if h.Attempts == nil {
		h.Attempts = []Attempt{}
		changed = true
	}
	if h.Flagged == nil {
		h.Flagged = []string{}
		changed = true
	}
	return changed
}

// StatusOf classifies a question: Unanswered when no answer is
// recorded, otherwise Correct on exact string equality with the
// question's answer, Incorrect otherwise. Pure; no side effects.
func (h *History) StatusOf(q question.Question) Status {
	recorded, ok := h.UserAnswers[q.QID]
	if !ok {
		return StatusUnanswered
	}
	if recorded == q.Answer {
		return StatusCorrect
	}
	return StatusIncorrect
}

// RecordAnswer overwrites the last-submitted choice for the question
// and appends an attempt record. Returns whether the submission was
// correct. Prior submissions survive only in the attempt log.
func (h *History) RecordAnswer(q question.Question, selection string, now time.Time) bool {
	correct := selection == q.Answer
	h.UserAnswers[q.QID] = selection
	h.Attempts = append(h.Attempts, Attempt{
		QID:       q.QID,
		Correct:   correct,
		Timestamp: now,
	})
	return correct
}

// IsFlagged reports membership in the flagged set.
func (h *History) IsFlagged(qid string) bool {
	for _, f := range h.Flagged {
		if f == qid {
			return true
		}
	}
	return false
}

// ToggleFlag flips flagged membership for the qid and returns the new
// state. Toggling twice restores the original membership.
func (h *History) ToggleFlag(qid string) bool {
	for i, f := range h.Flagged {
		if f == qid {
			h.Flagged = append(h.Flagged[:i], h.Flagged[i+1:]...)
			return false
		}
	}
	h.Flagged = append(h.Flagged, qid)
	return true
}
