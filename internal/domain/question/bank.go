package question

import (
	"fmt"
	"sort"

	"github.com/quizbank/backend/internal/id"
)

// Bank is the full ordered collection of stored questions. Order is
// insertion order and is the stable baseline every pool builder
// preserves.
type Bank struct {
	Questions []Question
}

// New returns an empty bank.
func New() *Bank {
	return &Bank{Questions: []Question{}}
}

// EnsureIDs assigns identity to records that are missing it: a fresh
// qid where absent, and id_num = max(existing)+1 incrementing in load
// order. Nil choice and attachment slices are defaulted to empty.
// Returns true if anything changed so the caller knows to persist.
func (b *Bank) EnsureIDs() bool {
	changed := false
	next := b.maxIDNum() + 1
	for i := range b.Questions {
		q := &b.Questions[i]
		if q.QID == "" {
			q.QID = id.NewQID()
			changed = true
		}
		if q.IDNum == 0 {
			q.IDNum = next
			next++
			changed = true
		}
		if q.Choices == nil {
			q.Choices = []string{}
			changed = true
		}
		if q.Attachments == nil {
			q.Attachments = []Attachment{}
			changed = true
		}
	}
	return changed
}

func (b *Bank) maxIDNum() int {
	max := 0
	for _, q := range b.Questions {
		if q.IDNum > max {
			max = q.IDNum
		}
	}
	return max
}

// Get returns the question with the given qid.
func (b *Bank) Get(qid string) (Question, bool) {
	for _, q := range b.Questions {
		if q.QID == qid {
			return q, true
		}
	}
	return Question{}, false
}

// Add appends a new question, assigning a qid (unless the record
// already carries one) and the next display ordinal. id_num values are
// never reused, even after removals.
func (b *Bank) Add(q Question) Question {
	if q.QID == "" {
		q.QID = id.NewQID()
	}
	q.IDNum = b.maxIDNum() + 1
	if q.Choices == nil {
		q.Choices = []string{}
	}
	if q.Attachments == nil {
		q.Attachments = []Attachment{}
	}
	b.Questions = append(b.Questions, q)
	return q
}

// Update replaces the stored question with the same qid in place,
// keeping its position, id_num, and attachment list. The updated
// record is returned so callers see the preserved identity fields.
func (b *Bank) Update(q Question) (Question, bool) {
	for i := range b.Questions {
		if b.Questions[i].QID == q.QID {
			q.IDNum = b.Questions[i].IDNum
			q.Attachments = b.Questions[i].Attachments
			if q.Choices == nil {
				q.Choices = []string{}
			}
			b.Questions[i] = q
			return q, true
		}
	}
	return Question{}, false
}

// Attach appends an attachment descriptor to the stored question.
func (b *Bank) Attach(qid string, att Attachment) bool {
	for i := range b.Questions {
		if b.Questions[i].QID == qid {
			b.Questions[i].Attachments = append(b.Questions[i].Attachments, att)
			return true
		}
	}
	return false
}

// Remove deletes the question with the given qid. Its id_num is retired
// with it.
func (b *Bank) Remove(qid string) bool {
	for i := range b.Questions {
		if b.Questions[i].QID == qid {
			b.Questions = append(b.Questions[:i], b.Questions[i+1:]...)
			return true
		}
	}
	return false
}

// Categories returns the sorted distinct category values, including the
// empty string when uncategorized questions exist.
func (b *Bank) Categories() []string {
	return b.distinct(func(q Question) string { return q.Category })
}

// Topics returns the sorted distinct topic values.
func (b *Bank) Topics() []string {
	return b.distinct(func(q Question) string { return q.Topic })
}

func (b *Bank) distinct(field func(Question) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, q := range b.Questions {
		v := field(q)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Warning flags a data problem that grading tolerates but the user
// should know about.
type Warning struct {
	QID     string `json:"qid"`
	IDNum   int    `json:"id_num"`
	Message string `json:"message"`
}

// Lint reports questions whose answer can never grade correct and
// questions with no choices at all. Neither condition blocks saving or
// quizzing; an unanswerable question simply classifies Incorrect
// forever once attempted.
func (b *Bank) Lint() []Warning {
	var warnings []Warning
	for _, q := range b.Questions {
		if len(q.Choices) == 0 {
			warnings = append(warnings, Warning{
				QID:     q.QID,
				IDNum:   q.IDNum,
				Message: "question has no choices",
			})
			continue
		}
		if !q.HasChoice(q.Answer) {
			warnings = append(warnings, Warning{
				QID:     q.QID,
				IDNum:   q.IDNum,
				Message: fmt.Sprintf("answer %q is not one of the choices", q.Answer),
			})
		}
	}
	return warnings
}
