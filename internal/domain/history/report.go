package history

import (
	"sort"

	"github.com/quizbank/backend/internal/domain/question"
)

// Summary aggregates overall progress across the bank.
type Summary struct {
	Total      int     `json:"total"`
	Answered   int     `json:"answered"`
	Correct    int     `json:"correct"`
	Incorrect  int     `json:"incorrect"`
	Unanswered int     `json:"unanswered"`
	Flagged    int     `json:"flagged"`
	Accuracy   float64 `json:"accuracy"`
}

// CategoryStat aggregates progress for one category.
type CategoryStat struct {
	Category string  `json:"category"`
	Total    int     `json:"total"`
	Answered int     `json:"answered"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// Summarize computes the overall progress report for the bank.
// Accuracy is correct/answered; zero when nothing has been answered.
func (h *History) Summarize(b *question.Bank) Summary {
	s := Summary{Total: len(b.Questions)}
	for _, q := range b.Questions {
		switch h.StatusOf(q) {
		case StatusCorrect:
			s.Correct++
			s.Answered++
		case StatusIncorrect:
			s.Incorrect++
			s.Answered++
		default:
			s.Unanswered++
		}
		if h.IsFlagged(q.QID) {
			s.Flagged++
		}
	}
	if s.Answered > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Answered)
	}
	return s
}

// CategoryBreakdown computes per-category progress, sorted by category
// name. Uncategorized questions aggregate under the empty string.
func (h *History) CategoryBreakdown(b *question.Bank) []CategoryStat {
	byCat := make(map[string]*CategoryStat)
	for _, q := range b.Questions {
		stat, ok := byCat[q.Category]
		if !ok {
			stat = &CategoryStat{Category: q.Category}
			byCat[q.Category] = stat
		}
		stat.Total++
		switch h.StatusOf(q) {
		case StatusCorrect:
			stat.Answered++
			stat.Correct++
		case StatusIncorrect:
			stat.Answered++
		}
	}

	out := make([]CategoryStat, 0, len(byCat))
	for _, stat := range byCat {
		if stat.Answered > 0 {
			stat.Accuracy = float64(stat.Correct) / float64(stat.Answered)
		}
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
