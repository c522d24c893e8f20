package quiz

import (
	"github.com/quizbank/backend/internal/domain/history"
	"github.com/quizbank/backend/internal/domain/question"
)

// FilterAll is the sentinel meaning "no constraint" for the standard
// pool filters.
const FilterAll = "All"

// BuildStandardPool returns the questions passing all three filters, in
// bank order. Each filter is either FilterAll or an exact match against
// category, topic, or the status classifier.
func BuildStandardPool(b *question.Bank, h *history.History, category, topic, status string) []question.Question {
	var pool []question.Question
	for _, q := range b.Questions {
		if category != FilterAll && q.Category != category {
			continue
		}
		if topic != FilterAll && q.Topic != topic {
			continue
		}
		if status != FilterAll && string(h.StatusOf(q)) != status {
			continue
		}
		pool = append(pool, q)
	}
	return pool
}

// BuildAdaptivePool orders the whole bank by four static priority
// levels: incorrect first, then flagged, then unanswered, then the
// correctly answered rest. A question appears exactly once, in the
// first bucket that claims it; within a bucket, bank order holds.
func BuildAdaptivePool(b *question.Bank, h *history.History) []question.Question {
	var incorrect, flagged, unanswered, rest []question.Question

	for _, q := range b.Questions {
		switch h.StatusOf(q) {
		case history.StatusIncorrect:
			incorrect = append(incorrect, q)
		case history.StatusUnanswered:
			unanswered = append(unanswered, q)
		default:
			rest = append(rest, q)
		}
		// Flagged questions are collected independently of their
		// classification bucket.
		if h.IsFlagged(q.QID) {
			flagged = append(flagged, q)
		}
	}

	seen := make(map[string]struct{}, len(b.Questions))
	pool := make([]question.Question, 0, len(b.Questions))
	emit := func(bucket []question.Question) {
		for _, q := range bucket {
			if _, ok := seen[q.QID]; ok {
				continue
			}
			seen[q.QID] = struct{}{}
			pool = append(pool, q)
		}
	}

	emit(incorrect)
	emit(flagged)
	emit(unanswered)
	emit(rest)
	return pool
}
