package history_test

import (
	"testing"
	"time"

	"github.com/quizbank/backend/internal/domain/history"
	"github.com/quizbank/backend/internal/domain/question"
)

func q(qid, answer string) question.Question {
	return question.Question{QID: qid, Choices: []string{"a", "b", answer}, Answer: answer}
}

func TestStatusOf(t *testing.T) {
	h := history.Default()
	h.UserAnswers["right"] = "yes"
	h.UserAnswers["wrong"] = "no"

	cases := []struct {
		name string
		q    question.Question
		want history.Status
	}{
		{"unanswered", q("fresh", "yes"), history.StatusUnanswered},
		{"correct", q("right", "yes"), history.StatusCorrect},
		{"incorrect", q("wrong", "yes"), history.StatusIncorrect},
		{"case sensitive", question.Question{QID: "right", Answer: "Yes"}, history.StatusIncorrect},
		{"whitespace sensitive", question.Question{QID: "right", Answer: "yes "}, history.StatusIncorrect},
	}

	for _, tc := range cases {
		if got := h.StatusOf(tc.q); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestStatusOf_AnswerNotInChoices(t *testing.T) {
	// A recorded answer can never equal an answer that is not a choice,
	// so such questions classify Incorrect once attempted.
	h := history.Default()
	broken := question.Question{QID: "q1", Choices: []string{"a", "b"}, Answer: "c"}
	h.UserAnswers["q1"] = "a"

	if got := h.StatusOf(broken); got != history.StatusIncorrect {
		t.Errorf("got %q, want Incorrect", got)
	}
}

func TestRecordAnswer(t *testing.T) {
	h := history.Default()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	target := q("q1", "yes")

	if correct := h.RecordAnswer(target, "no", now); correct {
		t.Error("expected incorrect submission")
	}
	if correct := h.RecordAnswer(target, "yes", now.Add(time.Minute)); !correct {
		t.Error("expected correct submission")
	}

	// Last submission wins in user_answers; both survive in attempts.
	if h.UserAnswers["q1"] != "yes" {
		t.Errorf("expected last answer to win, got %q", h.UserAnswers["q1"])
	}
	if len(h.Attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(h.Attempts))
	}
	if h.Attempts[0].Correct || !h.Attempts[1].Correct {
		t.Error("attempt log out of order")
	}
	if !h.Attempts[0].Timestamp.Equal(now) {
		t.Errorf("unexpected timestamp %v", h.Attempts[0].Timestamp)
	}
}

func TestToggleFlag_Idempotent(t *testing.T) {
	h := history.Default()

	if !h.ToggleFlag("q1") {
		t.Error("first toggle should flag")
	}
	if !h.IsFlagged("q1") {
		t.Error("expected q1 flagged")
	}
	if h.ToggleFlag("q1") {
		t.Error("second toggle should unflag")
	}
	if h.IsFlagged("q1") {
		t.Error("expected q1 back to unflagged")
	}
	if len(h.Flagged) != 0 {
		t.Errorf("expected empty flagged set, got %v", h.Flagged)
	}
}

func TestNormalize(t *testing.T) {
	h := &history.History{}
	if !h.Normalize() {
		t.Error("expected changes on empty struct")
	}
	if h.UserAnswers == nil || h.Attempts == nil || h.Flagged == nil {
		t.Error("expected all fields initialized")
	}
	if h.Normalize() {
		t.Error("second pass should be a no-op")
	}
}

func TestSummarize(t *testing.T) {
	bank := question.New()
	correct := bank.Add(q("", "yes"))
	wrong := bank.Add(q("", "yes"))
	bank.Add(q("", "yes"))

	h := history.Default()
	h.UserAnswers[correct.QID] = "yes"
	h.UserAnswers[wrong.QID] = "no"
	h.ToggleFlag(wrong.QID)

	s := h.Summarize(bank)
	if s.Total != 3 || s.Answered != 2 || s.Correct != 1 || s.Incorrect != 1 || s.Unanswered != 1 {
		t.Errorf("unexpected summary: %+v", s)
	}
	if s.Flagged != 1 {
		t.Errorf("expected 1 flagged, got %d", s.Flagged)
	}
	if s.Accuracy != 0.5 {
		t.Errorf("expected accuracy 0.5, got %v", s.Accuracy)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	bank := question.New()
	m1 := bank.Add(question.Question{Category: "Math", Choices: []string{"x"}, Answer: "x"})
	bank.Add(question.Question{Category: "Math", Choices: []string{"x"}, Answer: "x"})
	h1 := bank.Add(question.Question{Category: "History", Choices: []string{"x"}, Answer: "x"})

	h := history.Default()
	h.UserAnswers[m1.QID] = "x"
	h.UserAnswers[h1.QID] = "y"

	stats := h.CategoryBreakdown(bank)
	if len(stats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(stats))
	}
	if stats[0].Category != "History" || stats[1].Category != "Math" {
		t.Errorf("expected sorted categories, got %v", stats)
	}
	if stats[0].Answered != 1 || stats[0].Correct != 0 {
		t.Errorf("unexpected History stats: %+v", stats[0])
	}
	if stats[1].Total != 2 || stats[1].Answered != 1 || stats[1].Correct != 1 || stats[1].Accuracy != 1 {
		t.Errorf("unexpected Math stats: %+v", stats[1])
	}
}
