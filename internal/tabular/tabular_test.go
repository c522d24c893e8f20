package tabular_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/quizbank/backend/internal/domain/history"
	"github.com/quizbank/backend/internal/domain/question"
	"github.com/quizbank/backend/internal/tabular"
)

func TestReadQuestions_SkipsIncompleteRows(t *testing.T) {
	src := strings.Join([]string{
		"question,choice1,choice2,answer,category,topic,explanation",
		"What is 2+2?,3,4,4,Math,Arithmetic,basic",
		"Missing answer,a,b,,Math,,",
		"Capital of France?,Paris,Rome,Paris,Geo,Europe,",
	}, "\n")

	questions, skipped, err := tabular.ReadQuestions(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped row, got %d", skipped)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	q := questions[0]
	if q.Text != "What is 2+2?" || q.Answer != "4" || q.Category != "Math" || q.Topic != "Arithmetic" {
		t.Errorf("unexpected first question: %+v", q)
	}
	if len(q.Choices) != 2 || q.Choices[0] != "3" || q.Choices[1] != "4" {
		t.Errorf("unexpected choices: %v", q.Choices)
	}
}

func TestReadQuestions_ChoiceColumnDetection(t *testing.T) {
	// Any header starting with "choice" counts, case-insensitively;
	// empty cells are dropped.
	src := strings.Join([]string{
		"question,Choice1,CHOICE_B,choices_extra,answer",
		"Pick one,alpha,,gamma,alpha",
	}, "\n")

	questions, skipped, err := tabular.ReadQuestions(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if skipped != 0 || len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d (skipped %d)", len(questions), skipped)
	}
	choices := questions[0].Choices
	if len(choices) != 2 || choices[0] != "alpha" || choices[1] != "gamma" {
		t.Errorf("unexpected choices: %v", choices)
	}
}

func TestReadQuestions_MalformedSource(t *testing.T) {
	src := "question,answer\n\"unterminated,4"
	if _, _, err := tabular.ReadQuestions(strings.NewReader(src)); err == nil {
		t.Error("expected error for malformed CSV")
	}
}

func TestReadQuestions_Empty(t *testing.T) {
	questions, skipped, err := tabular.ReadQuestions(strings.NewReader(""))
	if err != nil || skipped != 0 || len(questions) != 0 {
		t.Errorf("empty source: got %v, %d, %v", questions, skipped, err)
	}
}

func TestWriteBank_PadsChoiceColumns(t *testing.T) {
	bank := question.New()
	bank.Add(question.Question{Category: "Math", Topic: "Arithmetic", Text: "2+2?", Choices: []string{"3", "4", "5"}, Answer: "4"})
	bank.Add(question.Question{Text: "True?", Choices: []string{"yes"}, Answer: "yes", Explanation: "obviously"})

	var buf bytes.Buffer
	if err := tabular.WriteBank(&buf, bank); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"id", "category", "topic", "question", "answer", "explanation", "choice1", "choice2", "choice3"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header column %d: got %q, want %q", i, rows[0][i], col)
		}
	}
	if rows[1][0] != "1" || rows[1][6] != "3" || rows[1][8] != "5" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][7] != "" || rows[2][8] != "" {
		t.Errorf("short questions must leave trailing cells empty: %v", rows[2])
	}
}

func TestWriteAttempts_ResolvesIDNum(t *testing.T) {
	bank := question.New()
	q := bank.Add(question.Question{Category: "Math", Topic: "Arithmetic", Text: "2+2?", Choices: []string{"4"}, Answer: "4"})

	h := history.Default()
	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	h.RecordAnswer(q, "4", ts)
	h.Attempts = append(h.Attempts, history.Attempt{QID: "deleted", Correct: false, Timestamp: ts})

	var buf bytes.Buffer
	if err := tabular.WriteAttempts(&buf, bank, h); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	if rows[1][0] != "1" || rows[1][1] != "Math" || rows[1][3] != "true" || rows[1][5] != q.QID {
		t.Errorf("unexpected attempt row: %v", rows[1])
	}
	if rows[1][4] != "2026-03-01T09:00:00Z" {
		t.Errorf("unexpected timestamp: %q", rows[1][4])
	}
	if rows[2][0] != "N/A" || rows[2][5] != "deleted" {
		t.Errorf("deleted questions must export as N/A: %v", rows[2])
	}
}
