package service_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/quizbank/backend/internal/domain/question"
	"github.com/quizbank/backend/internal/domain/quiz"
	"github.com/quizbank/backend/internal/service"
	"github.com/quizbank/backend/internal/store"
)

func newService(t *testing.T) *service.QuizService {
	t.Helper()
	dir := t.TempDir()
	st, err := store.NewJSON(dir)
	if err != nil {
		t.Fatal(err)
	}
	att, err := store.NewAttachments(dir)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := service.NewQuizService(st, att, rand.New(rand.NewSource(1)), logger)
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func seed(t *testing.T, svc *service.QuizService, n int) []question.Question {
	t.Helper()
	var added []question.Question
	for i := 0; i < n; i++ {
		q, err := svc.AddQuestion(question.Question{
			Category: "Math",
			Topic:    "Arithmetic",
			Text:     "question",
			Choices:  []string{"right", "wrong"},
			Answer:   "right",
		})
		if err != nil {
			t.Fatal(err)
		}
		added = append(added, q)
	}
	return added
}

func TestStartQuiz_NoMatchingQuestions(t *testing.T) {
	svc := newService(t)
	seed(t, svc, 2)

	err := svc.StartQuiz(service.ModeStandard, "Biology", quiz.FilterAll, quiz.FilterAll, 5)
	if !errors.Is(err, quiz.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
	if svc.QuizState().Active {
		t.Error("session must stay idle after a rejected start")
	}
}

func TestStartQuiz_RejectsWhenActive(t *testing.T) {
	svc := newService(t)
	seed(t, svc, 2)

	if err := svc.StartQuiz(service.ModeStandard, quiz.FilterAll, quiz.FilterAll, quiz.FilterAll, 2); err != nil {
		t.Fatal(err)
	}
	err := svc.StartQuiz(service.ModeAdaptive, "", "", "", 2)
	if !errors.Is(err, service.ErrQuizActive) {
		t.Fatalf("expected ErrQuizActive, got %v", err)
	}
}

func TestStartQuiz_UnknownMode(t *testing.T) {
	svc := newService(t)
	seed(t, svc, 1)

	err := svc.StartQuiz("turbo", quiz.FilterAll, quiz.FilterAll, quiz.FilterAll, 1)
	if !errors.Is(err, service.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestFullQuizFlow_PersistsHistory(t *testing.T) {
	svc := newService(t)
	seed(t, svc, 3)

	if err := svc.StartQuiz(service.ModeStandard, quiz.FilterAll, quiz.FilterAll, quiz.FilterAll, 3); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		state := svc.QuizState()
		if state.Question == nil {
			t.Fatalf("expected a current question at index %d", i)
		}

		result, err := svc.SubmitAnswer("right")
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if !result.Correct || result.Score != i+1 {
			t.Errorf("submit %d: unexpected result %+v", i, result)
		}
		if err := svc.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	state := svc.QuizState()
	if !state.Complete || state.Score != 3 {
		t.Errorf("expected complete with score 3, got %+v", state)
	}
	if err := svc.EndQuiz(); err != nil {
		t.Fatal(err)
	}

	summary := svc.Summary()
	if summary.Answered != 3 || summary.Correct != 3 {
		t.Errorf("history must persist submissions: %+v", summary)
	}
}

func TestSubmitAnswer_InvalidSelectionMutatesNothing(t *testing.T) {
	svc := newService(t)
	seed(t, svc, 1)

	if err := svc.StartQuiz(service.ModeStandard, quiz.FilterAll, quiz.FilterAll, quiz.FilterAll, 1); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.SubmitAnswer("not a choice"); !errors.Is(err, quiz.ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
	if svc.Summary().Answered != 0 {
		t.Error("rejected submission must not reach the history")
	}
}

func TestToggleFlag(t *testing.T) {
	svc := newService(t)
	qs := seed(t, svc, 1)

	flagged, err := svc.ToggleFlag(qs[0].QID)
	if err != nil || !flagged {
		t.Fatalf("expected flag on, got %v %v", flagged, err)
	}
	flagged, err = svc.ToggleFlag(qs[0].QID)
	if err != nil || flagged {
		t.Fatalf("expected flag off, got %v %v", flagged, err)
	}

	if _, err := svc.ToggleFlag("missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdaptiveStart_UsesPriorityOrder(t *testing.T) {
	svc := newService(t)
	qs := seed(t, svc, 3)

	// Miss the second question so it leads the adaptive pool.
	if err := svc.StartQuiz(service.ModeStandard, quiz.FilterAll, quiz.FilterAll, quiz.FilterAll, 3); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		state := svc.QuizState()
		sel := "right"
		if state.Question.QID == qs[1].QID {
			sel = "wrong"
		}
		if _, err := svc.SubmitAnswer(sel); err != nil {
			t.Fatal(err)
		}
		if err := svc.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	if err := svc.EndQuiz(); err != nil {
		t.Fatal(err)
	}

	if err := svc.StartQuiz(service.ModeAdaptive, "", "", "", 0); err != nil {
		t.Fatal(err)
	}
	state := svc.QuizState()
	if state.Total != 3 {
		t.Fatalf("adaptive pool must cover the bank, got %d", state.Total)
	}
	if state.Question.QID != qs[1].QID {
		t.Errorf("expected the incorrect question first, got %s", state.Question.QID)
	}
}

func TestImportExport(t *testing.T) {
	svc := newService(t)

	src := strings.Join([]string{
		"question,choice1,choice2,answer,category",
		"Q one,a,b,a,Math",
		"Q two,a,b,b,Math",
		"missing,a,b,,Math",
	}, "\n")

	result, err := svc.ImportQuestions(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if result.Added != 2 || result.Skipped != 1 {
		t.Fatalf("expected 2 added / 1 skipped, got %+v", result)
	}

	items := svc.ListBank()
	if len(items) != 2 {
		t.Fatalf("expected 2 questions in bank, got %d", len(items))
	}
	if items[0].IDNum != 1 || items[1].IDNum != 2 {
		t.Errorf("imported questions must receive sequential id_nums: %+v", items)
	}

	var buf bytes.Buffer
	if err := svc.ExportBank(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Q one") {
		t.Error("exported bank missing imported question")
	}
}

func TestImport_MalformedSourceLeavesBankUntouched(t *testing.T) {
	svc := newService(t)
	seed(t, svc, 1)

	_, err := svc.ImportQuestions(strings.NewReader("question,answer\n\"broken,x"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if len(svc.ListBank()) != 1 {
		t.Error("malformed import must not mutate the bank")
	}
}

func TestSaveAttachment(t *testing.T) {
	svc := newService(t)
	qs := seed(t, svc, 1)

	att, err := svc.SaveAttachment(qs[0].QID, strings.NewReader("bytes"), "diagram.png", "image/png")
	if err != nil {
		t.Fatal(err)
	}
	if att.Name != "diagram.png" || att.Mime != "image/png" {
		t.Errorf("unexpected descriptor: %+v", att)
	}

	items := svc.ListBank()
	if len(items[0].Attachments) != 1 {
		t.Fatalf("expected descriptor appended to the question, got %+v", items[0].Attachments)
	}

	if _, err := svc.SaveAttachment("missing", strings.NewReader(""), "x", "text/plain"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateQuestion_KeepsAttachments(t *testing.T) {
	svc := newService(t)
	qs := seed(t, svc, 1)

	if _, err := svc.SaveAttachment(qs[0].QID, strings.NewReader("bytes"), "diagram.png", "image/png"); err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdateQuestion(question.Question{
		QID:     qs[0].QID,
		Text:    "rewritten",
		Choices: []string{"yes", "no"},
		Answer:  "yes",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(updated.Attachments); got != 1 {
		t.Fatalf("attachments wiped by update: got %d, want 1", got)
	}
	if updated.IDNum != qs[0].IDNum {
		t.Errorf("updated record must carry the stored id_num, got %d want %d", updated.IDNum, qs[0].IDNum)
	}

	items := svc.ListBank()
	if len(items[0].Attachments) != 1 || items[0].Text != "rewritten" {
		t.Errorf("stored record lost attachments or text: %+v", items[0])
	}
}

func TestOpenAttachment(t *testing.T) {
	svc := newService(t)
	qs := seed(t, svc, 1)

	att, err := svc.SaveAttachment(qs[0].QID, strings.NewReader("bytes"), "diagram.png", "image/png")
	if err != nil {
		t.Fatal(err)
	}

	f, got, err := svc.OpenAttachment(qs[0].QID, att.StoredName)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if got.Name != "diagram.png" {
		t.Errorf("unexpected descriptor: %+v", got)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "bytes" {
		t.Errorf("unexpected file contents %q", data)
	}

	if _, _, err := svc.OpenAttachment(qs[0].QID, "unknown"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown stored name, got %v", err)
	}
	if _, _, err := svc.OpenAttachment("missing", att.StoredName); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown question, got %v", err)
	}
}
