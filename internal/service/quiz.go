// internal/service/quiz.go
package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/quizbank/backend/internal/domain/history"
	"github.com/quizbank/backend/internal/domain/question"
	"github.com/quizbank/backend/internal/domain/quiz"
	"github.com/quizbank/backend/internal/store"
	"github.com/quizbank/backend/internal/tabular"
)

var (
	// ErrQuizActive rejects Start while a quiz is already running.
	ErrQuizActive = errors.New("a quiz is already in progress")
	// ErrUnknownMode rejects quiz modes other than standard/adaptive.
	ErrUnknownMode = errors.New("unknown quiz mode")
)

// Quiz modes accepted by StartQuiz.
const (
	ModeStandard = "standard"
	ModeAdaptive = "adaptive"
)

// QuizService owns the process-wide bank and history state and the one
// active quiz session. Every mutation flushes to the store before
// returning, and flush failures surface to the caller. A single mutex
// serializes access: the domain model is single-profile, so requests
// take exclusive turns rather than coordinating per-user state.
type QuizService struct {
	store       store.Store
	attachments *store.AttachmentStore
	logger      *slog.Logger

	mu      sync.Mutex
	bank    *question.Bank
	history *history.History
	session *quiz.Session
}

// NewQuizService loads the bank and history, assigns any missing
// identity, and persists the bank if the load changed it.
func NewQuizService(st store.Store, att *store.AttachmentStore, rng *rand.Rand, logger *slog.Logger) (*QuizService, error) {
	bank, err := st.LoadBank()
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	hist, err := st.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	if bank.EnsureIDs() {
		if err := st.SaveBank(bank); err != nil {
			return nil, fmt.Errorf("persist assigned ids: %w", err)
		}
	}

	return &QuizService{
		store:       st,
		attachments: att,
		logger:      logger,
		bank:        bank,
		history:     hist,
		session:     quiz.NewSession(rng),
	}, nil
}

func (s *QuizService) flushHistory() error {
	if err := s.store.SaveHistory(s.history); err != nil {
		s.logger.Error("history flush failed", "error", err)
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

func (s *QuizService) flushBank() error {
	if err := s.store.SaveBank(s.bank); err != nil {
		s.logger.Error("bank flush failed", "error", err)
		return fmt.Errorf("save bank: %w", err)
	}
	return nil
}

// ── Quiz lifecycle ──────────────────────────────────────────────────────────

// StartQuiz builds the candidate pool for the mode and starts a
// session over it. Standard mode applies the three filters; adaptive
// mode orders the whole bank by weakness priority. The filters and n
// are ignored in adaptive mode except for n's sampling role.
func (s *QuizService) StartQuiz(mode, category, topic, status string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Active() {
		return ErrQuizActive
	}

	var candidates []question.Question
	switch mode {
	case ModeStandard:
		candidates = quiz.BuildStandardPool(s.bank, s.history, category, topic, status)
	case ModeAdaptive:
		candidates = quiz.BuildAdaptivePool(s.bank, s.history)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	if err := s.session.Start(candidates, n); err != nil {
		return err
	}
	s.logger.Info("quiz started", "mode", mode, "pool_size", s.session.Total())
	return nil
}

// QuizState is the session view handed to the presentation layer.
type QuizState struct {
	Active   bool          `json:"active"`
	Complete bool          `json:"complete"`
	Index    int           `json:"index"`
	Total    int           `json:"total"`
	Score    int           `json:"score"`
	ShowExpl bool          `json:"show_explanation"`
	Question *QuizQuestion `json:"question,omitempty"`
}

// QuizQuestion is the current question as presented: choices come in
// the session's shuffled order, and the answer/explanation appear only
// after submission.
type QuizQuestion struct {
	QID         string                `json:"qid"`
	IDNum       int                   `json:"id_num"`
	Category    string                `json:"category"`
	Topic       string                `json:"topic"`
	Text        string                `json:"question"`
	Choices     []string              `json:"choices"`
	Attachments []question.Attachment `json:"attachments"`
	Flagged     bool                  `json:"flagged"`
	Answered    bool                  `json:"answered"`
	Selection   string                `json:"selection,omitempty"`
	Correct     *bool                 `json:"correct,omitempty"`
	Answer      string                `json:"answer,omitempty"`
	Explanation string                `json:"explanation,omitempty"`
}

// QuizState returns the current session view.
func (s *QuizService) QuizState() QuizState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := QuizState{
		Active:   s.session.Active(),
		Complete: s.session.Complete(),
		Index:    s.session.Index(),
		Total:    s.session.Total(),
		Score:    s.session.Score(),
		ShowExpl: s.session.ShowExplanation(),
	}

	q, ok := s.session.Current()
	if !ok {
		return state
	}

	qq := &QuizQuestion{
		QID:         q.QID,
		IDNum:       q.IDNum,
		Category:    q.Category,
		Topic:       q.Topic,
		Text:        q.Text,
		Choices:     s.session.Choices(),
		Attachments: q.Attachments,
		Flagged:     s.history.IsFlagged(q.QID),
	}
	if sel, answered := s.session.SessionAnswer(q.QID); answered {
		correct := sel == q.Answer
		qq.Answered = true
		qq.Selection = sel
		qq.Correct = &correct
		qq.Answer = q.Answer
		qq.Explanation = q.Explanation
	}
	state.Question = qq
	return state
}

// SubmitResult reports the grading of one submission.
type SubmitResult struct {
	Correct     bool   `json:"correct"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
	Score       int    `json:"score"`
}

// SubmitAnswer grades the selection against the current question,
// records it in the global history, and flushes. The session state
// mutates first; a flush failure is surfaced after the fact rather
// than rolled back, matching the single-writer model.
func (s *QuizService) SubmitAnswer(selection string) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, correct, err := s.session.Submit(selection)
	if err != nil {
		return SubmitResult{}, err
	}

	s.history.RecordAnswer(q, selection, time.Now().UTC())
	if err := s.flushHistory(); err != nil {
		return SubmitResult{}, err
	}

	return SubmitResult{
		Correct:     correct,
		Answer:      q.Answer,
		Explanation: q.Explanation,
		Score:       s.session.Score(),
	}, nil
}

// Advance moves the session to the next question.
func (s *QuizService) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Advance()
}

// EndQuiz returns the session to idle.
func (s *QuizService) EndQuiz() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.End()
}

// ToggleFlag flips review-flag membership for a bank question and
// flushes. Works in any session state.
func (s *QuizService) ToggleFlag(qid string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bank.Get(qid); !ok {
		return false, store.ErrNotFound
	}

	flagged := s.history.ToggleFlag(qid)
	if err := s.flushHistory(); err != nil {
		return flagged, err
	}
	return flagged, nil
}

// ── Bank management ─────────────────────────────────────────────────────────

// BankItem is a bank question joined with its history status.
type BankItem struct {
	question.Question
	Status  history.Status `json:"status"`
	Flagged bool           `json:"flagged"`
}

// ListBank returns every question with its status and flag state, in
// bank order.
func (s *QuizService) ListBank() []BankItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]BankItem, len(s.bank.Questions))
	for i, q := range s.bank.Questions {
		items[i] = BankItem{
			Question: q,
			Status:   s.history.StatusOf(q),
			Flagged:  s.history.IsFlagged(q.QID),
		}
	}
	return items
}

// Categories returns the distinct category values in the bank.
func (s *QuizService) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bank.Categories()
}

// Topics returns the distinct topic values in the bank.
func (s *QuizService) Topics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bank.Topics()
}

// LintBank reports data problems in the bank.
func (s *QuizService) LintBank() []question.Warning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bank.Lint()
}

// AddQuestion appends a question to the bank and flushes.
func (s *QuizService) AddQuestion(q question.Question) (question.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := s.bank.Add(q)
	if err := s.flushBank(); err != nil {
		return question.Question{}, err
	}
	return added, nil
}

// UpdateQuestion replaces a stored question and flushes. The returned
// record carries the preserved id_num and attachment list.
func (s *QuizService) UpdateQuestion(q question.Question) (question.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, ok := s.bank.Update(q)
	if !ok {
		return question.Question{}, store.ErrNotFound
	}
	if err := s.flushBank(); err != nil {
		return question.Question{}, err
	}
	return updated, nil
}

// DeleteQuestion removes a question and flushes. Its attempt history
// survives; exports resolve it as "N/A".
func (s *QuizService) DeleteQuestion(qid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.bank.Remove(qid) {
		return store.ErrNotFound
	}
	return s.flushBank()
}

// ── Review & analytics ──────────────────────────────────────────────────────

// Review filter values.
const (
	ReviewFlagged          = "flagged"
	ReviewIncorrect        = "incorrect"
	ReviewFlaggedIncorrect = "flagged_incorrect"
)

// ReviewItem is one entry of the review list.
type ReviewItem struct {
	question.Question
	YourAnswer string `json:"your_answer"`
	Flagged    bool   `json:"flagged"`
	Incorrect  bool   `json:"incorrect"`
}

// Review lists the questions matching the review filter, in bank order.
// An unknown filter behaves like flagged_incorrect (the widest view).
func (s *QuizService) Review(filter string) []ReviewItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []ReviewItem
	for _, q := range s.bank.Questions {
		flagged := s.history.IsFlagged(q.QID)
		incorrect := s.history.StatusOf(q) == history.StatusIncorrect

		show := false
		switch filter {
		case ReviewFlagged:
			show = flagged
		case ReviewIncorrect:
			show = incorrect
		default:
			show = flagged || incorrect
		}
		if !show {
			continue
		}

		items = append(items, ReviewItem{
			Question:   q,
			YourAnswer: s.history.UserAnswers[q.QID],
			Flagged:    flagged,
			Incorrect:  incorrect,
		})
	}
	return items
}

// Summary returns the overall progress report.
func (s *QuizService) Summary() history.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Summarize(s.bank)
}

// CategoryBreakdown returns the per-category progress report.
func (s *QuizService) CategoryBreakdown() []history.CategoryStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CategoryBreakdown(s.bank)
}

// ── Import / export ─────────────────────────────────────────────────────────

// ImportResult reports the outcome of a bulk import.
type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// ImportQuestions parses the tabular source fully before touching the
// bank, so a malformed file never leaves a partial import behind. Rows
// missing question or answer are skipped, not errors.
func (s *QuizService) ImportQuestions(r io.Reader) (ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions, skipped, err := tabular.ReadQuestions(r)
	if err != nil {
		return ImportResult{}, err
	}

	for _, q := range questions {
		s.bank.Add(q)
	}
	if len(questions) > 0 {
		if err := s.flushBank(); err != nil {
			return ImportResult{}, err
		}
	}
	return ImportResult{Added: len(questions), Skipped: skipped}, nil
}

// ExportBank writes the question bank as CSV.
func (s *QuizService) ExportBank(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tabular.WriteBank(w, s.bank)
}

// ExportAttempts writes the attempt log as CSV.
func (s *QuizService) ExportAttempts(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tabular.WriteAttempts(w, s.bank, s.history)
}

// ── Attachments ─────────────────────────────────────────────────────────────

// SaveAttachment stores the uploaded bytes for a question and appends
// the descriptor to its attachment list.
func (s *QuizService) SaveAttachment(qid string, r io.Reader, name, mime string) (question.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bank.Get(qid); !ok {
		return question.Attachment{}, store.ErrNotFound
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return question.Attachment{}, fmt.Errorf("read upload: %w", err)
	}

	att, err := s.attachments.Save(qid, data, name, mime)
	if err != nil {
		return question.Attachment{}, err
	}

	s.bank.Attach(qid, att)
	if err := s.flushBank(); err != nil {
		return question.Attachment{}, err
	}
	return att, nil
}

// OpenAttachment resolves a stored attachment by its stored name and
// opens the underlying file. The caller closes it.
func (s *QuizService) OpenAttachment(qid, storedName string) (*os.File, question.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.bank.Get(qid)
	if !ok {
		return nil, question.Attachment{}, store.ErrNotFound
	}
	for _, att := range q.Attachments {
		if att.StoredName == storedName {
			f, err := s.attachments.Open(att.Path)
			if err != nil {
				return nil, question.Attachment{}, err
			}
			return f, att, nil
		}
	}
	return nil, question.Attachment{}, store.ErrNotFound
}
