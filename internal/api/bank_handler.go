package api

import (
	"errors"
	"net/http"

	"github.com/quizbank/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type QuestionRequest struct {
	Category    string   `json:"category"`
	Topic       string   `json:"topic"`
	Text        string   `json:"question" example:"What is a goroutine?"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

func (r *QuestionRequest) Validate() error {
	if r.Text == "" {
		return errors.New("question is required")
	}
	if r.Answer == "" {
		return errors.New("answer is required")
	}
	return nil
}

func (r *QuestionRequest) toQuestion() question.Question {
	return question.Question{
		Category:    r.Category,
		Topic:       r.Topic,
		Text:        r.Text,
		Choices:     r.Choices,
		Answer:      r.Answer,
		Explanation: r.Explanation,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listBank returns every question with its answer status and flag state.
// @Summary      List the question bank
// @Tags         Bank
// @Produce      json
// @Success      200  {array}  service.BankItem
// @Router       /bank [get]
func (h *Handler) listBank(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.ListBank())
}

// addQuestion creates a question.
// @Summary      Add a question
// @Tags         Bank
// @Accept       json
// @Produce      json
// @Param        body  body      QuestionRequest  true  "Question to add"
// @Success      201   {object}  question.Question
// @Failure      400   {object}  map[string]string
// @Router       /bank/questions [post]
func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	added, err := h.svc.AddQuestion(req.toQuestion())
	if h.handleStoreError(w, err, "question") {
		return
	}

	respondJSON(w, http.StatusCreated, added)
}

// updateQuestion replaces a stored question, keeping its identity.
// @Summary      Update a question
// @Tags         Bank
// @Accept       json
// @Produce      json
// @Param        qid   path      string           true  "Question ID"
// @Param        body  body      QuestionRequest  true  "New question content"
// @Success      200   {object}  question.Question
// @Failure      404   {object}  map[string]string
// @Router       /bank/questions/{qid} [put]
func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	qid := r.PathValue("qid")

	var req QuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q := req.toQuestion()
	q.QID = qid
	updated, err := h.svc.UpdateQuestion(q)
	if h.handleStoreError(w, err, "question") {
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// deleteQuestion removes a question from the bank.
// @Summary      Delete a question
// @Tags         Bank
// @Param        qid  path  string  true  "Question ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /bank/questions/{qid} [delete]
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	qid := r.PathValue("qid")

	if h.handleStoreError(w, h.svc.DeleteQuestion(qid), "question") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listCategories returns the distinct category values in the bank.
// @Summary      List categories
// @Tags         Bank
// @Produce      json
// @Success      200  {array}  string
// @Router       /bank/categories [get]
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Categories())
}

// listTopics returns the distinct topic values in the bank.
// @Summary      List topics
// @Tags         Bank
// @Produce      json
// @Success      200  {array}  string
// @Router       /bank/topics [get]
func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Topics())
}

// lintBank reports questions whose answer can never grade correct.
// @Summary      Lint the bank
// @Tags         Bank
// @Produce      json
// @Success      200  {array}  question.Warning
// @Router       /bank/lint [get]
func (h *Handler) lintBank(w http.ResponseWriter, r *http.Request) {
	warnings := h.svc.LintBank()
	if warnings == nil {
		warnings = []question.Warning{}
	}
	respondJSON(w, http.StatusOK, warnings)
}
