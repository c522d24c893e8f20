package api

import (
	"errors"
	"net/http"

	"github.com/quizbank/backend/internal/domain/quiz"
	"github.com/quizbank/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartQuizRequest struct {
	Mode     string `json:"mode" example:"standard"`
	Category string `json:"category" example:"All"`
	Topic    string `json:"topic" example:"All"`
	Status   string `json:"status" example:"All"`
	Count    int    `json:"count" example:"10"`
}

func (r *StartQuizRequest) Validate() error {
	if r.Mode != service.ModeStandard && r.Mode != service.ModeAdaptive {
		return errors.New("mode must be standard or adaptive")
	}
	return nil
}

type SubmitAnswerRequest struct {
	Selection string `json:"selection"`
}

type FlagResponse struct {
	QID     string `json:"qid"`
	Flagged bool   `json:"flagged"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startQuiz builds a pool for the requested mode and starts a session.
// @Summary      Start a quiz
// @Description  Standard mode filters by category/topic/status ("All" lifts a filter); adaptive mode orders the whole bank by weakness priority.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      StartQuizRequest  true  "Quiz parameters"
// @Success      201   {object}  service.QuizState
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "a quiz is already in progress"
// @Failure      422   {object}  map[string]string  "no matching questions"
// @Router       /quiz [post]
func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	var req StartQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// Absent filters mean no constraint, mirroring the builder UI
	// defaults.
	if req.Category == "" {
		req.Category = quiz.FilterAll
	}
	if req.Topic == "" {
		req.Topic = quiz.FilterAll
	}
	if req.Status == "" {
		req.Status = quiz.FilterAll
	}

	err := h.svc.StartQuiz(req.Mode, req.Category, req.Topic, req.Status, req.Count)
	if h.handleQuizError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, h.svc.QuizState())
}

// quizState returns the current session view.
// @Summary      Current quiz state
// @Tags         Quiz
// @Produce      json
// @Success      200  {object}  service.QuizState
// @Router       /quiz [get]
func (h *Handler) quizState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.QuizState())
}

// submitAnswer grades a selection for the current question.
// @Summary      Submit an answer
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswerRequest  true  "Selected choice"
// @Success      200   {object}  service.SubmitResult
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /quiz/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SubmitAnswer(req.Selection)
	if h.handleQuizError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// advanceQuiz moves to the next question after a submission.
// @Summary      Advance to the next question
// @Tags         Quiz
// @Produce      json
// @Success      200  {object}  service.QuizState
// @Failure      409  {object}  map[string]string  "current question not answered yet"
// @Router       /quiz/next [post]
func (h *Handler) advanceQuiz(w http.ResponseWriter, r *http.Request) {
	if h.handleQuizError(w, h.svc.Advance()) {
		return
	}
	respondJSON(w, http.StatusOK, h.svc.QuizState())
}

// endQuiz returns the session to idle.
// @Summary      End the quiz
// @Tags         Quiz
// @Produce      json
// @Success      200  {object}  service.QuizState
// @Failure      409  {object}  map[string]string
// @Router       /quiz/end [post]
func (h *Handler) endQuiz(w http.ResponseWriter, r *http.Request) {
	if h.handleQuizError(w, h.svc.EndQuiz()) {
		return
	}
	respondJSON(w, http.StatusOK, h.svc.QuizState())
}

// toggleFlag flips review-flag membership for a question.
// @Summary      Toggle a review flag
// @Tags         Quiz
// @Produce      json
// @Param        qid  path      string  true  "Question ID"
// @Success      200  {object}  FlagResponse
// @Failure      404  {object}  map[string]string
// @Router       /flags/{qid} [post]
func (h *Handler) toggleFlag(w http.ResponseWriter, r *http.Request) {
	qid := r.PathValue("qid")

	flagged, err := h.svc.ToggleFlag(qid)
	if h.handleQuizError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, FlagResponse{QID: qid, Flagged: flagged})
}
