// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quizbank/backend/internal/domain/quiz"
	"github.com/quizbank/backend/internal/service"
	"github.com/quizbank/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	svc    *service.QuizService
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(svc *service.QuizService, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v, answering 400 on failure.
// Returns false if an error was handled (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// validator is implemented by request types that check themselves.
type validator interface {
	Validate() error
}

// decodeAndValidate decodes the body and runs the request's own checks.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleQuizError maps domain errors to HTTP responses. Returns true if
// an error was handled (caller should return).
func (h *Handler) handleQuizError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, quiz.ErrEmptyPool):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, quiz.ErrNoActiveQuiz),
		errors.Is(err, quiz.ErrQuizComplete),
		errors.Is(err, quiz.ErrNotSubmitted),
		errors.Is(err, service.ErrQuizActive):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, quiz.ErrAlreadyAnswered),
		errors.Is(err, quiz.ErrNoSelection),
		errors.Is(err, quiz.ErrInvalidChoice),
		errors.Is(err, service.ErrUnknownMode):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	default:
		h.logger.Error("internal error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// handleStoreError checks for common store errors and writes the
// appropriate HTTP response. Returns true if an error was handled.
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
