// internal/api/routes.go
package api

import "net/http"

// RegisterRoutes wires every handler onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Bank
	mux.HandleFunc("GET /bank", h.listBank)
	mux.HandleFunc("POST /bank/questions", h.addQuestion)
	mux.HandleFunc("PUT /bank/questions/{qid}", h.updateQuestion)
	mux.HandleFunc("DELETE /bank/questions/{qid}", h.deleteQuestion)
	mux.HandleFunc("POST /bank/questions/{qid}/attachments", h.uploadAttachment)
	mux.HandleFunc("GET /bank/questions/{qid}/attachments/{stored}", h.downloadAttachment)
	mux.HandleFunc("GET /bank/categories", h.listCategories)
	mux.HandleFunc("GET /bank/topics", h.listTopics)
	mux.HandleFunc("GET /bank/lint", h.lintBank)

	// Quiz
	mux.HandleFunc("POST /quiz", h.startQuiz)
	mux.HandleFunc("GET /quiz", h.quizState)
	mux.HandleFunc("POST /quiz/answers", h.submitAnswer)
	mux.HandleFunc("POST /quiz/next", h.advanceQuiz)
	mux.HandleFunc("POST /quiz/end", h.endQuiz)
	mux.HandleFunc("POST /flags/{qid}", h.toggleFlag)

	// Review & analytics
	mux.HandleFunc("GET /review", h.reviewList)
	mux.HandleFunc("GET /analytics", h.analyticsSummary)
	mux.HandleFunc("GET /analytics/categories", h.analyticsCategories)

	// Import / export
	mux.HandleFunc("POST /import/questions", h.importQuestions)
	mux.HandleFunc("GET /export/questions", h.exportBank)
	mux.HandleFunc("GET /export/attempts", h.exportAttempts)
}
