package api

import (
	"net/http"

	"github.com/quizbank/backend/internal/service"
)

// reviewList returns flagged and/or incorrectly answered questions.
// @Summary      Review list
// @Tags         Review
// @Produce      json
// @Param        filter  query     string  false  "flagged | incorrect | flagged_incorrect"
// @Success      200     {array}   service.ReviewItem
// @Router       /review [get]
func (h *Handler) reviewList(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = service.ReviewFlaggedIncorrect
	}

	items := h.svc.Review(filter)
	if items == nil {
		items = []service.ReviewItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

// analyticsSummary returns overall progress counts.
// @Summary      Progress summary
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  history.Summary
// @Router       /analytics [get]
func (h *Handler) analyticsSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Summary())
}

// analyticsCategories returns per-category progress.
// @Summary      Per-category progress
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}  history.CategoryStat
// @Router       /analytics/categories [get]
func (h *Handler) analyticsCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.CategoryBreakdown())
}
