package api

import (
	"net/http"
)

// maxImportSize caps uploaded CSV files at 10 MiB.
const maxImportSize = 10 << 20

// importQuestions bulk-imports questions from an uploaded CSV file.
// @Summary      Import questions from CSV
// @Description  Columns: question, answer (required per row; incomplete rows are skipped), choice1..choiceN, explanation, category, topic.
// @Tags         ImportExport
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  true  "CSV file"
// @Success      201   {object}  service.ImportResult
// @Failure      400   {object}  map[string]string
// @Router       /import/questions [post]
func (h *Handler) importQuestions(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	result, err := h.svc.ImportQuestions(file)
	if err != nil {
		// Malformed source is a caller problem, not a server fault, and
		// the bank was not touched.
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// exportBank downloads the question bank as CSV.
// @Summary      Export the question bank
// @Tags         ImportExport
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /export/questions [get]
func (h *Handler) exportBank(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=question_bank_backup.csv")

	if err := h.svc.ExportBank(w); err != nil {
		h.logger.Error("bank export failed", "error", err)
	}
}

// exportAttempts downloads the attempt log as CSV.
// @Summary      Export the attempt log
// @Tags         ImportExport
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /export/attempts [get]
func (h *Handler) exportAttempts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=quiz_results_backup.csv")

	if err := h.svc.ExportAttempts(w); err != nil {
		h.logger.Error("attempt export failed", "error", err)
	}
}
