package api

import (
	"fmt"
	"io"
	"net/http"
)

// uploadAttachment stores an uploaded file against a question.
// @Summary      Attach a file to a question
// @Tags         Bank
// @Accept       mpfd
// @Produce      json
// @Param        qid   path      string  true  "Question ID"
// @Param        file  formData  file    true  "File to attach"
// @Success      201   {object}  question.Attachment
// @Failure      404   {object}  map[string]string
// @Router       /bank/questions/{qid}/attachments [post]
func (h *Handler) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	qid := r.PathValue("qid")

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	mime := header.Header.Get("Content-Type")
	att, err := h.svc.SaveAttachment(qid, file, header.Filename, mime)
	if h.handleStoreError(w, err, "question") {
		return
	}

	respondJSON(w, http.StatusCreated, att)
}

// downloadAttachment serves the stored bytes of an attachment.
// @Summary      Download an attachment
// @Tags         Bank
// @Produce      octet-stream
// @Param        qid     path  string  true  "Question ID"
// @Param        stored  path  string  true  "Stored attachment name"
// @Success      200  {file}    file
// @Failure      404  {object}  map[string]string
// @Router       /bank/questions/{qid}/attachments/{stored} [get]
func (h *Handler) downloadAttachment(w http.ResponseWriter, r *http.Request) {
	qid := r.PathValue("qid")
	stored := r.PathValue("stored")

	f, att, err := h.svc.OpenAttachment(qid, stored)
	if h.handleStoreError(w, err, "attachment") {
		return
	}
	defer f.Close()

	if att.Mime != "" {
		w.Header().Set("Content-Type", att.Mime)
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Name))
	if _, err := io.Copy(w, f); err != nil {
		h.logger.Error("failed to stream attachment", "qid", qid, "stored", stored, "error", err)
	}
}
