package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/utils"
	"github.com/apexglitch/crm/internal/validators"
	"github.com/apexglitch/crm/models"
)

// uploadFieldName is the multipart form field carrying the file content.
const uploadFieldName = "document"

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	customerID, err := pathID(r)
	if err != nil {
		log.Err(err).Msg("invalid customer id")
		writeError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	documents, err := h.services.DocumentService.ListByCustomer(r.Context(), customerID)
	if err != nil {
		log.Err(err).Msg("error listing documents")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, documents, http.StatusOK)
}

// uploadDocument accepts a multipart form with the file under the "document"
// field plus optional "category" and "description" text fields. The request
// body is capped at the configured upload limit before parsing begins.
func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	customerID, err := pathID(r)
	if err != nil {
		log.Err(err).Msg("invalid customer id")
		writeError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	// the limit leaves headroom for multipart framing and text fields
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Err(err).Msg("upload exceeds size limit")
			writeError(w, validators.ErrFileTooLarge.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("invalid multipart form")
		writeError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		log.Err(err).Msg("no file uploaded")
		writeError(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	category := r.FormValue("category")
	if category == "" {
		category = "General"
	}

	upload := models.DocumentUpload{
		CustomerID:       customerID,
		OriginalFilename: header.Filename,
		Size:             header.Size,
		ContentType:      header.Header.Get("Content-Type"),
		Category:         category,
		Description:      r.FormValue("description"),
		Content:          file,
	}

	document, err := h.services.DocumentService.Upload(r.Context(), upload)
	if err != nil {
		log.Err(err).Msg("error uploading document")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, document, http.StatusCreated)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		log.Err(err).Msg("invalid document id")
		writeError(w, "invalid document id", http.StatusBadRequest)
		return
	}

	document, err := h.services.DocumentService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Msg("error fetching document")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, document, http.StatusOK)
}

// downloadDocument streams the stored file back to the client under its
// original filename.
func (h *Handler) downloadDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		log.Err(err).Msg("invalid document id")
		writeError(w, "invalid document id", http.StatusBadRequest)
		return
	}

	document, content, err := h.services.DocumentService.Download(r.Context(), id)
	if err != nil {
		log.Err(err).Msg("error downloading document")
		writeError(w, err.Error(), statusFromError(err))
		return
	}
	defer content.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", document.OriginalFilename))
	if document.FileType != "" {
		w.Header().Set("Content-Type", document.FileType)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Content-Length", fmt.Sprintf("%d", document.FileSize))

	if _, err := io.Copy(w, content); err != nil {
		// headers are already sent so the client sees a truncated body
		log.Err(err).Msg("error streaming document content")
	}
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		log.Err(err).Msg("invalid document id")
		writeError(w, "invalid document id", http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.Delete(r.Context(), id); err != nil {
		log.Err(err).Msg("error deleting document")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Document deleted successfully"}, http.StatusOK)
}
