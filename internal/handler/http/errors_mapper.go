package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/apexglitch/crm/internal/service"
	"github.com/apexglitch/crm/internal/store"
	"github.com/apexglitch/crm/internal/validators"
)

// errorStatuses maps domain errors to HTTP status codes. Order matters:
// earlier entries win, so specific upload errors outrank the generic
// bad-request wrap they arrive in.
var errorStatuses = []struct {
	err    error
	status int
}{
	{validators.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{validators.ErrUnsupportedFile, http.StatusUnsupportedMediaType},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden},
	{service.ErrSecretCodeMismatch, http.StatusForbidden},
	{service.ErrNotAllowed, http.StatusForbidden},
	{service.ErrAdminAlreadyExists, http.StatusConflict},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrCustomerNotFound, http.StatusNotFound},
	{store.ErrCustomerEmailExists, http.StatusConflict},
	{store.ErrDocumentNotFound, http.StatusNotFound},
	{store.ErrFileNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as the original API's JSON error envelope:
// {"error": "<message>"} with the mapped status code.
func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// keep the envelope stable even for messages with quotes
	body, _ := json.Marshal(map[string]string{"error": message})
	w.Write(body)
}
