package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/beesaferoot/estate-catalog/internal/catalog"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeError maps the catalog error kinds onto HTTP statuses. label names the
// entity for the not-found message, matching the API's message format.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error, label string) {
	var partial *catalog.PartialDeleteError
	switch {
	case errors.As(err, &partial):
		logger.Error("partial soft-delete", zap.String("kind", partial.Kind),
			zap.String("id", partial.ID), zap.String("renamedTo", partial.RenamedTo), zap.Error(partial.Err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":     "delete incomplete, retry to finish",
			"renamedTo": partial.RenamedTo,
		})
	case errors.Is(err, catalog.ErrNotFound):
		writeMessage(w, http.StatusNotFound, label+" is not found!")
	case errors.Is(err, catalog.ErrDuplicateName):
		writeMessage(w, http.StatusConflict, "Name must be unique")
	case errors.Is(err, catalog.ErrConstraintViolation):
		writeMessage(w, http.StatusConflict, "conflicting write, please retry")
	default:
		logger.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error!"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}
