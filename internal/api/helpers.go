package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jwinther/homeplan/pkg/errors"
)

const maxBodyBytes = 1 << 20 // 1 MiB

type errorResponse struct {
	Error string `json:"error"`
}

// readJSON decodes a JSON request body with a size limit.
func readJSON[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return v, false
	}
	return v, true
}

// urlParam is a short alias for chi.URLParam.
func urlParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps an engine error to an HTTP status via its code.
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidRequirements,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePlanNotFound,
		errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeStoreUnavailable:
		status = http.StatusServiceUnavailable
	}
	writeError(w, status, errors.UserMessage(err))
}
