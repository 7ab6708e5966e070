package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bazaarlabs/marketplace/internal/domain"
)

// errorResp is the envelope for all error responses.
type errorResp struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError maps domain error types to HTTP status codes. Anything that is
// not a validation or not-found error is treated as an internal failure.
func respondError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	code := "INTERNAL"

	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	switch {
	case errors.As(err, &validationErr):
		statusCode = http.StatusBadRequest
		code = "BAD_REQUEST"
	case errors.As(err, &notFoundErr):
		statusCode = http.StatusNotFound
		code = "NOT_FOUND"
	}

	respondJSON(w, statusCode, errorResp{
		Error: errorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
