// Package httputil provides JSON response and error helpers shared by handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"carriertext/pkg/platform/sentinel"
)

// maxBodyBytes bounds request bodies; a full input snapshot is a few KB.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps sentinel errors to status codes. Internal errors never expose
// their description.
func WriteError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	resp := errorResponse{Error: code}
	if status != http.StatusInternalServerError {
		resp.ErrorDescription = err.Error()
	}
	WriteJSON(w, status, resp)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, sentinel.ErrInvalidInput), errors.Is(err, sentinel.ErrInvalidSlot):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, sentinel.ErrUnknownLocale):
		return http.StatusBadRequest, "unknown_locale"
	case errors.Is(err, sentinel.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, sentinel.ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// DecodeJSON decodes a bounded request body into T, rejecting unknown fields.
func DecodeJSON[T any](r *http.Request) (*T, error) {
	var v T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", sentinel.ErrInvalidInput, err)
	}
	return &v, nil
}

// Validatable is implemented by request bodies that normalize and check themselves.
type Validatable[T any] interface {
	*T
	Validate() error
}

// DecodeAndPrepare decodes and validates a request body. On failure it writes the
// error response and returns false.
func DecodeAndPrepare[T any, PT Validatable[T]](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	req, err := DecodeJSON[T](r)
	if err == nil {
		err = PT(req).Validate()
	}
	if err != nil {
		logger.WarnContext(r.Context(), "invalid request", "path", r.URL.Path, "error", err)
		WriteError(w, err)
		return nil, false
	}
	return req, true
}
