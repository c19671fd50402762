package server

import (
	"encoding/json"
	"net/http"

	"github.com/tileforge/mosaic/pkg/errors"
)

// errorBody is the JSON error envelope.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an application error to an HTTP status and writes the
// error envelope.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeCanvasNotFound, errors.ErrCodePatternNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidIdentity, errors.ErrCodeInvalidPalette,
		errors.ErrCodeInvalidStroke, errors.ErrCodeInvalidPattern, errors.ErrCodeInvalidGeometry,
		errors.ErrCodeOutOfBounds:
		status = http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		status = http.StatusUnsupportedMediaType
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

// decodeBody decodes a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}
