package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/redmonkez12/courses-api/internal/apperr"
)

// maxBodyBytes caps request bodies; the largest legitimate body is a course.
const maxBodyBytes = 1 << 20

// InvalidBodyMessage is reported when a request body is not a JSON object.
const InvalidBodyMessage = "Request body must be a valid JSON object"

// DecodeJSON decodes the request body into v. An empty body leaves v
// untouched so required-field checks report what is missing.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return &apperr.Error{Kind: apperr.KindValidation, Messages: []string{InvalidBodyMessage}, Err: err}
	}
	return nil
}

// IDParam parses the named URL parameter as a positive integer id. A value
// that cannot be an id is reported as notFoundMessage.
func IDParam(r *http.Request, name, notFoundMessage string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound(notFoundMessage)
	}
	return id, nil
}
