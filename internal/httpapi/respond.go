package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/erraggy/xutil/xuerrors"
)

// errNotFound marks a request for a resource that does not exist, such as an
// unknown conversion domain.
var errNotFound = errors.New("not found")

type errorBody struct {
	Detail string `json:"detail"`
}

// bodyError reports a request that could not be decoded.
type bodyError struct {
	err error
}

func (e *bodyError) Error() string { return "invalid request: " + e.err.Error() }
func (e *bodyError) Unwrap() error { return e.err }

func missing(field string) error {
	return &bodyError{err: fmt.Errorf("field required: %s", field)}
}

func statusFor(err error) int {
	var (
		maxErr  *http.MaxBytesError
		bodyErr *bodyError
	)
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, xuerrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, xuerrors.ErrUnprocessable), errors.Is(err, xuerrors.ErrOverflow), errors.As(err, &bodyErr):
		return http.StatusUnprocessableEntity
	case xuerrors.IsValidation(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		s.logger.LogAttrs(r.Context(), slog.LevelWarn, "writing response failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	detail := err.Error()
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		detail = fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit)
	}
	if status == http.StatusInternalServerError {
		s.logger.LogAttrs(r.Context(), slog.LevelError, "request failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		detail = "Internal server error"
	}
	s.writeJSON(w, r, status, errorBody{Detail: detail})
}

// respond records the outcome of operation and writes either body or err.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, operation string, body any, err error) {
	s.metrics.ObserveOperation(operation, err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, body)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("request body is empty")
		}
		return &bodyError{err: err}
	}
	return nil
}

// readUpload returns the contents of the multipart "file" field.
func (s *Server) readUpload(r *http.Request) ([]byte, error) {
	maxMemory := s.cfg.MaxBodyBytes
	if maxMemory <= 0 {
		maxMemory = 32 << 20
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, &bodyError{err: err}
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		return nil, &bodyError{err: fmt.Errorf("file: %w", err)}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &bodyError{err: err}
	}
	if len(data) == 0 {
		return nil, xuerrors.Input("file", "file is empty")
	}
	return data, nil
}

// uploadText is readUpload for endpoints that need UTF-8 text.
func (s *Server) uploadText(r *http.Request) (string, error) {
	data, err := s.readUpload(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", xuerrors.Input("file", "file must be UTF-8 encoded")
	}
	return string(data), nil
}

// queryInt reads an integer query parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &bodyError{err: fmt.Errorf("%s: %q is not an integer", name, raw)}
	}
	return n, nil
}

// queryFloat reads a float query parameter, returning def when absent.
func queryFloat(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &bodyError{err: fmt.Errorf("%s: %q is not a number", name, raw)}
	}
	return f, nil
}

// queryBool reads a boolean query parameter, returning def when absent.
func queryBool(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &bodyError{err: fmt.Errorf("%s: %q is not a boolean", name, raw)}
	}
	return b, nil
}
