package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/fantasyname/pkg/environment"
	"github.com/dmitrymomot/fantasyname/pkg/logger"
	"github.com/dmitrymomot/fantasyname/pkg/namegen"
	"github.com/dmitrymomot/fantasyname/pkg/patternlib"
	"github.com/dmitrymomot/fantasyname/pkg/randomname"
	"github.com/dmitrymomot/fantasyname/pkg/requestid"
)

// HTTPError is an error with a status code and a stable machine-readable key.
type HTTPError struct {
	Status  int
	Key     string
	Message string
}

func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Key
}

var (
	ErrBadRequest       = HTTPError{Status: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound         = HTTPError{Status: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed = HTTPError{Status: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrTooManyRequests  = HTTPError{Status: http.StatusTooManyRequests, Key: "rate_limited", Message: "too many requests"}
	ErrInternal         = HTTPError{Status: http.StatusInternalServerError, Key: "internal_error", Message: "internal server error"}
)

func badRequest(msg string) HTTPError {
	e := ErrBadRequest
	e.Message = msg
	return e
}

// toHTTPError maps domain errors onto status codes. Unknown errors become a
// 500; respondError adds their text in development only.
func toHTTPError(err error) (HTTPError, map[string][]string) {
	var httpErr HTTPError
	var syntaxErr *namegen.SyntaxError

	switch {
	case errors.As(err, &httpErr):
		return httpErr, nil
	case errors.As(err, &syntaxErr):
		return HTTPError{Status: http.StatusUnprocessableEntity, Key: "invalid_pattern", Message: syntaxErr.Error()},
			map[string][]string{"pattern": {syntaxErr.Err.Error()}}
	case errors.Is(err, patternlib.ErrUnknownPattern):
		return HTTPError{Status: http.StatusNotFound, Key: "unknown_preset", Message: err.Error()}, nil
	case errors.Is(err, randomname.ErrExhausted):
		return HTTPError{Status: http.StatusConflict, Key: "exhausted", Message: err.Error()}, nil
	case errors.Is(err, randomname.ErrInvalidCount):
		return badRequest(err.Error()), nil
	}
	return ErrInternal, nil
}

func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	httpErr, details := toHTTPError(err)
	if httpErr.Status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", logger.Error(err))
		// Development builds expose the cause to the caller.
		if environment.FromContext(r.Context()).IsDevelopment() {
			details = map[string][]string{"cause": {err.Error()}}
		}
	}

	body := Response{
		Code: httpErr.Key,
		Error: &ErrorDetail{
			Code:    httpErr.Key,
			Message: httpErr.Error(),
			Details: details,
		},
	}
	if id := requestid.FromContext(r.Context()); id != "" {
		body.Meta = map[string]any{"request_id": id}
	}
	writeJSON(w, httpErr.Status, body)
}
