// Package errs holds the application error taxonomy shared by services and handlers.
package errs

import (
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	ENOTFOUND = "not_found"
	ECONFLICT = "conflict"
	EINVALID  = "invalid"
	EINTERNAL = "internal"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func NotFound(format string, args ...any) *Error {
	return Errorf(ENOTFOUND, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return Errorf(ECONFLICT, format, args...)
}

func Invalid(format string, args ...any) *Error {
	return Errorf(EINVALID, format, args...)
}

// ErrorCode returns the code of the first *Error in the chain.
// Errors outside the taxonomy (storage failures etc.) are internal.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the client facing message; internal details are never exposed.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Code != EINTERNAL {
		return e.Message
	}
	return "internal error"
}

func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case "":
		return http.StatusOK
	case ENOTFOUND:
		return http.StatusNotFound
	case ECONFLICT:
		return http.StatusConflict
	case EINVALID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteHTTP writes err to w with the matching status code.
// Internal errors are logged with the given operation name.
func WriteHTTP(w http.ResponseWriter, op string, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
	} else {
		log.Tracef("%s: %s", op, err)
	}
	http.Error(w, ErrorMessage(err), status)
}
