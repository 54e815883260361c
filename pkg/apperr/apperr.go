// Package apperr classifies request failures and tags them with the
// processing stage in which they occurred.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// StageUnknown tags failures that were not attributed to a specific stage.
const StageUnknown = "unknown"

// ErrNotFound is returned by repositories when a looked-up row is absent.
var ErrNotFound = errors.New("record not found")

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// HTTPStatus maps a kind onto its response status.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type StageError struct {
	Stage  string
	Kind   Kind
	Err    error
	status int
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *StageError) Unwrap() error { return e.Err }

// WithStatus overrides the status derived from the error kind.
func (e *StageError) WithStatus(code int) *StageError {
	e.status = code
	return e
}

// Status reports the HTTP status for this error.
func (e *StageError) Status() int {
	if e.status != 0 {
		return e.status
	}
	return e.Kind.HTTPStatus()
}

func Wrap(stage string, kind Kind, err error) *StageError {
	return &StageError{Stage: stage, Kind: kind, Err: err}
}

func Validation(stage, msg string) *StageError {
	return Wrap(stage, KindValidation, errors.New(msg))
}

func NotFound(stage, msg string) *StageError {
	return Wrap(stage, KindNotFound, errors.New(msg))
}

// Store wraps a datastore failure; the store message is kept verbatim.
func Store(stage string, err error) *StageError {
	return Wrap(stage, KindStore, err)
}

func Unknown(err error) *StageError {
	return Wrap(StageUnknown, KindUnknown, err)
}

// FromPanic converts a recovered panic value into an unknown-stage error.
func FromPanic(v any) *StageError {
	if err, ok := v.(error); ok {
		return Unknown(err)
	}
	return Unknown(fmt.Errorf("%v", v))
}

func As(err error) (*StageError, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// StageOf returns the stage tag of err, or StageUnknown when untagged.
func StageOf(err error) string {
	if se, ok := As(err); ok && se.Stage != "" {
		return se.Stage
	}
	return StageUnknown
}

func HTTPStatus(err error) int {
	if se, ok := As(err); ok {
		return se.Status()
	}
	return http.StatusInternalServerError
}
