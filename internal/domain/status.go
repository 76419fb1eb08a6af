package domain

import (
	"errors"
	"strconv"
)

// Status is the closed outcome of a mutation call. Values are stable and
// exposed to clients; never renumber.
type Status int

const (
	StatusSuccess         Status = 0
	StatusNotFound        Status = 1
	StatusUnauthorized    Status = 2
	StatusInternalFailure Status = 3
	StatusLockTimeout     Status = 4

	// Domain extensions.
	StatusAlreadyProcessed      Status = 5
	StatusSelfReference         Status = 6
	StatusDuplicateRelationship Status = 7
	StatusInvalidInput          Status = 8
	StatusConflict              Status = 9
	StatusRateLimited           Status = 10
)

var statusNames = map[Status]string{
	StatusSuccess:               "SUCCESS",
	StatusNotFound:              "NOT_FOUND",
	StatusUnauthorized:          "UNAUTHORIZED",
	StatusInternalFailure:       "INTERNAL_FAILURE",
	StatusLockTimeout:           "LOCK_TIMEOUT",
	StatusAlreadyProcessed:      "ALREADY_PROCESSED",
	StatusSelfReference:         "SELF_REFERENCE_REJECTED",
	StatusDuplicateRelationship: "DUPLICATE_RELATIONSHIP",
	StatusInvalidInput:          "INVALID_INPUT",
	StatusConflict:              "CONFLICT",
	StatusRateLimited:           "RATE_LIMITED",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "STATUS(" + strconv.Itoa(int(s)) + ")"
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// OK reports whether s is StatusSuccess.
func (s Status) OK() bool { return s == StatusSuccess }

// Retryable reports whether a caller may retry the same request unchanged.
func (s Status) Retryable() bool {
	return s == StatusInternalFailure || s == StatusLockTimeout || s == StatusRateLimited
}

// StatusOf maps an error returned from inside a mutation to its status.
// A nil error is StatusSuccess; anything unrecognised is StatusInternalFailure.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}

	switch {
	case errors.Is(err, ErrLockTimeout):
		return StatusLockTimeout
	case errors.Is(err, ErrNotFound):
		return StatusNotFound
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrForbidden):
		return StatusUnauthorized
	case errors.Is(err, ErrAlreadyProcessed):
		return StatusAlreadyProcessed
	case errors.Is(err, ErrSelfReference):
		return StatusSelfReference
	case errors.Is(err, ErrDuplicateRelationship):
		return StatusDuplicateRelationship
	case errors.Is(err, ErrValidation):
		return StatusInvalidInput
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return StatusConflict
	}
	return StatusInternalFailure
}

// StatusError carries a non-success status out of a transaction callback so
// the transaction is rolled back.
type StatusError struct {
	Status Status
	Reason string
}

func (e *StatusError) Error() string {
	if e.Reason == "" {
		return e.Status.String()
	}
	return e.Status.String() + ": " + e.Reason
}

// Reject returns a *StatusError for s.
func Reject(s Status, reason string) error {
	return &StatusError{Status: s, Reason: reason}
}
