package statusmap

import (
	"errors"
	"fmt"
)

// ErrParseConfig is returned when environment variables cannot be parsed into Config.
var ErrParseConfig = errors.New("failed to parse environment variables into config")

// ErrStatusNotFound indicates a queried status does not exist in the map.
// Arg names the query argument that carried the missing status.
type ErrStatusNotFound struct {
	Status Status
	Arg    string // "from_status", "to_status" or "status"
}

func (e *ErrStatusNotFound) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Arg, e.Status)
}

func NewErrStatusNotFound(status Status, arg string) *ErrStatusNotFound {
	return &ErrStatusNotFound{
		Status: status,
		Arg:    arg,
	}
}

// ErrTransitionNotFound indicates both statuses exist but are unrelated:
// no path connects them in either direction.
type ErrTransitionNotFound struct {
	From Status
	To   Status
}

func (e *ErrTransitionNotFound) Error() string {
	return fmt.Sprintf("transition from '%s' to '%s' not found", e.From, e.To)
}

func NewErrTransitionNotFound(from, to Status) *ErrTransitionNotFound {
	return &ErrTransitionNotFound{
		From: from,
		To:   to,
	}
}

// ErrFutureTransition indicates the target lies strictly downstream of the
// source, but not as a direct declared edge. The caller skipped intermediate
// steps.
type ErrFutureTransition struct {
	From Status
	To   Status
}

func (e *ErrFutureTransition) Error() string {
	return fmt.Sprintf("transition from '%s' to '%s' should happen in the future", e.From, e.To)
}

func NewErrFutureTransition(from, to Status) *ErrFutureTransition {
	return &ErrFutureTransition{
		From: from,
		To:   to,
	}
}

// ErrPastTransition indicates the target lies strictly upstream of the source:
// the requested move is a regression the map does not declare as a single step.
type ErrPastTransition struct {
	From Status
	To   Status
}

func (e *ErrPastTransition) Error() string {
	return fmt.Sprintf("transition from '%s' to '%s' should have happened in the past", e.From, e.To)
}

func NewErrPastTransition(from, to Status) *ErrPastTransition {
	return &ErrPastTransition{
		From: from,
		To:   to,
	}
}

// ErrAmbiguousTransition indicates the target is reachable both forward and
// backward from the source, which requires a cycle through both statuses.
type ErrAmbiguousTransition struct {
	From Status
	To   Status
}

func (e *ErrAmbiguousTransition) Error() string {
	return fmt.Sprintf("transition from '%s' to '%s' is both past and future", e.From, e.To)
}

func NewErrAmbiguousTransition(from, to Status) *ErrAmbiguousTransition {
	return &ErrAmbiguousTransition{
		From: from,
		To:   to,
	}
}

// ErrInvalidSpecification indicates malformed input to the map builder.
// Construction-time only.
type ErrInvalidSpecification struct {
	Reason string
	Err    error // underlying parse error, if any
}

func (e *ErrInvalidSpecification) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid specification: %s: %v", e.Reason, e.Err)
	}
	return "invalid specification: " + e.Reason
}

func (e *ErrInvalidSpecification) Unwrap() error {
	return e.Err
}

func NewErrInvalidSpecification(reason string) *ErrInvalidSpecification {
	return &ErrInvalidSpecification{Reason: reason}
}

func IsStatusNotFoundError(err error) bool {
	var e *ErrStatusNotFound
	return errors.As(err, &e)
}

func IsTransitionNotFoundError(err error) bool {
	var e *ErrTransitionNotFound
	return errors.As(err, &e)
}

func IsFutureTransitionError(err error) bool {
	var e *ErrFutureTransition
	return errors.As(err, &e)
}

func IsPastTransitionError(err error) bool {
	var e *ErrPastTransition
	return errors.As(err, &e)
}

func IsAmbiguousTransitionError(err error) bool {
	var e *ErrAmbiguousTransition
	return errors.As(err, &e)
}

func IsInvalidSpecificationError(err error) bool {
	var e *ErrInvalidSpecification
	return errors.As(err, &e)
}
