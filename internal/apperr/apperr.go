// Package apperr classifies failures surfaced to callers of the scoring engines.
package apperr

import (
	"errors"
	"fmt"
)

// Kind groups errors by who is expected to act on them.
type Kind string

const (
	// InputValidation means the request was malformed and was rejected before scoring.
	InputValidation Kind = "input_validation"
	// Computation means a scorer failed on well-formed input.
	Computation Kind = "computation"
	// Upstream means a collaborator (extractor, parser, job source, AI provider) failed.
	Upstream Kind = "upstream"
)

// Error is a classified error.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with the given kind. A nil err yields nil.
func New(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Invalid builds an InputValidation error from a message.
func Invalid(op, format string, args ...any) error {
	return &Error{Kind: InputValidation, Op: op, Err: fmt.Errorf(format, args...)}
}

// Is reports whether any error in err's chain has the given kind.
func Is(err error, kind Kind) bool {
	var target *Error
	if errors.As(err, &target) {
		return target.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first classified error in the chain, or an empty Kind.
func KindOf(err error) Kind {
	var target *Error
	if errors.As(err, &target) {
		return target.Kind
	}
	return ""
}
