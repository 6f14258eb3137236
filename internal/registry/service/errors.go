package service

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MsgNameTaken is reported when an active stock already uses the name.
	MsgNameTaken = "Name has already been taken"
	// MsgNameBlank is reported when a stock name is empty.
	MsgNameBlank = "Name can't be blank"
)

// NotFoundError reports a resource that is absent or outside the requested scope.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, ", ")
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Reasons []string
}

func (e *ConflictError) Error() string {
	return "conflict: " + strings.Join(e.Reasons, ", ")
}

// PersistenceError reports a write that the store refused for reasons other than
// validation.
type PersistenceError struct {
	Reasons []string
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %s: %v", strings.Join(e.Reasons, ", "), e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Reasons returns the caller-facing reasons carried by a validation, conflict or
// persistence error. ok is false for any other error.
func Reasons(err error) (reasons []string, ok bool) {
	var (
		validationErr  *ValidationError
		conflictErr    *ConflictError
		persistenceErr *PersistenceError
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Reasons, true
	case errors.As(err, &conflictErr):
		return conflictErr.Reasons, true
	case errors.As(err, &persistenceErr):
		return persistenceErr.Reasons, true
	}
	return nil, false
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func nameTakenError() error {
	return &ConflictError{Reasons: []string{MsgNameTaken}}
}

func nameBlankError() error {
	return &ValidationError{Reasons: []string{MsgNameBlank}}
}
