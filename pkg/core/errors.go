package core

import "errors"

// Common errors.
var (
	// ErrValidation is the parent of every input rejection.
	ErrValidation = errors.New("validation failed")

	ErrEmptyContent      = validationError("note content is empty")
	ErrInvalidFormatting = validationError("invalid formatting")

	ErrNotFound    = errors.New("note not found")
	ErrPersistence = errors.New("failed to persist notes")

	ErrEditInProgress = errors.New("an edit session is in progress")
	ErrNotEditing     = errors.New("no edit session in progress")
	ErrNotComposing   = errors.New("no note is being composed")
)

type validation struct{ msg string }

func validationError(msg string) error { return &validation{msg: msg} }

func (v *validation) Error() string { return v.msg }

func (v *validation) Unwrap() error { return ErrValidation }
