package domain

import (
	"errors"
	"fmt"
)

// Field validation failures. A ValidationError wraps exactly one of these.
var (
	ErrInvalidFirstName = errors.New("invalid first name")
	ErrInvalidLastName  = errors.New("invalid last name")
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidCity      = errors.New("invalid city")
	ErrInvalidState     = errors.New("invalid state")
	ErrInvalidZip       = errors.New("invalid zip")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrInvalidEmail     = errors.New("invalid email")
)

// Lookup and mutation outcomes.
var (
	// ErrBookNotFound is returned when the named address book does not exist.
	ErrBookNotFound = errors.New("address book not found")

	// ErrContactNotFound is returned when no contact matches the exact name pair.
	ErrContactNotFound = errors.New("contact not found")

	// ErrDuplicateContact is returned when the book already holds the name pair.
	ErrDuplicateContact = errors.New("contact already exists")

	// ErrInvalidSortField is returned for a field outside SortFields.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidIndex is returned by positional deletes that are out of range.
	// Unlike the errors above it is not a reported outcome.
	ErrInvalidIndex = errors.New("invalid index")
)

// ValidationError reports the first contact field that failed its rule.
type ValidationError struct {
	Field ContactField
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s=%q", e.Err, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// StorageError is a failed write of the persisted catalog. It is fatal to
// the caller: the in-memory state is ahead of what is on disk.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsReported reports whether err is an expected, non-fatal outcome
// (validation, not found, duplicate, bad sort field). Callers show these to
// the user and carry on.
func IsReported(err error) bool {
	if err == nil {
		return false
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return true
	}
	for _, target := range []error{
		ErrBookNotFound,
		ErrContactNotFound,
		ErrDuplicateContact,
		ErrInvalidSortField,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
