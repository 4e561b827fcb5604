package store

import (
	"errors"
	"fmt"
)

// Store errors.
var (
	ErrEmptyText       = errors.New("text is empty")
	ErrNotFound        = errors.New("item not found")
	ErrEmptyCollection = errors.New("no items to delete")
	ErrDuplicateID     = errors.New("duplicate item id")
	ErrIDExhausted     = errors.New("id generator keeps returning ids in use")
)

// ValidationError reports input the store refused to accept.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError names the id that had no matching item.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrNotFound, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
