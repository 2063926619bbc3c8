package main

import (
	"errors"
	"fmt"
)

var (
	ErrWrongArgumentCount = errors.New("wrong argument count")
	ErrInvalidNumber      = errors.New("invalid number format")
	ErrNumberOutOfRange   = errors.New("number out of range")
)

// usageError reports a wrong argument count for the invoked program name.
type usageError struct {
	prog string
	got  int
}

func (e *usageError) Error() string {
	return fmt.Sprintf("%s: expected 1 argument, got %d", e.prog, e.got)
}

func (e *usageError) Unwrap() error {
	return ErrWrongArgumentCount
}
