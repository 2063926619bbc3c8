package main

import (
	"errors"
	"fmt"
	"strconv"
)

// parseSeconds parses s as a base-10 signed int. The whole string must be
// numeric; an optional leading sign is allowed.
func parseSeconds(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%q: %w", s, ErrNumberOutOfRange)
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
}
