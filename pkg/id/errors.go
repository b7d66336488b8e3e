package id

import (
	"errors"
	"fmt"
)

// Errors returned by identifier generation.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
)

// MaxLength bounds the length arguments of Alphanumeric and URLSafe.
const MaxLength = 4096

func checkLength(name string, n int) error {
	if n <= 0 || n > MaxLength {
		return fmt.Errorf("%w: %s %d out of range [1, %d]", ErrInvalidArgument, name, n, MaxLength)
	}
	return nil
}

func entropyError(err error) error {
	return fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
}
