package cli

import "errors"

// Common CLI errors
var (
	ErrMissingMethod = errors.New("missing method - run: idgen methods")
)
