package id

import (
	"strings"

	"github.com/google/uuid"
)

// UUID generates a UUID v4 (random).
// Returns a string in the format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
func (g *Generator) UUID() (string, error) {
	u, err := uuid.NewRandomFromReader(g.random)
	if err != nil {
		return "", entropyError(err)
	}
	return u.String(), nil
}

// ShortUUID returns the first hyphen-delimited segment of a fresh UUID v4:
// 8 lowercase hex characters, 32 bits of randomness.
func (g *Generator) ShortUUID() (string, error) {
	s, err := g.UUID()
	if err != nil {
		return "", err
	}
	head, _, _ := strings.Cut(s, "-")
	return head, nil
}

// UUID generates a UUID v4 using the default Generator.
func UUID() (string, error) { return std.UUID() }

// ShortUUID generates a short UUID using the default Generator.
func ShortUUID() (string, error) { return std.ShortUUID() }
