package id

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULID generates a new ULID (Universally Unique Lexicographically Sortable Identifier).
// ULIDs are 26 characters long and time-sortable. IDs from the same
// Generator within one millisecond are strictly increasing.
// Format: TTTTTTTTTTRRRRRRRRRRRRRRRR (10 chars timestamp + 16 chars randomness)
func (g *Generator) ULID() (string, error) {
	g.ulidMu.Lock()
	defer g.ulidMu.Unlock()

	u, err := ulid.New(ulid.Timestamp(g.now()), g.ulidEntropy)
	if err != nil {
		return "", entropyError(err)
	}
	return u.String(), nil
}

// ULID generates a ULID using the default Generator.
func ULID() (string, error) { return std.ULID() }

// IsValidULID checks if a string is a valid ULID. Decoding is case
// insensitive, as in Crockford's base32.
func IsValidULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}

// ULIDTime extracts the timestamp from a ULID.
func ULIDTime(s string) (time.Time, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid ULID %q: %v", ErrInvalidArgument, s, err)
	}
	return ulid.Time(u.Time()), nil
}
