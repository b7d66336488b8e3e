package id

import (
	"fmt"
	"strconv"
)

const (
	timestampFragmentLength  = 13
	structuredFragmentLength = 6
	compositeRandomLength    = 3

	sequenceModulus = 1000
)

// Timestamp returns <unix-millis>-<13 base36 chars>.
//
// Two calls in the same millisecond collide with probability 36^-13; the
// result is not a uniqueness guarantee.
func (g *Generator) Timestamp() (string, error) {
	frag, err := base36(timestampFragmentLength)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(g.now().UnixMilli(), 10) + "-" + frag, nil
}

// Structured returns <prefix>-<unix-millis>-<6 base36 chars>. The prefix is
// used verbatim; it may be empty or contain '-'.
func (g *Generator) Structured(prefix string) (string, error) {
	frag, err := base36(structuredFragmentLength)
	if err != nil {
		return "", err
	}
	return prefix + "-" + strconv.FormatInt(g.now().UnixMilli(), 10) + "-" + frag, nil
}

// Composite returns <base36 unix-millis>-<3 base36 chars>-<sequence>, where
// sequence is a zero padded three digit counter that increments on every
// call to this Generator and wraps at 1000.
func (g *Generator) Composite() (string, error) {
	frag, err := base36(compositeRandomLength)
	if err != nil {
		return "", err
	}
	seq, err := g.nextSequence()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%03d", strconv.FormatInt(g.now().UnixMilli(), 36), frag, seq), nil
}

// Timestamp generates a timestamp ID using the default Generator.
func Timestamp() (string, error) { return std.Timestamp() }

// Structured generates a prefixed ID using the default Generator.
func Structured(prefix string) (string, error) { return std.Structured(prefix) }

// Composite generates a composite ID using the default Generator.
func Composite() (string, error) { return std.Composite() }
