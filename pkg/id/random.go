package id

import (
	"encoding/base64"
	"io"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// AlphanumericAlphabet is the 62 character set used by Alphanumeric.
	AlphanumericAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// DefaultAlphanumericLength is the conventional Alphanumeric length.
	DefaultAlphanumericLength = 12

	// DefaultURLSafeBytes is the conventional URLSafe byte count.
	DefaultURLSafeBytes = 16
)

// Alphanumeric generates a random string of the specified length drawn
// uniformly, with replacement, from AlphanumericAlphabet.
func (g *Generator) Alphanumeric(length int) (string, error) {
	if err := checkLength("length", length); err != nil {
		return "", err
	}
	return draw(AlphanumericAlphabet, length)
}

// URLSafe returns byteLength random bytes encoded as unpadded base64url.
// The result is ceil(byteLength*4/3) characters from [A-Za-z0-9_-].
func (g *Generator) URLSafe(byteLength int) (string, error) {
	if err := checkLength("byteLength", byteLength); err != nil {
		return "", err
	}
	b := make([]byte, byteLength)
	if _, err := io.ReadFull(g.random, b); err != nil {
		return "", entropyError(err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// base36 returns n uniformly random base36 digits. Equivalent to a window of
// the base36 expansion of a uniform random fraction.
func base36(n int) (string, error) {
	return draw(base36Alphabet, n)
}

func draw(alphabet string, n int) (string, error) {
	s, err := gonanoid.Generate(alphabet, n)
	if err != nil {
		return "", entropyError(err)
	}
	return s, nil
}

// Alphanumeric generates a random alphanumeric string using the default Generator.
func Alphanumeric(length int) (string, error) { return std.Alphanumeric(length) }

// URLSafe generates a URL-safe random ID using the default Generator.
func URLSafe(byteLength int) (string, error) { return std.URLSafe(byteLength) }
